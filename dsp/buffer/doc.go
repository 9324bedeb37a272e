// Package buffer provides split-complex buffer pairs for frequency- and
// time-domain signals.
//
// A Pair holds the real and imaginary parts of a signal in two separate
// float64 slices, which is the representation the transform and equalizer
// packages operate on. Pairs are owned by one processing stage at a time;
// use Copy to hand data across stages.
//
// Pool offers sync.Pool-backed Pair reuse so that per-frame processing
// loops do not allocate in steady state.
package buffer
