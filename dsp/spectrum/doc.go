// Package spectrum analyzes the frequency content of real signals.
//
// Analyze produces a single-sided magnitude spectrum with an FFT size
// adapted to the signal length. Bin helpers (Magnitude, Power, Phase,
// AmplitudeToDB) operate on the split real/imaginary representation
// produced by the fft package, and Goertzel offers cheap single-bin
// detection when only one frequency is of interest.
package spectrum
