// Package fft implements an iterative, in-place radix-2 Fast Fourier
// Transform on split real/imaginary buffers.
//
// The transform is decimation-in-time Cooley-Tukey: a bit-reversal
// permutation followed by log2(N) butterfly stages. Twiddle factors are
// precomputed once per transform size and cached for the lifetime of the
// process; the butterfly loops themselves perform only multiplications and
// additions on cached values. Cached tables are never mutated after
// creation, so concurrent transforms of the same size are safe.
//
// Inputs that are not a power of two in length are zero-padded to the next
// power of two. Callers needing exact-length output truncate the result.
// Non-finite input samples (NaN, Inf) propagate through the transform
// unsanitized.
package fft
