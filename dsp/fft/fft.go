package fft

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
)

// NextPow2 returns the smallest power of two >= n, with a minimum of 1.
func NextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}

// IsPow2 reports whether n is a power of two. Zero and negative values
// are not powers of two.
func IsPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Forward computes the FFT of samples, zero-padding to the next power of
// two. An empty input returns an empty pair.
func Forward(samples []float64) *buffer.Pair {
	if len(samples) == 0 {
		return buffer.New(0)
	}

	p := buffer.FromReal(samples, NextPow2(len(samples)))
	transform(p.Re, p.Im, false)

	return p
}

// Inverse computes the inverse FFT of the given spectrum, zero-padding to
// the next power of two, and scales the result by 1/N. Empty inputs return
// an empty pair. The input slices are not modified.
func Inverse(re, im []float64) (*buffer.Pair, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("fft: real/imaginary length mismatch: %d != %d", len(re), len(im))
	}
	if len(re) == 0 {
		return buffer.New(0), nil
	}

	n := NextPow2(len(re))
	p := buffer.New(n)
	copy(p.Re, re)
	copy(p.Im, im)

	transform(p.Re, p.Im, true)
	normalize(p)

	return p, nil
}

// ForwardInPlace transforms p in place. The pair length must be a power of
// two; lengths 0 and 1 are defined no-ops.
func ForwardInPlace(p *buffer.Pair) error {
	if err := validatePair(p); err != nil {
		return err
	}

	transform(p.Re, p.Im, false)

	return nil
}

// InverseInPlace inverse-transforms p in place, including the 1/N scaling.
// The pair length must be a power of two; lengths 0 and 1 are defined no-ops.
func InverseInPlace(p *buffer.Pair) error {
	if err := validatePair(p); err != nil {
		return err
	}

	transform(p.Re, p.Im, true)
	normalize(p)

	return nil
}

// BinFrequencies returns the center frequency in Hz of the fftSize/2
// non-negative frequency bins, DC first, Nyquist excluded. Returns nil for
// non-positive fftSize or sampleRate.
func BinFrequencies(fftSize int, sampleRate float64) []float64 {
	if fftSize <= 0 || sampleRate <= 0 {
		return nil
	}

	out := make([]float64, fftSize/2)
	step := sampleRate / float64(fftSize)
	for i := range out {
		out[i] = float64(i) * step
	}

	return out
}

func validatePair(p *buffer.Pair) error {
	if len(p.Re) != len(p.Im) {
		return fmt.Errorf("fft: real/imaginary length mismatch: %d != %d", len(p.Re), len(p.Im))
	}
	if n := len(p.Re); n > 1 && !IsPow2(n) {
		return fmt.Errorf("fft: in-place transform length must be a power of two: %d", n)
	}
	return nil
}

func normalize(p *buffer.Pair) {
	n := p.Len()
	if n <= 1 {
		return
	}
	scale := 1 / float64(n)
	vecmath.ScaleBlockInPlace(p.Re, scale)
	vecmath.ScaleBlockInPlace(p.Im, scale)
}

// transform runs the iterative decimation-in-time radix-2 FFT on re/im in
// place. inverse flips the sign of the sine term (conjugate transform);
// the caller applies the 1/N scaling.
func transform(re, im []float64, inverse bool) {
	n := len(re)
	if n <= 1 {
		return
	}

	bitReverse(re, im)

	tw := twiddles(n)
	sign := 1.0
	if inverse {
		sign = -1
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for start := 0; start < n; start += size {
			for j := 0; j < half; j++ {
				cos := tw.cos[j*step]
				sin := sign * tw.sin[j*step]

				even := start + j
				odd := even + half

				tr := cos*re[odd] - sin*im[odd]
				ti := cos*im[odd] + sin*re[odd]

				re[odd] = re[even] - tr
				im[odd] = im[even] - ti
				re[even] += tr
				im[even] += ti
			}
		}
	}
}

// bitReverse applies the bit-reversal permutation to both halves in place.
func bitReverse(re, im []float64) {
	n := len(re)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit

		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}
