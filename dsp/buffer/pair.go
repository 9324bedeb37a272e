package buffer

import "fmt"

// Pair wraps a real/imaginary slice pair of equal length.
// DSP kernels operate on the slices directly; the wrapper keeps the
// two halves in sync through resizing and reuse.
type Pair struct {
	Re []float64
	Im []float64
}

// New returns a zero-filled Pair of the given length.
func New(length int) *Pair {
	if length < 0 {
		length = 0
	}
	return &Pair{
		Re: make([]float64, length),
		Im: make([]float64, length),
	}
}

// FromSlices wraps existing real/imaginary slices without copying.
// Mutations to the slices are visible through the Pair and vice versa.
func FromSlices(re, im []float64) (*Pair, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("buffer: real/imaginary length mismatch: %d != %d", len(re), len(im))
	}
	return &Pair{Re: re, Im: im}, nil
}

// FromReal returns a Pair whose real part is a copy of samples and whose
// imaginary part is zero, both zero-padded to length n when n > len(samples).
func FromReal(samples []float64, n int) *Pair {
	if n < len(samples) {
		n = len(samples)
	}
	p := New(n)
	copy(p.Re, samples)
	return p
}

// Len returns the current number of bins.
func (p *Pair) Len() int {
	return len(p.Re)
}

// Resize sets the length of both halves to n, reusing existing capacity
// when possible. Newly exposed elements are zeroed.
func (p *Pair) Resize(n int) {
	p.Re = resize(p.Re, n)
	p.Im = resize(p.Im, n)
}

// Zero sets all bins to 0.
func (p *Pair) Zero() {
	for i := range p.Re {
		p.Re[i] = 0
	}
	for i := range p.Im {
		p.Im[i] = 0
	}
}

// Copy returns a deep copy of the pair.
func (p *Pair) Copy() *Pair {
	out := New(len(p.Re))
	copy(out.Re, p.Re)
	copy(out.Im, p.Im)
	return out
}

func resize(s []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	oldLen := len(s)
	if n <= cap(s) {
		s = s[:n]
	} else {
		grown := make([]float64, n)
		copy(grown, s)
		return grown
	}
	// Zero any newly exposed elements that may hold stale data from
	// previous use of the backing array.
	for i := oldLen; i < n; i++ {
		s[i] = 0
	}
	return s
}
