package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-vecmath"
)

// Analysis FFT size bounds. The smallest power of two covering the
// signal is used, floored at minAnalysisSize for resolution and capped
// at maxAnalysisSize to bound the cost of a single transform.
const (
	minAnalysisSize = 1024
	maxAnalysisSize = 65536
)

// workPool recycles the transform scratch pair across Analyze calls.
var workPool = buffer.NewPool()

// Spectrum holds the single-sided magnitude spectrum of a real signal.
// Both slices have length fftSize/2; Frequencies[k] is the center
// frequency of bin k in Hz.
type Spectrum struct {
	Frequencies []float64
	Magnitudes  []float64
}

// PeakBin returns the index of the largest magnitude bin, or -1 for an
// empty spectrum.
func (s Spectrum) PeakBin() int {
	idx := -1
	peak := math.Inf(-1)
	for i, m := range s.Magnitudes {
		if m > peak {
			peak = m
			idx = i
		}
	}
	return idx
}

// Analyze computes the single-sided magnitude spectrum of signal.
//
// The FFT size adapts to the signal length within [1024, 65536];
// signals longer than the cap are analyzed over their leading window
// only. Magnitudes carry the 2/N amplitude normalization, so a
// full-scale sine at a bin center reports a magnitude near 1.
// An empty signal yields an empty Spectrum.
func Analyze(signal []float64, sampleRate float64) (Spectrum, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Spectrum{}, fmt.Errorf("spectrum: sample rate must be > 0: %v", sampleRate)
	}
	if len(signal) == 0 {
		return Spectrum{}, nil
	}

	size := fft.NextPow2(len(signal))
	if size < minAnalysisSize {
		size = minAnalysisSize
	}
	if size > maxAnalysisSize {
		size = maxAnalysisSize
	}
	if len(signal) > size {
		signal = signal[:size]
	}

	p := workPool.Get(size)
	defer workPool.Put(p)
	copy(p.Re, signal)

	if err := fft.ForwardInPlace(p); err != nil {
		return Spectrum{}, err
	}

	half := size / 2
	mags := make([]float64, half)
	Magnitude(mags, p.Re[:half], p.Im[:half])

	vecmath.ScaleBlockInPlace(mags, 2/float64(size))

	return Spectrum{
		Frequencies: fft.BinFrequencies(size, sampleRate),
		Magnitudes:  mags,
	}, nil
}
