package spectrum

import (
	"fmt"
	"math"
	"sort"
)

// SmoothFractionalOctave applies 1/fraction-octave smoothing to
// linear-domain values using the arithmetic mean over each fractional
// band. freqHz and values must have equal length, with freqHz strictly
// increasing and positive; DC must be dropped before smoothing.
func SmoothFractionalOctave(freqHz, values []float64, fraction int) ([]float64, error) {
	if len(freqHz) == 0 || len(values) == 0 {
		return nil, fmt.Errorf("spectrum: smoothing requires non-empty inputs")
	}
	if len(freqHz) != len(values) {
		return nil, fmt.Errorf("spectrum: smoothing input length mismatch: %d != %d", len(freqHz), len(values))
	}
	if fraction <= 0 {
		return nil, fmt.Errorf("spectrum: smoothing fraction must be > 0: %d", fraction)
	}
	for i := range freqHz {
		if freqHz[i] <= 0 {
			return nil, fmt.Errorf("spectrum: smoothing frequencies must be > 0 at index %d", i)
		}
		if i > 0 && !(freqHz[i] > freqHz[i-1]) {
			return nil, fmt.Errorf("spectrum: smoothing frequencies must be strictly increasing at index %d", i)
		}
	}

	out := make([]float64, len(values))
	halfBand := math.Pow(2, 1/(2*float64(fraction)))

	for i, f := range freqHz {
		fLo := f / halfBand
		fHi := f * halfBand

		i0 := sort.Search(len(freqHz), func(k int) bool { return freqHz[k] >= fLo })
		i1 := sort.Search(len(freqHz), func(k int) bool { return freqHz[k] > fHi })
		if i0 >= i1 {
			out[i] = values[i]
			continue
		}

		sum := 0.0
		for j := i0; j < i1; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(i1-i0)
	}

	return out, nil
}
