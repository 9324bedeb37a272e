package spectrum

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// dbFloor clamps magnitudes before the log so silence maps to a finite
// -200 dB instead of -Inf.
const dbFloor = 1e-10

// Magnitude computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// All three slices must have the same length. SIMD-optimized
// implementations are used when available (AVX2, SSE2, NEON).
func Magnitude(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// All three slices must have the same length.
func Power(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Phase returns arg(X[k]) in radians for each bin.
//
// re and im must have the same length; together with the magnitudes
// they fully reconstruct the complex spectrum.
func Phase(re, im []float64) []float64 {
	if len(re) == 0 {
		return nil
	}
	out := make([]float64, len(re))
	for i := range out {
		out[i] = math.Atan2(im[i], re[i])
	}
	return out
}

// AmplitudeToDB converts linear magnitudes to decibels as
// 20*log10(max(m, 1e-10)). The floor keeps silent bins finite.
func AmplitudeToDB(magnitudes []float64) []float64 {
	if len(magnitudes) == 0 {
		return nil
	}
	out := make([]float64, len(magnitudes))
	for i, m := range magnitudes {
		out[i] = 20 * math.Log10(math.Max(m, dbFloor))
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities
// removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}
