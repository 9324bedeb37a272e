package eq

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/fft"
)

// ApplyBands returns a copy of the spectrum p with every band of cfg
// applied in list order. The input pair is not modified.
//
// For each band, bins in the resolved range are scaled by the band gain,
// and the same scaling is mirrored onto the negative-frequency bins N-i so
// that the spectrum stays Hermitian and the inverse transform of a real
// input stays real. DC and Nyquist have no distinct mirror and are scaled
// once. Bands covered by several gains compose multiplicatively.
func ApplyBands(p *buffer.Pair, cfg Config) *buffer.Pair {
	out := p.Copy()
	applyGains(out.Re, out.Im, cfg)
	return out
}

// applyGains is the in-place kernel behind ApplyBands, shared with the
// frame and chunk processors that own their working buffers.
func applyGains(re, im []float64, cfg Config) {
	n := len(re)
	if n == 0 {
		return
	}

	half := n / 2

	for _, band := range cfg.Bands {
		start, end, ok := band.Bins(cfg.SampleRate, n)
		if !ok {
			continue
		}

		gain := band.Gain
		vecmath.ScaleBlockInPlace(re[start:end+1], gain)
		vecmath.ScaleBlockInPlace(im[start:end+1], gain)

		// Hermitian mirror: bins N-i for i in (0, N/2). The mirror of the
		// touched range is itself contiguous.
		ms := max(start, 1)
		me := min(end, half-1)
		if ms <= me {
			vecmath.ScaleBlockInPlace(re[n-me:n-ms+1], gain)
			vecmath.ScaleBlockInPlace(im[n-me:n-ms+1], gain)
		}
	}
}

// ProcessFrame applies cfg to a single frame and returns a new signal of
// the same length: zero-pad to a power of two, forward FFT, band gains,
// inverse FFT, truncate to the input length keeping the real part.
//
// An empty band list is an exact identity: the input is copied without
// entering the transform path.
func ProcessFrame(signal []float64, cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	if len(signal) == 0 || len(cfg.Bands) == 0 {
		copy(out, signal)
		return out, nil
	}

	p := fft.Forward(signal)
	applyGains(p.Re, p.Im, cfg)
	if err := fft.InverseInPlace(p); err != nil {
		return nil, err
	}

	copy(out, p.Re[:len(signal)])

	return out, nil
}
