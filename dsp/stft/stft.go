package stft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrogram is a frequency-major time/frequency matrix:
// Data[bin][frame]. FreqAxis has one entry per bin in Hz; TimeAxis has
// one entry per frame in seconds. When the input was decimated to fit
// the frame cap, EffectiveSampleRate is the reduced rate both axes are
// computed against; otherwise it equals SampleRate.
type Spectrogram struct {
	Data     [][]float64
	TimeAxis []float64
	FreqAxis []float64

	SampleRate          float64
	EffectiveSampleRate float64
	WindowSize          int
	HopSize             int
}

// Frames returns the number of time columns.
func (s *Spectrogram) Frames() int {
	return len(s.TimeAxis)
}

// Bins returns the number of frequency rows.
func (s *Spectrogram) Bins() int {
	return len(s.Data)
}

// Generate computes the spectrogram of signal.
//
// Frames advance by opts.HopSize; a signal shorter than one window
// yields a placeholder with zero frames and the full frequency axis.
// When the frame count would exceed opts.MaxFrames the signal is
// stride-decimated first (see the package comment) and any remaining
// excess frames are dropped from the tail.
func Generate(signal []float64, sampleRate float64, opts Options) (*Spectrogram, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("stft: sample rate must be > 0: %v", sampleRate)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	w, hop := opts.WindowSize, opts.HopSize
	bins := w / 2

	effectiveRate := sampleRate
	if frames := frameCount(len(signal), w, hop); frames > opts.MaxFrames {
		stride := (frames + opts.MaxFrames - 1) / opts.MaxFrames
		signal = decimate(signal, stride)
		effectiveRate = sampleRate / float64(stride)
	}

	frames := frameCount(len(signal), w, hop)
	if frames > opts.MaxFrames {
		frames = opts.MaxFrames
	}

	sg := &Spectrogram{
		Data:                make([][]float64, bins),
		TimeAxis:            make([]float64, frames),
		FreqAxis:            fft.BinFrequencies(w, effectiveRate),
		SampleRate:          sampleRate,
		EffectiveSampleRate: effectiveRate,
		WindowSize:          w,
		HopSize:             hop,
	}
	for b := range sg.Data {
		sg.Data[b] = make([]float64, frames)
	}
	if frames == 0 {
		return sg, nil
	}

	coeffs := window.Generate(opts.Window, w)
	work := buffer.New(w)
	mags := make([]float64, bins)

	for f := 0; f < frames; f++ {
		start := f * hop
		frame := signal[start:min(start+w, len(signal))]

		work.Zero()
		copy(work.Re, frame)
		vecmath.MulBlockInPlace(work.Re[:len(frame)], coeffs[:len(frame)])

		if err := fft.ForwardInPlace(work); err != nil {
			return nil, fmt.Errorf("stft: frame %d: %w", f, err)
		}

		spectrum.Magnitude(mags, work.Re[:bins], work.Im[:bins])
		storeColumn(sg.Data, mags, f, opts.Scale)

		sg.TimeAxis[f] = float64(start) / effectiveRate
	}

	return sg, nil
}

// frameCount is floor((n-w)/hop)+1, or 0 when the signal does not
// cover one full window.
func frameCount(n, w, hop int) int {
	if n < w {
		return 0
	}
	return (n-w)/hop + 1
}

// decimate keeps every stride-th sample. No anti-alias filtering.
func decimate(signal []float64, stride int) []float64 {
	if stride <= 1 {
		return signal
	}
	out := make([]float64, 0, (len(signal)+stride-1)/stride)
	for i := 0; i < len(signal); i += stride {
		out = append(out, signal[i])
	}
	return out
}

func storeColumn(data [][]float64, mags []float64, frame int, scale Scale) {
	switch scale {
	case ScaleMagnitude:
		for b, m := range mags {
			data[b][frame] = m
		}
	case ScalePower:
		for b, m := range mags {
			data[b][frame] = m * m
		}
	default: // ScaleDB
		for b, m := range mags {
			data[b][frame] = 20 * math.Log10(math.Max(m, 1e-10))
		}
	}
}
