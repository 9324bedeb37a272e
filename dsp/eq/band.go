package eq

import (
	"fmt"
	"math"
)

// MaxGain is the upper gain bound of the band construction contract.
// Processing itself applies whatever gain a Band carries; the bound is
// enforced where bands enter the system (NewBand, ParseConfig,
// EncodeConfig).
const MaxGain = 2.0

// Band scales the spectrum between StartFreq and EndFreq (Hz, inclusive
// after bin resolution) by the linear amplitude factor Gain.
type Band struct {
	StartFreq float64
	EndFreq   float64
	Gain      float64
}

// NewBand is the strict Band constructor. It rejects inverted or negative
// frequency ranges and gains outside [0, MaxGain].
func NewBand(startFreq, endFreq, gain float64) (Band, error) {
	b := Band{StartFreq: startFreq, EndFreq: endFreq, Gain: gain}
	if err := b.validateRange(); err != nil {
		return Band{}, fmt.Errorf("eq: %w", err)
	}
	if gain > MaxGain {
		return Band{}, fmt.Errorf("eq: band gain must be in [0, %g]: %g", MaxGain, gain)
	}
	return b, nil
}

// validateRange checks the invariants the engine itself relies on:
// 0 <= StartFreq < EndFreq and a finite, non-negative gain. It does not
// enforce the MaxGain construction contract.
func (b Band) validateRange() error {
	if math.IsNaN(b.StartFreq) || math.IsInf(b.StartFreq, 0) || b.StartFreq < 0 {
		return fmt.Errorf("band start frequency must be finite and >= 0: %g", b.StartFreq)
	}
	if math.IsNaN(b.EndFreq) || math.IsInf(b.EndFreq, 0) || b.EndFreq <= b.StartFreq {
		return fmt.Errorf("band end frequency must be finite and > start %g: %g", b.StartFreq, b.EndFreq)
	}
	if math.IsNaN(b.Gain) || math.IsInf(b.Gain, 0) || b.Gain < 0 {
		return fmt.Errorf("band gain must be finite and >= 0: %g", b.Gain)
	}
	return nil
}

// Bins resolves the band to an inclusive bin range for the given sample
// rate and transform size, using bin = round(freq*N/sampleRate) clamped
// to [0, N/2]. ok is false when the band lies entirely above Nyquist or
// the parameters are invalid; such a band is a silent no-op.
func (b Band) Bins(sampleRate float64, fftSize int) (start, end int, ok bool) {
	if sampleRate <= 0 || fftSize <= 0 {
		return 0, 0, false
	}

	half := fftSize / 2
	start = int(math.Round(b.StartFreq * float64(fftSize) / sampleRate))
	if start > half {
		return 0, 0, false
	}

	end = int(math.Round(b.EndFreq * float64(fftSize) / sampleRate))
	if end > half {
		end = half
	}
	if end < start {
		return 0, 0, false
	}

	return start, end, true
}

// Config is a full equalizer configuration: the sample rate the band
// frequencies refer to and an ordered list of bands. Overlapping bands
// compose multiplicatively in list order. Name is optional metadata.
type Config struct {
	SampleRate float64
	Bands      []Band
	Name       string
}

// Validate checks the invariants processing relies on. It intentionally
// does not enforce the MaxGain construction contract, so configurations
// assembled directly from Band literals may carry larger gains.
func (c Config) Validate() error {
	if math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) || c.SampleRate <= 0 {
		return fmt.Errorf("eq: sample rate must be finite and > 0: %g", c.SampleRate)
	}
	for i, b := range c.Bands {
		if err := b.validateRange(); err != nil {
			return fmt.Errorf("eq: band %d: %w", i, err)
		}
	}
	return nil
}
