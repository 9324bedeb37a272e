package stft

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// Scale selects the per-bin value stored in a spectrogram.
type Scale int

const (
	// ScaleDB stores 20*log10(max(|X|, 1e-10)).
	ScaleDB Scale = iota
	// ScaleMagnitude stores |X|.
	ScaleMagnitude
	// ScalePower stores |X|^2.
	ScalePower
)

// String returns the scale name as used in serialized requests.
func (s Scale) String() string {
	switch s {
	case ScaleDB:
		return "db"
	case ScaleMagnitude:
		return "magnitude"
	case ScalePower:
		return "power"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// ParseScale maps a scale name to its [Scale] value.
func ParseScale(name string) (Scale, error) {
	switch name {
	case "db":
		return ScaleDB, nil
	case "magnitude":
		return ScaleMagnitude, nil
	case "power":
		return ScalePower, nil
	default:
		return 0, fmt.Errorf("stft: unknown scale %q", name)
	}
}

// Options control spectrogram generation.
type Options struct {
	// WindowSize is the frame length in samples; it must be a power of
	// two so frames transform without padding.
	WindowSize int
	// HopSize is the frame advance in samples.
	HopSize int
	// Window is the analysis window applied to each frame.
	Window window.Type
	// MaxFrames caps the number of time columns; longer signals are
	// stride-decimated to fit.
	MaxFrames int
	// Scale selects the stored per-bin value.
	Scale Scale
}

// DefaultOptions returns the analysis settings used when no override
// is needed: 2048-sample Hann frames advancing by 512 samples, capped
// at 1024 columns, in dB.
func DefaultOptions() Options {
	return Options{
		WindowSize: 2048,
		HopSize:    512,
		Window:     window.TypeHann,
		MaxFrames:  1024,
		Scale:      ScaleDB,
	}
}

func (o Options) validate() error {
	if o.WindowSize < 2 || !fft.IsPow2(o.WindowSize) {
		return fmt.Errorf("stft: window size must be a power of two >= 2: %d", o.WindowSize)
	}
	if o.HopSize < 1 {
		return fmt.Errorf("stft: hop size must be >= 1: %d", o.HopSize)
	}
	if o.MaxFrames < 1 {
		return fmt.Errorf("stft: max frames must be >= 1: %d", o.MaxFrames)
	}
	switch o.Scale {
	case ScaleDB, ScaleMagnitude, ScalePower:
	default:
		return fmt.Errorf("stft: unknown scale %d", int(o.Scale))
	}
	return nil
}
