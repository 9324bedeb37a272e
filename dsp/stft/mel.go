package stft

import (
	"fmt"
	"math"
)

// HzToMel converts a frequency in Hz to the mel scale.
func HzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// MelToHz converts a mel-scale value back to Hz.
func MelToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// MelFilterbank builds numMels triangular filters over the windowSize/2
// linear FFT bins, with filter centers equally spaced on the mel scale
// between minHz and maxHz. Each row has windowSize/2 weights.
func MelFilterbank(windowSize, numMels int, sampleRate, minHz, maxHz float64) ([][]float64, error) {
	if windowSize < 2 {
		return nil, fmt.Errorf("stft: mel window size must be >= 2: %d", windowSize)
	}
	if numMels < 1 {
		return nil, fmt.Errorf("stft: mel filter count must be >= 1: %d", numMels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("stft: mel sample rate must be > 0: %v", sampleRate)
	}
	if minHz < 0 || maxHz <= minHz || maxHz > sampleRate/2 {
		return nil, fmt.Errorf("stft: mel range must satisfy 0 <= min < max <= nyquist: [%v, %v]", minHz, maxHz)
	}

	bins := windowSize / 2

	// numMels filters need numMels+2 edge points on the mel scale.
	edges := make([]float64, numMels+2)
	minMel, maxMel := HzToMel(minHz), HzToMel(maxHz)
	for i := range edges {
		mel := minMel + (maxMel-minMel)*float64(i)/float64(numMels+1)
		edges[i] = MelToHz(mel) * float64(windowSize) / sampleRate
	}

	bank := make([][]float64, numMels)
	for m := range bank {
		bank[m] = make([]float64, bins)
		lo, center, hi := edges[m], edges[m+1], edges[m+2]

		for k := 0; k < bins; k++ {
			fk := float64(k)
			switch {
			case fk <= lo || fk >= hi:
			case fk < center:
				bank[m][k] = (fk - lo) / (center - lo)
			default:
				bank[m][k] = (hi - fk) / (hi - center)
			}
		}
	}

	return bank, nil
}

// MelSpectrogram projects the power spectrogram of signal onto numMels
// mel filters spanning 0 Hz to the effective Nyquist, reported in dB
// (10*log10 of band power). The returned spectrogram's FreqAxis holds
// the filter center frequencies in Hz and Data has numMels rows.
func MelSpectrogram(signal []float64, sampleRate float64, opts Options, numMels int) (*Spectrogram, error) {
	opts.Scale = ScalePower

	sg, err := Generate(signal, sampleRate, opts)
	if err != nil {
		return nil, err
	}

	maxHz := sg.EffectiveSampleRate / 2
	bank, err := MelFilterbank(sg.WindowSize, numMels, sg.EffectiveSampleRate, 0, maxHz)
	if err != nil {
		return nil, err
	}

	frames := sg.Frames()
	data := make([][]float64, numMels)
	centers := make([]float64, numMels)
	minMel, maxMel := HzToMel(0), HzToMel(maxHz)

	for m := range data {
		data[m] = make([]float64, frames)
		centers[m] = MelToHz(minMel + (maxMel-minMel)*float64(m+1)/float64(numMels+1))

		for f := 0; f < frames; f++ {
			sum := 0.0
			for k, wgt := range bank[m] {
				if wgt != 0 {
					sum += wgt * sg.Data[k][f]
				}
			}
			data[m][f] = 10 * math.Log10(math.Max(sum, 1e-10))
		}
	}

	return &Spectrogram{
		Data:                data,
		TimeAxis:            sg.TimeAxis,
		FreqAxis:            centers,
		SampleRate:          sg.SampleRate,
		EffectiveSampleRate: sg.EffectiveSampleRate,
		WindowSize:          sg.WindowSize,
		HopSize:             sg.HopSize,
	}, nil
}
