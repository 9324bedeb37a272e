// Command spectra inspects signals and equalizer configurations in the
// frequency domain.
//
// Usage:
//
//	spectra [flags]
//
// Without flags it synthesizes a 440 Hz test tone and prints its
// dominant spectral peaks.
//
// Examples:
//
//	spectra -freq 440,1000,2500
//	spectra -freq 1000 -smooth 3
//	spectra -config eq.json -size 4096
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/dsp/eq"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

func main() {
	freqs := flag.String("freq", "440", "comma-separated tone frequencies in Hz")
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	dur := flag.Float64("dur", 1.0, "tone duration in seconds")
	peaks := flag.Int("peaks", 5, "number of spectral peaks to print")
	smooth := flag.Int("smooth", 0, "apply 1/N-octave smoothing (0 = off)")
	configPath := flag.String("config", "", "equalizer config JSON; prints its band/bin table")
	size := flag.Int("size", 4096, "FFT size for the band/bin table")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectra [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes a test tone and prints its dominant spectral peaks.\n")
		fmt.Fprintf(os.Stderr, "With -config, also prints the band-to-bin resolution table.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spectra -freq 440,1000,2500\n")
		fmt.Fprintf(os.Stderr, "  spectra -freq 1000 -smooth 3\n")
		fmt.Fprintf(os.Stderr, "  spectra -config eq.json -size 4096\n")
	}
	flag.Parse()

	tones, err := parseFreqs(*freqs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	signal := synthesize(tones, *rate, *dur)

	s, err := spectrum.Analyze(signal, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *smooth > 0 {
		// Smoothing needs strictly positive frequencies; skip DC.
		smoothed, err := spectrum.SmoothFractionalOctave(s.Frequencies[1:], s.Magnitudes[1:], *smooth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		copy(s.Magnitudes[1:], smoothed)
	}

	printPeaks(s, *peaks)

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		printBandTable(cfg, *size)
	}
}

func parseFreqs(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid frequency %q", part)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no frequencies given")
	}
	return out, nil
}

func synthesize(freqs []float64, sampleRate, duration float64) []float64 {
	n := int(sampleRate * duration)
	out := make([]float64, n)
	amp := 1 / float64(len(freqs))
	for _, f := range freqs {
		w := 2 * math.Pi * f / sampleRate
		for i := range out {
			out[i] += amp * math.Sin(w*float64(i))
		}
	}
	return out
}

func loadConfig(path string) (eq.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return eq.Config{}, err
	}
	return eq.ParseConfig(data)
}

// printPeaks lists the n strongest local maxima of the spectrum.
func printPeaks(s spectrum.Spectrum, n int) {
	type peak struct {
		bin int
		mag float64
	}

	var localMax []peak
	for i := 1; i < len(s.Magnitudes)-1; i++ {
		if s.Magnitudes[i] >= s.Magnitudes[i-1] && s.Magnitudes[i] > s.Magnitudes[i+1] {
			localMax = append(localMax, peak{i, s.Magnitudes[i]})
		}
	}
	sort.Slice(localMax, func(i, j int) bool { return localMax[i].mag > localMax[j].mag })
	if len(localMax) > n {
		localMax = localMax[:n]
	}
	sort.Slice(localMax, func(i, j int) bool { return localMax[i].bin < localMax[j].bin })

	db := spectrum.AmplitudeToDB(s.Magnitudes)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tMagnitude\tLevel [dB]\n")
	fmt.Fprintf(tw, "---\t--------------\t---------\t----------\n")
	for _, p := range localMax {
		fmt.Fprintf(tw, "%d\t%.2f\t%.6f\t%.2f\n", p.bin, s.Frequencies[p.bin], p.mag, db[p.bin])
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printBandTable(cfg eq.Config, fftSize int) {
	fmt.Printf("Config %q, sample rate %.0f Hz, FFT size %d\n\n", cfg.Name, cfg.SampleRate, fftSize)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tStart [Hz]\tEnd [Hz]\tGain\tStart Bin\tEnd Bin\tNote\n")
	fmt.Fprintf(tw, "----\t----------\t--------\t----\t---------\t-------\t----\n")
	for i, b := range cfg.Bands {
		start, end, ok := b.Bins(cfg.SampleRate, fftSize)
		note := ""
		if !ok {
			note = "above nyquist"
		}
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\t%.3f\t%d\t%d\t%s\n",
			i, b.StartFreq, b.EndFreq, b.Gain, start, end, note)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
