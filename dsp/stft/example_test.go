package stft_test

import (
	"fmt"
	"log"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/stft"
)

func ExampleGenerate() {
	const sampleRate = 44100.0
	signal := make([]float64, 32768)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
	}

	sg, err := stft.Generate(signal, sampleRate, stft.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d bins x %d frames\n", sg.Bins(), sg.Frames())
	// Output: 1024 bins x 61 frames
}

func ExampleMelSpectrogram() {
	const sampleRate = 44100.0
	signal := make([]float64, 16384)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / sampleRate)
	}

	opts := stft.DefaultOptions()
	sg, err := stft.MelSpectrogram(signal, sampleRate, opts, 40)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d mel bands x %d frames\n", sg.Bins(), sg.Frames())
	// Output: 40 mel bands x 29 frames
}
