package fft_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/fft"
)

func ExampleForward() {
	// A sine with 2 cycles over 8 samples concentrates in bin 2.
	x := make([]float64, 8)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 2 * float64(i) / 8)
	}

	p := fft.Forward(x)
	for bin := 0; bin < p.Len()/2; bin++ {
		fmt.Printf("bin %d: %.1f\n", bin, math.Hypot(p.Re[bin], p.Im[bin]))
	}
	// Output:
	// bin 0: 0.0
	// bin 1: 0.0
	// bin 2: 4.0
	// bin 3: 0.0
}

func ExampleBinFrequencies() {
	freqs := fft.BinFrequencies(8, 48000)
	fmt.Println(freqs)
	// Output:
	// [0 6000 12000 18000]
}
