package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestProcessFrameIdentity(t *testing.T) {
	x := testutil.Noise(1, 1, 777)
	out, err := ProcessFrame(x, Config{SampleRate: 44100})
	if err != nil {
		t.Fatalf("ProcessFrame error: %v", err)
	}
	// Empty band list must be an exact copy, no transform drift.
	for i := range x {
		if out[i] != x[i] {
			t.Fatalf("index %d: got %v, want exact %v", i, out[i], x[i])
		}
	}
	out[0] = 99
	if x[0] == 99 {
		t.Fatal("output must not alias the input")
	}
}

func TestProcessFrameEmptySignal(t *testing.T) {
	out, err := ProcessFrame(nil, Config{SampleRate: 44100, Bands: []Band{{0, 1000, 0.5}}})
	if err != nil {
		t.Fatalf("ProcessFrame error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestProcessFrameInvalidConfig(t *testing.T) {
	if _, err := ProcessFrame([]float64{1}, Config{SampleRate: 0}); err == nil {
		t.Fatal("expected error for invalid sample rate")
	}
}

func TestProcessFrameUnityGainRoundTrip(t *testing.T) {
	x := testutil.Sine(440, 44100, 0.8, 4096)
	cfg := Config{SampleRate: 44100, Bands: []Band{{0, 22050, 1}}}

	out, err := ProcessFrame(x, cfg)
	if err != nil {
		t.Fatalf("ProcessFrame error: %v", err)
	}
	if len(out) != len(x) {
		t.Fatalf("len = %d, want %d", len(out), len(x))
	}
	testutil.RequireSliceNearlyEqualRel(t, out, x, 1e-4)
}

func TestProcessFrameZeroGainSilences(t *testing.T) {
	x := testutil.Noise(2, 1, 3000)
	cfg := Config{SampleRate: 44100, Bands: []Band{{0, 22050, 0}}}

	out, err := ProcessFrame(x, cfg)
	if err != nil {
		t.Fatalf("ProcessFrame error: %v", err)
	}
	for i, v := range out {
		if math.Abs(v) > 1e-9 {
			t.Fatalf("out[%d] = %v, want ~0", i, v)
		}
	}
}

func TestProcessFrameBandAboveNyquistIsNoOp(t *testing.T) {
	x := testutil.Sine(440, 44100, 1, 2048)
	cfg := Config{SampleRate: 44100, Bands: []Band{{23000, 24000, 0}}}

	out, err := ProcessFrame(x, cfg)
	if err != nil {
		t.Fatalf("ProcessFrame error: %v", err)
	}
	testutil.RequireSliceNearlyEqualRel(t, out, x, 1e-4)
}

func TestOverlappingBandsComposeMultiplicatively(t *testing.T) {
	// A ~700 Hz tone sits inside both {0,1000,2.0} and {500,1500,0.5};
	// the combined gain must be 2.0 * 0.5 = 1.0. Bin-aligned frequency so
	// no leakage spills outside the overlap region.
	freq := 130.0 * 44100.0 / 8192.0 // 699.8 Hz, exactly bin 130
	x := testutil.Sine(freq, 44100, 0.5, 8192)
	cfg := Config{
		SampleRate: 44100,
		Bands: []Band{
			{0, 1000, 2.0},
			{500, 1500, 0.5},
		},
	}

	out, err := ProcessFrame(x, cfg)
	if err != nil {
		t.Fatalf("ProcessFrame error: %v", err)
	}
	testutil.RequireSliceNearlyEqualRel(t, out, x, 1e-4)
}

func TestBandGainEnergyScalesWithSquare(t *testing.T) {
	// Doubling a band gain must quadruple the energy that band contributes.
	// Bin-aligned tone so all of its energy falls inside the band.
	freq := 186.0 * 44100.0 / 8192.0 // 1001.3 Hz, exactly bin 186
	x := testutil.Sine(freq, 44100, 0.5, 8192)

	energy := func(gain float64) float64 {
		cfg := Config{SampleRate: 44100, Bands: []Band{{800, 1200, gain}}}
		out, err := ProcessFrame(x, cfg)
		if err != nil {
			t.Fatalf("ProcessFrame error: %v", err)
		}
		sum := 0.0
		for _, v := range out {
			sum += v * v
		}
		return sum
	}

	e1 := energy(1)
	e2 := energy(2)
	if e1 == 0 {
		t.Fatal("unexpected zero energy")
	}
	if ratio := e2 / e1; math.Abs(ratio-4) > 1e-3 {
		t.Fatalf("energy ratio = %v, want 4", ratio)
	}
}

func TestApplyBandsPreservesHermitianSymmetry(t *testing.T) {
	p := fft.Forward(testutil.Noise(3, 1, 1024))
	cfg := Config{SampleRate: 44100, Bands: []Band{{300, 4000, 1.7}, {2000, 9000, 0.3}}}

	out := ApplyBands(p, cfg)

	n := out.Len()
	for i := 1; i < n/2; i++ {
		if math.Abs(out.Re[n-i]-out.Re[i]) > 1e-9 {
			t.Fatalf("Re symmetry broken at bin %d", i)
		}
		if math.Abs(out.Im[n-i]+out.Im[i]) > 1e-9 {
			t.Fatalf("Im symmetry broken at bin %d", i)
		}
	}
}

func TestApplyBandsDoesNotMutateInput(t *testing.T) {
	p := fft.Forward(testutil.Sine(440, 44100, 1, 1024))
	before := p.Copy()

	_ = ApplyBands(p, Config{SampleRate: 44100, Bands: []Band{{0, 22050, 0}}})

	for i := range before.Re {
		if p.Re[i] != before.Re[i] || p.Im[i] != before.Im[i] {
			t.Fatalf("input mutated at bin %d", i)
		}
	}
}

func TestApplyBandsScalesExpectedBins(t *testing.T) {
	p := fft.Forward(testutil.Noise(7, 1, 512))
	n := p.Len()

	cfg := Config{SampleRate: 44100, Bands: []Band{{4306, 8613, 0}}}
	start, end, ok := cfg.Bands[0].Bins(cfg.SampleRate, n)
	if !ok {
		t.Fatal("expected resolvable band")
	}

	out := ApplyBands(p, cfg)
	for i := start; i <= end; i++ {
		if out.Re[i] != 0 || out.Im[i] != 0 {
			t.Fatalf("bin %d not silenced", i)
		}
		if i > 0 && i < n/2 {
			if out.Re[n-i] != 0 || out.Im[n-i] != 0 {
				t.Fatalf("mirror bin %d not silenced", n-i)
			}
		}
	}
	// A bin outside the band must be untouched.
	if out.Re[start-1] != p.Re[start-1] {
		t.Fatalf("bin %d outside the band was modified", start-1)
	}
}
