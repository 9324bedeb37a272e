package eq

import (
	"context"
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestNewProcessorOptions(t *testing.T) {
	p, err := NewProcessor()
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}
	if p.ChunkSize() != DefaultChunkSize {
		t.Fatalf("ChunkSize = %d, want %d", p.ChunkSize(), DefaultChunkSize)
	}

	p, err = NewProcessor(WithChunkSize(4096))
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}
	if p.ChunkSize() != 4096 {
		t.Fatalf("ChunkSize = %d, want 4096", p.ChunkSize())
	}

	if _, err := NewProcessor(WithChunkSize(0)); err == nil {
		t.Fatal("expected error for chunk size 0")
	}
}

func TestProcessMatchesProcessFrame(t *testing.T) {
	x := testutil.Noise(4, 1, 10000)
	cfg := Config{SampleRate: 44100, Bands: []Band{{200, 4000, 1.5}}}

	p, err := NewProcessor(WithChunkSize(len(x)))
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	got, err := p.Process(context.Background(), x, cfg)
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}

	want, err := ProcessFrame(x, cfg)
	if err != nil {
		t.Fatalf("ProcessFrame error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
}

func TestProcessProgressMonotonic(t *testing.T) {
	x := testutil.Noise(5, 1, 10*1024)
	cfg := Config{SampleRate: 44100, Bands: []Band{{0, 22050, 0.9}}}

	var reported []float64
	p, err := NewProcessor(
		WithChunkSize(1024),
		WithOnProgress(func(fraction float64) {
			reported = append(reported, fraction)
		}),
	)
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	if _, err := p.Process(context.Background(), x, cfg); err != nil {
		t.Fatalf("Process error: %v", err)
	}

	if len(reported) != 10 {
		t.Fatalf("progress calls = %d, want 10", len(reported))
	}
	for i := 1; i < len(reported); i++ {
		if reported[i] < reported[i-1] {
			t.Fatalf("progress not monotonic: %v", reported)
		}
	}
	if reported[len(reported)-1] != 1.0 {
		t.Fatalf("final progress = %v, want exactly 1.0", reported[len(reported)-1])
	}
}

func TestProcessEmptyBandsFastPath(t *testing.T) {
	x := testutil.Noise(6, 1, 5000)

	var reported []float64
	p, err := NewProcessor(WithOnProgress(func(fraction float64) {
		reported = append(reported, fraction)
	}))
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	out, err := p.Process(context.Background(), x, Config{SampleRate: 44100})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	for i := range x {
		if out[i] != x[i] {
			t.Fatalf("index %d: got %v, want exact %v", i, out[i], x[i])
		}
	}
	if len(reported) != 1 || reported[0] != 1.0 {
		t.Fatalf("reported = %v, want [1]", reported)
	}
}

func TestProcessEmptySignal(t *testing.T) {
	p, err := NewProcessor()
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}
	out, err := p.Process(context.Background(), nil, Config{SampleRate: 44100, Bands: []Band{{0, 100, 1}}})
	if err != nil {
		t.Fatalf("Process error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len = %d, want 0", len(out))
	}
}

func TestProcessCancellation(t *testing.T) {
	x := testutil.Noise(7, 1, 64*1024)
	cfg := Config{SampleRate: 44100, Bands: []Band{{0, 22050, 0.5}}}

	ctx, cancel := context.WithCancel(context.Background())

	p, err := NewProcessor(
		WithChunkSize(8*1024),
		WithOnProgress(func(fraction float64) {
			if fraction >= 0.5 {
				cancel()
			}
		}),
	)
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	out, err := p.Process(ctx, x, cfg)
	if err == nil {
		t.Fatal("expected cancellation error")
	}
	if out != nil {
		t.Fatal("partial output must be discarded on cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error should wrap context.Canceled: %v", err)
	}
}

func TestChunkCountInvarianceAwayFromEdges(t *testing.T) {
	// Processing in one chunk vs several must agree except within a few
	// samples of each chunk edge.
	const chunk = 2048
	x := testutil.Sine(440, 44100, 0.7, 4*chunk)
	cfg := Config{SampleRate: 44100, Bands: []Band{{200, 2000, 1.6}}}

	single, err := NewProcessor(WithChunkSize(len(x)))
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}
	multi, err := NewProcessor(WithChunkSize(chunk))
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	a, err := single.Process(context.Background(), x, cfg)
	if err != nil {
		t.Fatalf("single Process error: %v", err)
	}
	b, err := multi.Process(context.Background(), x, cfg)
	if err != nil {
		t.Fatalf("multi Process error: %v", err)
	}

	const margin = 64
	for i := range a {
		if i%chunk < margin || chunk-(i%chunk) <= margin {
			continue
		}
		if diff := a[i] - b[i]; diff > 0.05 || diff < -0.05 {
			t.Fatalf("interior sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
