package eq

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/fft"
)

// DefaultChunkSize is the per-chunk frame length used by Processor when
// not overridden. The value balances transform efficiency against the
// latency of a single chunk.
const DefaultChunkSize = 131072

// ProgressFunc receives the completed fraction of a chunked run after
// each chunk, ending at exactly 1.0.
type ProgressFunc func(fraction float64)

// ProcessorOption configures a [Processor].
type ProcessorOption func(*processorConfig) error

type processorConfig struct {
	chunkSize  int
	onProgress ProgressFunc
}

// WithChunkSize sets the chunk length in samples (default [DefaultChunkSize]).
func WithChunkSize(n int) ProcessorOption {
	return func(cfg *processorConfig) error {
		if n < 1 {
			return fmt.Errorf("eq: chunk size must be >= 1: %d", n)
		}
		cfg.chunkSize = n
		return nil
	}
}

// WithOnProgress sets a callback invoked after each completed chunk.
func WithOnProgress(fn ProgressFunc) ProcessorOption {
	return func(cfg *processorConfig) error {
		cfg.onProgress = fn
		return nil
	}
}

// Processor drives long signals through the equalizer chunk by chunk.
// Each chunk is zero-padded and transformed independently; the working
// buffer pair is reused across chunks, so a Processor must not be shared
// by concurrent Process calls.
type Processor struct {
	chunkSize  int
	onProgress ProgressFunc
	work       *buffer.Pair
}

// NewProcessor creates a chunked equalizer processor.
func NewProcessor(opts ...ProcessorOption) (*Processor, error) {
	cfg := processorConfig{chunkSize: DefaultChunkSize}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Processor{
		chunkSize:  cfg.chunkSize,
		onProgress: cfg.onProgress,
		work:       buffer.New(0),
	}, nil
}

// ChunkSize returns the configured chunk length in samples.
func (p *Processor) ChunkSize() int {
	return p.chunkSize
}

// Process applies cfg to signal and returns a new signal of the same
// length. The context is checked between chunks; cancellation abandons
// the run and discards all partial output. cfg is re-read for every
// chunk, so mutating it mid-run affects only chunks not yet processed.
// A chunk failure aborts the whole run with the chunk index in the error.
func (p *Processor) Process(ctx context.Context, signal []float64, cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out, nil
	}

	if len(cfg.Bands) == 0 {
		copy(out, signal)
		if p.onProgress != nil {
			p.onProgress(1)
		}
		return out, nil
	}

	total := (len(signal) + p.chunkSize - 1) / p.chunkSize

	for idx := 0; idx < total; idx++ {
		// Cooperative checkpoint: the only suspension/cancellation point.
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("eq: chunk %d/%d: %w", idx, total, ctx.Err())
		default:
		}

		lo := idx * p.chunkSize
		hi := min(lo+p.chunkSize, len(signal))

		if err := p.processChunkInto(out[lo:hi], signal[lo:hi], cfg); err != nil {
			return nil, fmt.Errorf("eq: chunk %d/%d: %w", idx, total, err)
		}

		if p.onProgress != nil {
			p.onProgress(float64(idx+1) / float64(total))
		}
	}

	return out, nil
}

func (p *Processor) processChunkInto(dst, chunk []float64, cfg Config) error {
	p.work.Resize(fft.NextPow2(len(chunk)))
	p.work.Zero()
	copy(p.work.Re, chunk)

	if err := fft.ForwardInPlace(p.work); err != nil {
		return err
	}

	applyGains(p.work.Re, p.work.Im, cfg)

	if err := fft.InverseInPlace(p.work); err != nil {
		return err
	}

	copy(dst, p.work.Re[:len(chunk)])

	return nil
}
