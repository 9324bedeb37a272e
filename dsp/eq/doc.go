// Package eq implements frequency-domain gain shaping over sub-band
// ranges ("equalizer bands").
//
// A Band scales the spectrum bins between two frequencies by a linear
// gain. ProcessFrame applies a full Config to a single frame
// (FFT, band gains with Hermitian mirroring, inverse FFT), and Processor
// drives arbitrarily long signals through that path chunk by chunk with
// progress reporting and context-based cancellation between chunks.
//
// Chunks are transformed independently, without overlap or cross-fading,
// so a strong band-edge gain change can produce a small discontinuity at
// a chunk boundary. Output away from the boundaries is unaffected.
//
// Configurations round-trip through JSON: ParseConfig tolerates unknown
// and missing optional fields, EncodeConfig validates strictly before
// emitting.
package eq
