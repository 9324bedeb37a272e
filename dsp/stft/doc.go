// Package stft computes short-time Fourier transform spectrograms of
// real signals.
//
// Generate slices the signal into overlapping windowed frames,
// transforms each frame and collects the per-bin results into a
// frequency-major matrix. Long signals are stride-decimated to respect
// the frame cap; the decimation is not anti-aliased, so content above
// the reduced Nyquist aliases into the result, and both axes report
// the effective (reduced) sample rate. A mel-scale projection of the
// power spectrogram is available for perceptual displays.
package stft
