// Package stft frames time-domain signals and turns each frame into a
// one-sided complex spectrum suitable for sinusoidal analysis.
//
// Frames are windowed and rotated into zero-phase position before the FFT, so
// the phase of a bin refers to the frame centre. Spectra are scaled by
// 2/sum(window): a stationary sinusoid of amplitude A centred on a bin has a
// magnitude close to A there.
package stft
