// Package spectrum converts complex spectrum bins into polar form.
//
// The package does not implement an FFT. It operates on complex bins produced
// by an external FFT backend (see package stft) and provides the
// magnitude/phase split consumed by sinusoidal peak analysis.
package spectrum
