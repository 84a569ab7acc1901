// Package peaks locates local maxima in a real-valued array.
//
// A [Detector] walks the array once, refines each maximum to sub-sample
// accuracy with a three-point parabola (or the centre of a plateau), maps
// sample indices onto a caller-defined position range, and returns the
// strongest peaks ordered either by position or by amplitude.
//
// Typical use is on a one-sided magnitude spectrum with the range set to the
// Nyquist frequency, so that positions come out in Hz.
package peaks
