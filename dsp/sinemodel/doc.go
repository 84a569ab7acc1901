// Package sinemodel implements the analysis half of a sinusoidal model.
//
// An [Analyzer] turns one complex spectrum frame into a set of sinusoidal
// peaks: magnitudes, frequencies in Hz and phases, index-aligned. Peak
// positions are refined to sub-bin accuracy by the peak picker, and phases are
// read from the bin phase array by [InterpolatePhases].
//
// [ContinueTracks] links the peaks of successive frames into persistent
// tracks. Track state is a slot array ([Tracks]) in which a zero frequency
// marks a silent slot. The caller owns that state and passes the previous
// frame's frequencies back in on every call; [Tracker] wraps this loop for a
// single stream, and [History] collects frames so that short-lived tracks can
// be removed with [CleanTracks].
//
// Analyzers are immutable after construction and may be shared between
// goroutines. Trackers and histories hold per-stream state and must not be.
package sinemodel
