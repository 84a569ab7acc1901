package sinemodel

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Tracks is a slot array of sinusoidal tracks. The three slices are
// index-aligned, one entry per slot. A zero frequency marks a slot whose
// track is silent or unassigned.
type Tracks struct {
	Frequencies []float64
	Magnitudes  []float64
	Phases      []float64
}

// NewTracks returns n silent slots.
func NewTracks(n int) Tracks {
	n = max(n, 0)
	return Tracks{
		Frequencies: make([]float64, n),
		Magnitudes:  make([]float64, n),
		Phases:      make([]float64, n),
	}
}

// Len returns the number of slots.
func (t Tracks) Len() int { return len(t.Frequencies) }

// Active reports whether slot i carries a sinusoid.
func (t Tracks) Active(i int) bool { return t.Frequencies[i] != 0 }

// ActiveCount returns the number of non-silent slots.
func (t Tracks) ActiveCount() int {
	n := 0
	for _, f := range t.Frequencies {
		if f != 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of t.
func (t Tracks) Clone() Tracks {
	return Tracks{
		Frequencies: slices.Clone(t.Frequencies),
		Magnitudes:  slices.Clone(t.Magnitudes),
		Phases:      slices.Clone(t.Phases),
	}
}

func (t Tracks) truncate(n int) Tracks {
	if n <= 0 || t.Len() <= n {
		return t
	}
	return Tracks{
		Frequencies: t.Frequencies[:n:n],
		Magnitudes:  t.Magnitudes[:n:n],
		Phases:      t.Phases[:n:n],
	}
}

// TrackingConfig holds the frequency deviation tolerance used to continue a
// track. A peak at f Hz may continue a track whose frequency differs by less
// than FreqDevOffset + FreqDevSlope*f.
type TrackingConfig struct {
	FreqDevOffset float64
	FreqDevSlope  float64
}

// DefaultTrackingConfig returns a 20 Hz tolerance at DC growing by 1% of the
// peak frequency.
func DefaultTrackingConfig() TrackingConfig {
	return TrackingConfig{FreqDevOffset: 20, FreqDevSlope: 0.01}
}

func (c TrackingConfig) validate() error {
	if !(c.FreqDevOffset >= 0) || math.IsInf(c.FreqDevOffset, 0) {
		return fmt.Errorf("%w: frequency deviation offset must be >= 0: %f", ErrInvalidConfig, c.FreqDevOffset)
	}
	if !(c.FreqDevSlope >= 0) || math.IsInf(c.FreqDevSlope, 0) {
		return fmt.Errorf("%w: frequency deviation slope must be >= 0: %f", ErrInvalidConfig, c.FreqDevSlope)
	}
	return nil
}

func (c TrackingConfig) tolerance(freq float64) float64 {
	return c.FreqDevOffset + c.FreqDevSlope*freq
}

// slot is the occupancy of one output slot while tracks are being assigned.
type slot struct {
	occupied bool
	peak     int
}

// ContinueTracks assigns the peaks of the current frame to the track slots of
// the previous frame and returns the new slot array.
//
// prev holds the previous frame's track frequencies; zero marks an empty
// slot. Peaks with a frequency <= 0 are ignored. Peaks are visited in
// descending magnitude (equal magnitudes keep their input order) and each one
// continues the nearest still-unassigned track if the distance is within the
// tolerance of cfg. Peaks left over then fill the slots that were empty in
// prev, strongest first and in slot order, and any remaining peaks are
// appended as new slots. Tracks that received no peak are silent in the
// result.
//
// The result has len(prev) slots plus one per appended peak. Neither prev nor
// the peak slices are modified.
func ContinueTracks(peaks Peaks, prev []float64, cfg TrackingConfig) (Tracks, error) {
	if err := peaks.validate(); err != nil {
		return Tracks{}, err
	}
	if err := cfg.validate(); err != nil {
		return Tracks{}, err
	}

	live := nonZero(prev, func(f float64) bool { return f != 0 })
	order := argsortDescending(peaks.Magnitudes, nonZero(peaks.Frequencies, func(f float64) bool { return f > 0 }))

	slots := make([]slot, len(prev))
	used := make([]bool, peaks.Len())
	dist := make([]float64, 0, len(live))

	for _, p := range order {
		if len(live) == 0 {
			break
		}

		freq := peaks.Frequencies[p]
		dist = dist[:0]
		for _, s := range live {
			dist = append(dist, math.Abs(freq-prev[s]))
		}

		nearest := floats.MinIdx(dist)
		if dist[nearest] < cfg.tolerance(freq) {
			slots[live[nearest]] = slot{occupied: true, peak: p}
			used[p] = true
			live = slices.Delete(live, nearest, nearest+1)
		}
	}

	left := make([]int, 0, len(order))
	for _, p := range order {
		if !used[p] {
			left = append(left, p)
		}
	}

	empty := nonZero(prev, func(f float64) bool { return f == 0 })
	filled := min(len(left), len(empty))
	for i := range filled {
		slots[empty[i]] = slot{occupied: true, peak: left[i]}
	}
	for _, p := range left[filled:] {
		slots = append(slots, slot{occupied: true, peak: p})
	}

	out := NewTracks(len(slots))
	for i, s := range slots {
		if !s.occupied {
			continue
		}
		out.Frequencies[i] = peaks.Frequencies[s.peak]
		out.Magnitudes[i] = peaks.Magnitudes[s.peak]
		out.Phases[i] = peaks.Phases[s.peak]
	}
	return out, nil
}
