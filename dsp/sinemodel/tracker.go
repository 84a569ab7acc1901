package sinemodel

import "fmt"

// Tracker runs [ContinueTracks] frame after frame for one stream and keeps
// the slot array between calls.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	cfg       TrackingConfig
	maxTracks int
	state     Tracks
}

// NewTracker returns a Tracker with no tracks. maxTracks caps the number of
// slots kept after each update; zero leaves it unbounded.
func NewTracker(cfg TrackingConfig, maxTracks int) (*Tracker, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if maxTracks < 0 {
		return nil, fmt.Errorf("%w: max tracks must be >= 0: %d", ErrInvalidConfig, maxTracks)
	}
	return &Tracker{cfg: cfg, maxTracks: maxTracks, state: NewTracks(0)}, nil
}

// Update continues the current tracks with the peaks of the next frame and
// returns the new slot array. Slots beyond the cap are dropped.
func (t *Tracker) Update(peaks Peaks) (Tracks, error) {
	next, err := ContinueTracks(peaks, t.state.Frequencies, t.cfg)
	if err != nil {
		return Tracks{}, err
	}
	t.state = next.truncate(t.maxTracks)
	return t.state.Clone(), nil
}

// State returns a copy of the current slot array.
func (t *Tracker) State() Tracks { return t.state.Clone() }

// Reset silences and removes all tracks.
func (t *Tracker) Reset() { t.state = NewTracks(0) }
