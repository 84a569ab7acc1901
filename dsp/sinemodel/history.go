package sinemodel

// History collects the slot arrays of successive frames.
//
// Frames may have different slot counts; missing slots read as silent. A
// History is not safe for concurrent use.
type History struct {
	frames []Tracks
	width  int
}

// Append stores a copy of t as the next frame.
func (h *History) Append(t Tracks) {
	h.frames = append(h.frames, t.Clone())
	h.width = max(h.width, t.Len())
}

// Len returns the number of frames.
func (h *History) Len() int { return len(h.frames) }

// Width returns the largest slot count seen.
func (h *History) Width() int { return h.width }

// Frame returns a copy of frame i.
func (h *History) Frame(i int) Tracks { return h.frames[i].Clone() }

// Frequencies returns a frames x Width matrix of track frequencies, padded
// with zeros.
func (h *History) Frequencies() [][]float64 {
	return h.matrix(func(t Tracks) []float64 { return t.Frequencies })
}

// Magnitudes returns a frames x Width matrix of track magnitudes.
func (h *History) Magnitudes() [][]float64 {
	return h.matrix(func(t Tracks) []float64 { return t.Magnitudes })
}

// Phases returns a frames x Width matrix of track phases.
func (h *History) Phases() [][]float64 {
	return h.matrix(func(t Tracks) []float64 { return t.Phases })
}

func (h *History) matrix(field func(Tracks) []float64) [][]float64 {
	out := make([][]float64, len(h.frames))
	for i, t := range h.frames {
		row := make([]float64, h.width)
		copy(row, field(t))
		out[i] = row
	}
	return out
}

// Clean silences every track segment shorter than minLength frames and
// returns the number of segments removed.
func (h *History) Clean(minLength int) int {
	freqs := make([][]float64, len(h.frames))
	for i, t := range h.frames {
		freqs[i] = t.Frequencies
	}
	return cleanSegments(freqs, minLength, func(frame, slot int) {
		t := h.frames[frame]
		t.Frequencies[slot] = 0
		t.Magnitudes[slot] = 0
		t.Phases[slot] = 0
	})
}

// CleanTracks zeroes, in place, every track segment shorter than minLength
// frames and returns the number of segments removed.
//
// freqs is indexed [frame][slot]. A segment is a maximal run of consecutive
// frames in which a slot has a non-zero frequency. Rows may differ in length;
// missing slots count as silent.
func CleanTracks(freqs [][]float64, minLength int) int {
	return cleanSegments(freqs, minLength, func(frame, slot int) {
		freqs[frame][slot] = 0
	})
}

func cleanSegments(freqs [][]float64, minLength int, clear func(frame, slot int)) int {
	if minLength <= 1 {
		return 0
	}

	width := 0
	for _, row := range freqs {
		width = max(width, len(row))
	}

	removed := 0
	for s := range width {
		start := -1
		for f := 0; f <= len(freqs); f++ {
			active := f < len(freqs) && s < len(freqs[f]) && freqs[f][s] != 0
			switch {
			case active && start < 0:
				start = f
			case !active && start >= 0:
				if f-start < minLength {
					for k := start; k < f; k++ {
						clear(k, s)
					}
					removed++
				}
				start = -1
			}
		}
	}
	return removed
}
