package sinemodel

import "math"

// InterpolatePhases returns one phase per peak frequency, read from the
// bin-indexed phase array.
//
// A frequency f maps to the fractional bin pos = N*f/(sampleRate/2), with N
// the phase array length. The nearest bin idx (ties round up) and its
// neighbour on the side of pos are blended linearly, a*phase[n] +
// (1-a)*phase[idx] with a = pos-idx, but only when the two raw phases differ
// by more than pi. Otherwise phase[idx] is used as is, as it is for the last
// bin and for positions beyond it.
func InterpolatePhases(phase, frequencies []float64, sampleRate float64) []float64 {
	out := make([]float64, len(frequencies))
	n := len(phase)
	if n == 0 {
		return out
	}

	half := sampleRate / 2
	for i, f := range frequencies {
		pos := float64(n) * (f / half)
		idx := int(math.Floor(pos + 0.5))

		switch {
		case idx >= n:
			out[i] = phase[n-1]
			continue
		case idx < 0:
			out[i] = phase[0]
			continue
		}

		a := pos - float64(idx)
		switch {
		case a < 0 && idx > 0:
			out[i] = blendPhase(phase[idx-1], phase[idx], a)
		case idx < n-1:
			out[i] = blendPhase(phase[idx+1], phase[idx], a)
		default:
			out[i] = phase[idx]
		}
	}
	return out
}

func blendPhase(neighbour, nearest, a float64) float64 {
	if math.Abs(neighbour-nearest) > math.Pi {
		return a*neighbour + (1-a)*nearest
	}
	return nearest
}
