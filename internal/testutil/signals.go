package testutil

import (
	"math/cmplx"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// PeakBins returns a one-sided spectrum of size bins holding a single
// symmetric three-bin lobe centred on bin center: amplitude at the centre,
// half of it on both neighbours, all with the same phase.
func PeakBins(size, center int, amplitude, phase float64) []complex128 {
	out := make([]complex128, size)
	AddPeak(out, center, amplitude, phase)
	return out
}

// AddPeak adds a lobe as produced by [PeakBins] to bins.
func AddPeak(bins []complex128, center int, amplitude, phase float64) {
	gains := [3]float64{0.5, 1, 0.5}
	for i, gain := range gains {
		k := center - 1 + i
		if k >= 0 && k < len(bins) {
			bins[k] += cmplx.Rect(gain*amplitude, phase)
		}
	}
}
