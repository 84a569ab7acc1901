package sinemodel

import (
	"math"
	"testing"
)

func TestInterpolatePhases(t *testing.T) {
	// 8 bins over 0..8 Hz: bin k sits at k Hz.
	const sampleRate = 16.0
	wrapped := []float64{-1, 3, -3, 0.1, 0.2, 0.3, 2, -2.5}

	tests := []struct {
		name string
		freq float64
		want float64
	}{
		{name: "dc bin", freq: 0, want: -1},
		{name: "last bin", freq: 7, want: -2.5},
		{name: "nyquist clamps to last bin", freq: 8, want: -2.5},
		{name: "beyond nyquist", freq: 20, want: -2.5},
		{name: "negative frequency", freq: -3, want: -1},
		{name: "blend towards upper neighbour", freq: 1.25, want: 0.25*-3 + 0.75*3},
		{name: "blend towards lower neighbour", freq: 0.75, want: -0.25*-1 + 1.25*3},
		{name: "close phases snap to nearest bin", freq: 3.4, want: 0.1},
		{name: "tie rounds up", freq: 4.5, want: 0.3},
		{name: "exact bin", freq: 6, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolatePhases(wrapped, []float64{tt.freq}, sampleRate)
			if len(got) != 1 {
				t.Fatalf("len = %d, want 1", len(got))
			}
			if math.Abs(got[0]-tt.want) > 1e-12 {
				t.Fatalf("phase(%v Hz) = %v, want %v", tt.freq, got[0], tt.want)
			}
		})
	}
}

func TestInterpolatePhasesKeepsOrder(t *testing.T) {
	phase := []float64{0.5, 1, 1.5, 2}
	freqs := []float64{3, 1, 2}

	got := InterpolatePhases(phase, freqs, 8)
	want := []float64{2, 1, 1.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestInterpolatePhasesEmpty(t *testing.T) {
	if got := InterpolatePhases([]float64{1, 2}, nil, 44100); len(got) != 0 {
		t.Fatalf("expected no phases, got %v", got)
	}

	got := InterpolatePhases(nil, []float64{100, 200}, 44100)
	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Fatalf("expected zero phases for an empty phase array, got %v", got)
	}
}
