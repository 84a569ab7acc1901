package stft

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrames(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5, 6, 7}

	got := Frames(signal, 4, 3)
	want := [][]float64{
		{0, 0, 1, 2},
		{2, 3, 4, 5},
		{5, 6, 7, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("frames mismatch (-want +got):\n%s", diff)
	}

	for i, f := range got {
		if cap(f) != 4 {
			t.Fatalf("frame %d cap = %d, want 4", i, cap(f))
		}
	}
}

func TestFramesOddSize(t *testing.T) {
	got := Frames([]float64{1, 2, 3, 4}, 3, 2)
	want := [][]float64{
		{0, 1, 2},
		{2, 3, 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestFramesDegenerate(t *testing.T) {
	if f := Frames(nil, 4, 2); f != nil {
		t.Fatalf("expected nil for empty signal, got %v", f)
	}
	if f := Frames([]float64{1}, 0, 2); f != nil {
		t.Fatalf("expected nil for zero frame size, got %v", f)
	}
	if f := Frames([]float64{1}, 4, 0); f != nil {
		t.Fatalf("expected nil for zero hop, got %v", f)
	}
	if f := Frames([]float64{1}, 8, 4); len(f) != 1 || f[0][4] != 1 {
		t.Fatalf("single sample frames = %v", f)
	}
}
