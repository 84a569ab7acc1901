package sinemodel_test

import (
	"fmt"

	"github.com/cwbudde/algo-sinemodel/dsp/sinemodel"
	"github.com/cwbudde/algo-sinemodel/internal/testutil"
)

func ExampleAnalyzer_Analyze() {
	a, err := sinemodel.NewAnalyzer(sinemodel.WithSampleRate(44100), sinemodel.WithMaxPeaks(1))
	if err != nil {
		panic(err)
	}

	// 2048-point FFT, one lobe centred on bin 46
	pk, err := a.Analyze(testutil.PeakBins(1025, 46, 0.8, 0.3))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f Hz  mag=%.2f  phase=%.2f\n", pk.Frequencies[0], pk.Magnitudes[0], pk.Phases[0])
	// Output: 990.53 Hz  mag=0.80  phase=0.30
}

func ExampleContinueTracks() {
	prev := []float64{300, 0}
	pk := sinemodel.Peaks{
		Magnitudes:  []float64{3, 2, 1},
		Frequencies: []float64{305, 900, 1500},
		Phases:      []float64{0, 0, 0},
	}

	tracks, err := sinemodel.ContinueTracks(pk, prev, sinemodel.DefaultTrackingConfig())
	if err != nil {
		panic(err)
	}

	fmt.Println(tracks.Frequencies)
	// Output: [305 900 1500]
}

func ExampleCleanTracks() {
	freqs := [][]float64{
		{440, 880},
		{441, 0},
		{442, 1200},
	}

	removed := sinemodel.CleanTracks(freqs, 2)
	fmt.Println(removed, freqs)
	// Output: 2 [[440 0] [441 0] [442 0]]
}
