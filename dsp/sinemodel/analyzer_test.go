package sinemodel

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-sinemodel/dsp/peaks"
	"github.com/cwbudde/algo-sinemodel/internal/testutil"
)

func mustAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(opts...)
	if err != nil {
		t.Fatalf("NewAnalyzer error: %v", err)
	}
	return a
}

func noiseSpectrum(seed int64, size int) []complex128 {
	re := testutil.DeterministicNoise(seed, 1, size)
	im := testutil.DeterministicNoise(seed+1, 1, size)
	out := make([]complex128, size)
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}

func TestAnalyzeSinglePartial(t *testing.T) {
	const (
		size      = 1025 // 2048-point FFT
		center    = 46   // 46 * 44100/2048 Hz, the bin closest to 1 kHz
		amplitude = 0.8
		phase     = 0.3
	)

	a := mustAnalyzer(t, WithSampleRate(44100), WithMaxPeaks(1))

	got, err := a.Analyze(testutil.PeakBins(size, center, amplitude, phase))
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	want := Peaks{
		Magnitudes:  []float64{amplitude},
		Frequencies: []float64{center * 44100.0 / 2048},
		Phases:      []float64{phase},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("peaks mismatch (-want +got):\n%s", diff)
	}

	if math.Abs(got.Frequencies[0]-1000) > 44100.0/2048 {
		t.Fatalf("frequency %v is more than one bin away from 1 kHz", got.Frequencies[0])
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	const (
		maxPeaks  = 10
		minFreq   = 1000.0
		maxFreq   = 8000.0
		threshold = 0.5
	)

	for _, order := range []string{"frequency", "magnitude"} {
		t.Run(order, func(t *testing.T) {
			a := mustAnalyzer(t,
				WithSampleRate(44100),
				WithMaxPeaks(maxPeaks),
				WithMinFrequency(minFreq),
				WithMaxFrequency(maxFreq),
				WithMagnitudeThreshold(threshold),
				WithOrderBy(order),
			)

			for seed := int64(1); seed <= 20; seed++ {
				got, err := a.Analyze(noiseSpectrum(seed, 513))
				if err != nil {
					t.Fatalf("seed %d: Analyze error: %v", seed, err)
				}

				n := got.Len()
				if len(got.Magnitudes) != n || len(got.Phases) != n {
					t.Fatalf("seed %d: misaligned output %d/%d/%d", seed, len(got.Magnitudes), n, len(got.Phases))
				}
				if n == 0 || n > maxPeaks {
					t.Fatalf("seed %d: peak count %d outside [1,%d]", seed, n, maxPeaks)
				}

				for i := range n {
					if got.Magnitudes[i] < threshold {
						t.Fatalf("seed %d: magnitude[%d]=%v below threshold", seed, i, got.Magnitudes[i])
					}
					if f := got.Frequencies[i]; f < minFreq || f > maxFreq {
						t.Fatalf("seed %d: frequency[%d]=%v outside [%v,%v]", seed, i, f, minFreq, maxFreq)
					}
					if i == 0 {
						continue
					}
					if order == "frequency" && got.Frequencies[i] < got.Frequencies[i-1] {
						t.Fatalf("seed %d: frequencies not ascending: %v", seed, got.Frequencies)
					}
					if order == "magnitude" && got.Magnitudes[i] > got.Magnitudes[i-1] {
						t.Fatalf("seed %d: magnitudes not descending: %v", seed, got.Magnitudes)
					}
				}
			}
		})
	}
}

func TestAnalyzeOrderByMagnitude(t *testing.T) {
	bins := make([]complex128, 1025)
	testutil.AddPeak(bins, 20, 0.2, 0)
	testutil.AddPeak(bins, 60, 0.9, 0)
	testutil.AddPeak(bins, 100, 0.5, 0)

	a := mustAnalyzer(t, WithOrderBy("MAGNITUDE"))
	got, err := a.Analyze(bins)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	binHz := 44100.0 / 2048
	want := []float64{60 * binHz, 100 * binHz, 20 * binHz}
	if diff := cmp.Diff(want, got.Frequencies, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeEmptySpectrum(t *testing.T) {
	got, err := mustAnalyzer(t).Analyze(nil)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if got.Len() != 0 || len(got.Magnitudes) != 0 || len(got.Phases) != 0 {
		t.Fatalf("expected empty peaks, got %+v", got)
	}
}

func TestAnalyzeSilentSpectrum(t *testing.T) {
	got, err := mustAnalyzer(t).Analyze(make([]complex128, 513))
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("expected no peaks, got %+v", got)
	}
}

func TestNewAnalyzerRejectsUnknownOrdering(t *testing.T) {
	a, err := NewAnalyzer(WithOrderBy("loudness"))
	if err == nil {
		t.Fatalf("expected error, got analyzer %+v", a)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("error %v does not wrap ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "loudness") {
		t.Fatalf("error %q does not name the offending value", err)
	}
}

func TestNewAnalyzerRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "sample rate", opt: WithSampleRate(0)},
		{name: "infinite sample rate", opt: WithSampleRate(math.Inf(1))},
		{name: "max peaks", opt: WithMaxPeaks(0)},
		{name: "min frequency", opt: WithMinFrequency(-1)},
		{name: "max frequency", opt: WithMaxFrequency(0)},
		{name: "threshold", opt: WithMagnitudeThreshold(math.NaN())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAnalyzer(tt.opt); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewAnalyzerPropagatesPeakPickerErrors(t *testing.T) {
	_, err := NewAnalyzer(WithMinFrequency(3000), WithMaxFrequency(2000))
	if !errors.Is(err, peaks.ErrInvalidConfig) {
		t.Fatalf("expected peaks.ErrInvalidConfig, got %v", err)
	}
}

func TestAnalyzerConfig(t *testing.T) {
	cfg := mustAnalyzer(t, WithSampleRate(48000), WithOrderBy("magnitude")).Config()

	want := DefaultConfig()
	want.SampleRate = 48000
	want.OrderBy = OrderByMagnitude
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzerInjectedCollaborators(t *testing.T) {
	polar := PolarConverterFunc(func(bins []complex128) ([]float64, []float64) {
		mag := make([]float64, len(bins))
		phase := make([]float64, len(bins))
		for i, b := range bins {
			mag[i] = cmplx.Abs(b)
			phase[i] = 1
		}
		return mag, phase
	})
	picker := PeakPickerFunc(func(array []float64) ([]float64, []float64, error) {
		return []float64{1000}, []float64{array[0]}, nil
	})

	a := mustAnalyzer(t, WithPolarConverter(polar), WithPeakPicker(picker))
	got, err := a.Analyze([]complex128{3 + 4i, 0, 0, 0})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	want := Peaks{Magnitudes: []float64{5}, Frequencies: []float64{1000}, Phases: []float64{1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("peaks mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeReturnsPickerErrorUnchanged(t *testing.T) {
	errBoom := errors.New("boom")
	a := mustAnalyzer(t, WithPeakPicker(PeakPickerFunc(func([]float64) ([]float64, []float64, error) {
		return nil, nil, errBoom
	})))

	if _, err := a.Analyze([]complex128{1, 2, 3}); err != errBoom { //nolint:errorlint
		t.Fatalf("Analyze error = %v, want %v", err, errBoom)
	}
}

func TestParseOrderBy(t *testing.T) {
	tests := []struct {
		in   string
		want OrderBy
	}{
		{in: "frequency", want: OrderByFrequency},
		{in: "Frequency", want: OrderByFrequency},
		{in: "magnitude", want: OrderByMagnitude},
	}
	for _, tt := range tests {
		got, err := ParseOrderBy(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseOrderBy(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if got.String() != strings.ToLower(tt.in) {
			t.Fatalf("String() = %q, want %q", got.String(), strings.ToLower(tt.in))
		}
	}
	if _, err := ParseOrderBy(""); err == nil {
		t.Fatalf("expected error for empty ordering")
	}
}
