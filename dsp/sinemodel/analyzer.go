package sinemodel

import (
	"fmt"

	"github.com/cwbudde/algo-sinemodel/dsp/peaks"
	"github.com/cwbudde/algo-sinemodel/dsp/spectrum"
)

// PolarConverter splits a complex spectrum into magnitude and phase arrays of
// the input's length.
type PolarConverter interface {
	Convert(spectrum []complex128) (magnitude, phase []float64)
}

// PolarConverterFunc adapts a function to [PolarConverter].
type PolarConverterFunc func(spectrum []complex128) (magnitude, phase []float64)

// Convert calls f.
func (f PolarConverterFunc) Convert(spectrum []complex128) (magnitude, phase []float64) {
	return f(spectrum)
}

// PeakPicker returns the ranked, filtered peaks of a magnitude array as
// index-aligned positions and amplitudes.
type PeakPicker interface {
	Pick(array []float64) (positions, amplitudes []float64, err error)
}

// PeakPickerFunc adapts a function to [PeakPicker].
type PeakPickerFunc func(array []float64) (positions, amplitudes []float64, err error)

// Pick calls f.
func (f PeakPickerFunc) Pick(array []float64) (positions, amplitudes []float64, err error) {
	return f(array)
}

// Peaks holds the sinusoidal peaks of one frame. The three slices are
// index-aligned.
type Peaks struct {
	Magnitudes  []float64
	Frequencies []float64
	Phases      []float64
}

// Len returns the number of peaks.
func (p Peaks) Len() int { return len(p.Frequencies) }

func (p Peaks) validate() error {
	if len(p.Magnitudes) != len(p.Frequencies) || len(p.Phases) != len(p.Frequencies) {
		return fmt.Errorf("%w: peaks magnitudes=%d frequencies=%d phases=%d",
			ErrLengthMismatch, len(p.Magnitudes), len(p.Frequencies), len(p.Phases))
	}
	return nil
}

// Analyzer extracts sinusoidal peaks from single spectrum frames.
type Analyzer struct {
	cfg    Config
	polar  PolarConverter
	picker PeakPicker
}

// NewAnalyzer resolves opts over [DefaultConfig] and builds an Analyzer.
//
// Invalid parameters and unknown ordering names are reported here, never by
// Analyze. Errors from configuring the default peak picker are returned
// unchanged.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	if s.orderBy != "" {
		order, err := ParseOrderBy(s.orderBy)
		if err != nil {
			return nil, err
		}
		s.cfg.OrderBy = order
	}

	if err := s.cfg.validate(); err != nil {
		return nil, err
	}

	if s.polar == nil {
		s.polar = PolarConverterFunc(spectrum.CartesianToPolar)
	}

	if s.picker == nil {
		d, err := peaks.New(peakConfig(s.cfg))
		if err != nil {
			return nil, err
		}
		s.picker = PeakPickerFunc(d.Detect)
	}

	return &Analyzer{cfg: s.cfg, polar: s.polar, picker: s.picker}, nil
}

func peakConfig(cfg Config) peaks.Config {
	order := peaks.ByPosition
	if cfg.OrderBy == OrderByMagnitude {
		order = peaks.ByAmplitude
	}
	return peaks.Config{
		Range:       cfg.SampleRate / 2,
		MaxPeaks:    cfg.MaxPeaks,
		MinPosition: cfg.MinFrequency,
		MaxPosition: cfg.MaxFrequency,
		Threshold:   cfg.MagnitudeThreshold,
		Interpolate: true,
		OrderBy:     order,
	}
}

// Config returns the resolved configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze extracts the peaks of one spectrum frame. The spectrum is expected
// to be one-sided, bin 0 being DC and the last bin Nyquist.
//
// An empty spectrum yields empty peaks. Peak picker errors are returned
// unchanged.
func (a *Analyzer) Analyze(bins []complex128) (Peaks, error) {
	if len(bins) == 0 {
		return Peaks{Magnitudes: []float64{}, Frequencies: []float64{}, Phases: []float64{}}, nil
	}

	mag, phase := a.polar.Convert(bins)

	freqs, mags, err := a.picker.Pick(mag)
	if err != nil {
		return Peaks{}, err
	}

	return Peaks{
		Magnitudes:  mags,
		Frequencies: freqs,
		Phases:      InterpolatePhases(phase, freqs, a.cfg.SampleRate),
	}, nil
}
