package sinemodel

import (
	"fmt"
	"math"
	"strings"
)

// OrderBy selects the ordering of the peaks returned by [Analyzer.Analyze].
type OrderBy int

const (
	// OrderByFrequency returns peaks in ascending frequency.
	OrderByFrequency OrderBy = iota
	// OrderByMagnitude returns peaks in descending magnitude.
	OrderByMagnitude
)

// String returns the configuration name of o.
func (o OrderBy) String() string {
	switch o {
	case OrderByFrequency:
		return "frequency"
	case OrderByMagnitude:
		return "magnitude"
	default:
		return fmt.Sprintf("OrderBy(%d)", int(o))
	}
}

// ParseOrderBy maps "frequency" or "magnitude" (any case) to an OrderBy.
func ParseOrderBy(name string) (OrderBy, error) {
	switch strings.ToLower(name) {
	case "frequency":
		return OrderByFrequency, nil
	case "magnitude":
		return OrderByMagnitude, nil
	default:
		return 0, fmt.Errorf("%w: unsupported ordering type: %q", ErrInvalidConfig, name)
	}
}

// Config holds the resolved analyzer parameters.
type Config struct {
	SampleRate   float64
	MaxPeaks     int
	MinFrequency float64
	MaxFrequency float64
	// MagnitudeThreshold discards peaks whose magnitude is strictly below it.
	MagnitudeThreshold float64
	OrderBy            OrderBy
}

// DefaultConfig returns the analyzer defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate:         44100,
		MaxPeaks:           100,
		MinFrequency:       0,
		MaxFrequency:       5000,
		MagnitudeThreshold: 0,
		OrderBy:            OrderByFrequency,
	}
}

func (c Config) validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %f", ErrInvalidConfig, c.SampleRate)
	}
	if c.MaxPeaks < 1 {
		return fmt.Errorf("%w: max peaks must be >= 1: %d", ErrInvalidConfig, c.MaxPeaks)
	}
	if !(c.MinFrequency >= 0) {
		return fmt.Errorf("%w: min frequency must be >= 0: %f", ErrInvalidConfig, c.MinFrequency)
	}
	if !(c.MaxFrequency > 0) {
		return fmt.Errorf("%w: max frequency must be > 0: %f", ErrInvalidConfig, c.MaxFrequency)
	}
	if math.IsNaN(c.MagnitudeThreshold) {
		return fmt.Errorf("%w: magnitude threshold is NaN", ErrInvalidConfig)
	}
	return nil
}

type settings struct {
	cfg     Config
	orderBy string
	polar   PolarConverter
	picker  PeakPicker
}

// Option configures an [Analyzer].
type Option func(*settings)

// WithSampleRate sets the sample rate in Hz of the analyzed signal.
func WithSampleRate(sampleRate float64) Option {
	return func(s *settings) { s.cfg.SampleRate = sampleRate }
}

// WithMaxPeaks caps the number of peaks returned per frame.
func WithMaxPeaks(n int) Option {
	return func(s *settings) { s.cfg.MaxPeaks = n }
}

// WithMinFrequency sets the lowest frequency in Hz a peak may have.
func WithMinFrequency(hz float64) Option {
	return func(s *settings) { s.cfg.MinFrequency = hz }
}

// WithMaxFrequency sets the highest frequency in Hz a peak may have.
func WithMaxFrequency(hz float64) Option {
	return func(s *settings) { s.cfg.MaxFrequency = hz }
}

// WithMagnitudeThreshold discards peaks with a magnitude below threshold.
func WithMagnitudeThreshold(threshold float64) Option {
	return func(s *settings) { s.cfg.MagnitudeThreshold = threshold }
}

// WithOrderBy selects "frequency" (ascending) or "magnitude" (descending)
// ordering. The name is resolved by [NewAnalyzer].
func WithOrderBy(name string) Option {
	return func(s *settings) { s.orderBy = name }
}

// WithPolarConverter replaces the complex-to-polar conversion.
func WithPolarConverter(pc PolarConverter) Option {
	return func(s *settings) { s.polar = pc }
}

// WithPeakPicker replaces the peak picker built from the configuration.
// The picker must report positions in Hz.
func WithPeakPicker(pp PeakPicker) Option {
	return func(s *settings) { s.picker = pp }
}
