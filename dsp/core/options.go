package core

// ProcessorConfig defines the framing settings shared by analysis stages.
type ProcessorConfig struct {
	SampleRate float64
	FrameSize  int
	HopSize    int
	// FFTSize is the transform length. Zero selects the next power of two
	// at or above FrameSize.
	FFTSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns defaults suited to sinusoidal analysis of
// music at CD sample rate.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		FrameSize:  2048,
		HopSize:    512,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithFrameSize sets the analysis frame length in samples.
func WithFrameSize(frameSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if frameSize > 0 {
			cfg.FrameSize = frameSize
		}
	}
}

// WithHopSize sets the distance between successive frames in samples.
func WithHopSize(hopSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if hopSize > 0 {
			cfg.HopSize = hopSize
		}
	}
}

// WithFFTSize sets the transform length.
func WithFFTSize(fftSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if fftSize > 0 {
			cfg.FFTSize = fftSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// ResolvedFFTSize returns FFTSize, or the next power of two at or above
// FrameSize when FFTSize is unset.
func (c ProcessorConfig) ResolvedFFTSize() int {
	if c.FFTSize > 0 {
		return c.FFTSize
	}
	return NextPowerOf2(c.FrameSize)
}
