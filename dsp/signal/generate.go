package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sinemodel/dsp/core"
)

// Partial describes one sinusoidal component.
type Partial struct {
	// Freq is the start frequency in Hz.
	Freq float64
	// EndFreq, when positive, makes the frequency glide linearly from Freq
	// to EndFreq over the generated length.
	EndFreq float64
	Amp     float64
	// Phase is the initial phase in radians of the cosine.
	Phase float64
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Partials sums the given partials into a signal of the given length. Phase
// is accumulated sample by sample so gliding partials stay continuous.
func (g *Generator) Partials(partials []Partial, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("partials samples must be > 0: %d", samples)
	}

	nyquist := g.cfg.SampleRate / 2
	for i, p := range partials {
		if !(p.Freq > 0) || p.Freq >= nyquist || p.EndFreq < 0 || p.EndFreq >= nyquist {
			return nil, fmt.Errorf("partial %d frequency must be in (0, %f): %f -> %f", i, nyquist, p.Freq, p.EndFreq)
		}
	}

	out := make([]float64, samples)
	for _, p := range partials {
		end := p.Freq
		if p.EndFreq > 0 {
			end = p.EndFreq
		}

		phase := p.Phase
		for n := range out {
			out[n] += p.Amp * math.Cos(phase)

			f := p.Freq + (end-p.Freq)*float64(n)/float64(samples)
			phase += 2 * math.Pi * f / g.cfg.SampleRate
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Mix adds src to dst in place.
func Mix(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("mix length mismatch: %d != %d", len(dst), len(src))
	}
	for i, v := range src {
		dst[i] += v
	}
	return nil
}
