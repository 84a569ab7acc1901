package stft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sinemodel/dsp/core"
	"github.com/cwbudde/algo-sinemodel/dsp/window"
)

// ErrFrameLength is wrapped when a frame does not match the configured size.
var ErrFrameLength = errors.New("stft: frame length mismatch")

// Analyzer computes zero-phase spectra of fixed-size frames.
//
// The window and FFT plan are built once. An Analyzer reuses internal
// buffers and is not safe for concurrent use.
type Analyzer struct {
	cfg     core.ProcessorConfig
	fftSize int
	win     window.Type
	plan    *algofft.Plan[complex128]

	coeffs   []float64
	scale    float64
	windowed []float64
	buf      []complex128
}

// NewAnalyzer validates cfg and prepares an analyzer for frames of
// cfg.FrameSize samples windowed by win.
func NewAnalyzer(cfg core.ProcessorConfig, win window.Type) (*Analyzer, error) {
	if !(cfg.SampleRate > 0) {
		return nil, fmt.Errorf("stft sample rate must be > 0: %f", cfg.SampleRate)
	}
	if cfg.FrameSize < 2 {
		return nil, fmt.Errorf("stft frame size must be >= 2: %d", cfg.FrameSize)
	}

	fftSize := cfg.ResolvedFFTSize()
	if !core.IsPowerOf2(fftSize) || fftSize < cfg.FrameSize {
		return nil, fmt.Errorf("stft fft size must be a power of two >= frame size %d: %d", cfg.FrameSize, fftSize)
	}

	coeffs, err := window.New(win, cfg.FrameSize)
	if err != nil {
		return nil, fmt.Errorf("stft: %w", err)
	}

	sum := floats.Sum(coeffs)
	if sum == 0 {
		return nil, fmt.Errorf("stft: %v window of size %d sums to zero", win, cfg.FrameSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
	}

	cfg.FFTSize = fftSize

	return &Analyzer{
		cfg:      cfg,
		fftSize:  fftSize,
		win:      win,
		plan:     plan,
		coeffs:   coeffs,
		scale:    2 / sum,
		windowed: make([]float64, cfg.FrameSize),
	}, nil
}

// Config returns the configuration with the FFT size resolved.
func (a *Analyzer) Config() core.ProcessorConfig { return a.cfg }

// Window returns the analysis window type.
func (a *Analyzer) Window() window.Type { return a.win }

// Bins returns the number of bins returned by [Analyzer.Spectrum].
func (a *Analyzer) Bins() int { return a.fftSize/2 + 1 }

// BinWidth returns the bin spacing in Hz.
func (a *Analyzer) BinWidth() float64 { return a.cfg.SampleRate / float64(a.fftSize) }

// Spectrum returns the one-sided spectrum of frame, bin 0 being DC and the
// last bin Nyquist. The result is freshly allocated.
func (a *Analyzer) Spectrum(frame []float64) ([]complex128, error) {
	if err := window.ApplyCoefficients(a.windowed, frame, a.coeffs); err != nil {
		return nil, fmt.Errorf("%w: got %d samples, want %d", ErrFrameLength, len(frame), a.cfg.FrameSize)
	}

	a.buf = core.EnsureLen(a.buf, a.fftSize)
	core.Zero(a.buf)

	// the second half of the frame goes to the buffer start, the first
	// half wraps around to its end
	size := a.cfg.FrameSize
	hM1 := (size + 1) / 2
	hM2 := size / 2
	for i := range hM1 {
		a.buf[i] = complex(a.windowed[hM2+i], 0)
	}
	for i := range hM2 {
		a.buf[a.fftSize-hM2+i] = complex(a.windowed[i], 0)
	}

	if err := a.plan.Forward(a.buf, a.buf); err != nil {
		return nil, fmt.Errorf("stft: forward FFT failed: %w", err)
	}

	out := make([]complex128, a.Bins())
	scale := complex(a.scale, 0)
	for k := range out {
		out[k] = a.buf[k] * scale
	}

	return out, nil
}
