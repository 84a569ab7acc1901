package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-sinemodel/dsp/core"
	"github.com/cwbudde/algo-sinemodel/dsp/signal"
	"github.com/cwbudde/algo-sinemodel/dsp/sinemodel"
	"github.com/cwbudde/algo-sinemodel/dsp/stft"
	"github.com/cwbudde/algo-sinemodel/dsp/window"
)

var errNoTones = errors.New("no tones given")

type options struct {
	sampleRate  float64
	duration    float64
	tones       string
	noise       float64
	seed        int64
	frameSize   int
	hopSize     int
	fftSize     int
	window      string
	maxPeaks    int
	minFreq     float64
	maxFreq     float64
	thresholdDB float64
	order       string
	devOffset   float64
	devSlope    float64
	maxTracks   int
	minTrackLen int
}

func defaultOptions() options {
	tracking := sinemodel.DefaultTrackingConfig()
	return options{
		sampleRate:  44100,
		duration:    0.25,
		tones:       "440:0.5,1000:0.25",
		seed:        1,
		frameSize:   2047,
		hopSize:     512,
		window:      window.TypeBlackmanHarris4Term.String(),
		maxPeaks:    20,
		minFreq:     20,
		maxFreq:     5000,
		thresholdDB: -40,
		order:       sinemodel.OrderByFrequency.String(),
		devOffset:   tracking.FreqDevOffset,
		devSlope:    tracking.FreqDevSlope,
		minTrackLen: 3,
	}
}

// parseTones reads comma separated "freq[-endFreq][:amp]" fields. A missing
// amplitude defaults to 1; an end frequency makes the partial glide.
func parseTones(s string) ([]signal.Partial, error) {
	var partials []signal.Partial
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		freqStr, ampStr, hasAmp := strings.Cut(field, ":")
		startStr, endStr, glides := strings.Cut(freqStr, "-")

		var p signal.Partial
		var err error
		if p.Freq, err = parsePositive(startStr); err != nil {
			return nil, fmt.Errorf("invalid tone frequency %q", freqStr)
		}
		if glides {
			if p.EndFreq, err = parsePositive(endStr); err != nil {
				return nil, fmt.Errorf("invalid tone end frequency %q", freqStr)
			}
		}

		p.Amp = 1
		if hasAmp {
			p.Amp, err = strconv.ParseFloat(strings.TrimSpace(ampStr), 64)
			if err != nil || p.Amp < 0 {
				return nil, fmt.Errorf("invalid tone amplitude %q", ampStr)
			}
		}

		partials = append(partials, p)
	}

	if len(partials) == 0 {
		return nil, errNoTones
	}
	return partials, nil
}

func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !(v > 0) {
		return 0, fmt.Errorf("must be > 0: %f", v)
	}
	return v, nil
}

func synthesize(cfg core.ProcessorConfig, partials []signal.Partial, opts options) ([]float64, error) {
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(cfg.SampleRate)},
		signal.WithSeed(opts.seed),
	)

	samples := int(opts.duration * cfg.SampleRate)
	out, err := gen.Partials(partials, samples)
	if err != nil {
		return nil, err
	}
	if opts.noise <= 0 {
		return out, nil
	}

	noise, err := gen.WhiteNoise(opts.noise, samples)
	if err != nil {
		return nil, err
	}
	if err := signal.Mix(out, noise); err != nil {
		return nil, err
	}
	return out, nil
}

// run analyzes the synthesized signal and writes the cleaned tracks to out.
func run(opts options, out io.Writer, logger *zap.Logger) error {
	partials, err := parseTones(opts.tones)
	if err != nil {
		return err
	}
	if !(opts.duration > 0) {
		return fmt.Errorf("duration must be > 0: %f", opts.duration)
	}
	if opts.hopSize <= 0 {
		return fmt.Errorf("hop size must be > 0: %d", opts.hopSize)
	}

	winType, err := window.ParseType(opts.window)
	if err != nil {
		return err
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(opts.sampleRate),
		core.WithFrameSize(opts.frameSize),
		core.WithHopSize(opts.hopSize),
		core.WithFFTSize(opts.fftSize),
	)

	framer, err := stft.NewAnalyzer(cfg, winType)
	if err != nil {
		return err
	}

	analyzer, err := sinemodel.NewAnalyzer(
		sinemodel.WithSampleRate(cfg.SampleRate),
		sinemodel.WithMaxPeaks(opts.maxPeaks),
		sinemodel.WithMinFrequency(opts.minFreq),
		sinemodel.WithMaxFrequency(opts.maxFreq),
		sinemodel.WithMagnitudeThreshold(core.DBToLinear(opts.thresholdDB)),
		sinemodel.WithOrderBy(opts.order),
	)
	if err != nil {
		return err
	}

	tracker, err := sinemodel.NewTracker(sinemodel.TrackingConfig{
		FreqDevOffset: opts.devOffset,
		FreqDevSlope:  opts.devSlope,
	}, opts.maxTracks)
	if err != nil {
		return err
	}

	enbw, err := window.EquivalentNoiseBandwidth(window.Generate(winType, cfg.FrameSize))
	if err != nil {
		return err
	}

	logger.Info("analysis configured",
		zap.Float64("sampleRate", cfg.SampleRate),
		zap.Int("frameSize", cfg.FrameSize),
		zap.Int("hopSize", cfg.HopSize),
		zap.Int("fftSize", framer.Config().FFTSize),
		zap.Stringer("window", winType),
		zap.Float64("enbwBins", enbw),
		zap.Float64("binWidthHz", framer.BinWidth()),
		zap.Int("partials", len(partials)),
		zap.Float64("noise", opts.noise),
	)

	x, err := synthesize(cfg, partials, opts)
	if err != nil {
		return err
	}
	history := &sinemodel.History{}

	for i, frame := range stft.Frames(x, cfg.FrameSize, cfg.HopSize) {
		bins, err := framer.Spectrum(frame)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		peaks, err := analyzer.Analyze(bins)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		tracks, err := tracker.Update(peaks)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		loudest := 0.0
		for _, m := range peaks.Magnitudes {
			loudest = max(loudest, m)
		}

		logger.Debug("frame analyzed",
			zap.Int("frame", i),
			zap.Int("peaks", peaks.Len()),
			zap.Float64("loudestDB", core.LinearToDB(loudest)),
			zap.Int("slots", tracks.Len()),
			zap.Int("active", tracks.ActiveCount()),
		)

		history.Append(tracks)
	}

	removed := history.Clean(opts.minTrackLen)
	logger.Info("tracking done",
		zap.Int("frames", history.Len()),
		zap.Int("slots", history.Width()),
		zap.Int("removedSegments", removed),
	)

	return printTracks(out, history, float64(cfg.HopSize)/cfg.SampleRate)
}

func printTracks(out io.Writer, history *sinemodel.History, hopSeconds float64) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Frame\tTime [s]\tActive\tTracks [slot:Hz@mag]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t--------\t------\t--------------------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for i := range history.Len() {
		tracks := history.Frame(i)

		cells := make([]string, 0, tracks.ActiveCount())
		for s := range tracks.Len() {
			if tracks.Active(s) {
				cells = append(cells, fmt.Sprintf("%d:%.1f@%.3f", s, tracks.Frequencies[s], tracks.Magnitudes[s]))
			}
		}

		if _, err := fmt.Fprintf(tw, "%d\t%.4f\t%d\t%s\n",
			i, float64(i)*hopSeconds, tracks.ActiveCount(), strings.Join(cells, " ")); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
