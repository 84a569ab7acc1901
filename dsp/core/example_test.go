package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-sinemodel/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithFrameSize(1501),
		core.WithHopSize(256),
	)

	fmt.Printf("sampleRate=%.0f frame=%d hop=%d fft=%d\n",
		cfg.SampleRate, cfg.FrameSize, cfg.HopSize, cfg.ResolvedFFTSize())

	// Output:
	// sampleRate=44100 frame=1501 hop=256 fft=2048
}
