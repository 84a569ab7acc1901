package stft

// Frames splits signal into frames of frameSize samples, hopSize apart.
//
// Frame k is centred on sample k*hopSize, for every k with k*hopSize <
// len(signal). The signal is padded with zeros so that the first and last
// frames are complete. Frames are sub-slices of one padded copy and must not
// be modified if they overlap.
func Frames(signal []float64, frameSize, hopSize int) [][]float64 {
	if len(signal) == 0 || frameSize <= 0 || hopSize <= 0 {
		return nil
	}

	// centre sample of a frame, matching Spectrum's zero-phase rotation
	half := frameSize / 2

	padded := make([]float64, half+len(signal)+frameSize)
	copy(padded[half:], signal)

	count := (len(signal) + hopSize - 1) / hopSize
	frames := make([][]float64, count)
	for k := range frames {
		start := k * hopSize
		frames[k] = padded[start : start+frameSize : start+frameSize]
	}

	return frames
}
