package peaks

import (
	"fmt"
	"math"
	"sort"
)

// Order selects how detected peaks are ranked.
type Order int

const (
	// ByPosition keeps the MaxPeaks strongest peaks and returns them in
	// ascending position.
	ByPosition Order = iota
	// ByAmplitude returns peaks in descending amplitude.
	ByAmplitude
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case ByPosition:
		return "position"
	case ByAmplitude:
		return "amplitude"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Config holds detection parameters.
type Config struct {
	// Range is the position assigned to the last array element. The first
	// element is at position 0.
	Range    float64
	MaxPeaks int
	// MinPosition and MaxPosition bound the returned positions.
	MinPosition float64
	MaxPosition float64
	// Threshold discards peaks whose amplitude is strictly below it.
	Threshold float64
	// Interpolate enables parabolic refinement and plateau centring.
	Interpolate bool
	OrderBy     Order
}

// DefaultConfig returns a configuration covering a normalized range of 1.
func DefaultConfig() Config {
	return Config{
		Range:       1,
		MaxPeaks:    100,
		MinPosition: 0,
		MaxPosition: 1,
		Threshold:   math.Inf(-1),
		Interpolate: true,
		OrderBy:     ByPosition,
	}
}

// Detector finds peaks in real-valued arrays.
//
// A Detector is immutable after construction and safe for concurrent use.
type Detector struct {
	cfg Config
}

// New validates cfg and returns a Detector.
func New(cfg Config) (*Detector, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg}, nil
}

// Config returns the detector configuration.
func (d *Detector) Config() Config { return d.cfg }

type peak struct {
	position  float64
	amplitude float64
}

// Detect returns the positions and amplitudes of the peaks in array.
//
// The outputs are index-aligned and hold at most MaxPeaks entries. An empty
// array yields empty outputs; an array of a single element is rejected since
// no position scale can be derived from it.
//
//nolint:gocognit,cyclop
func (d *Detector) Detect(array []float64) (positions, amplitudes []float64, err error) {
	size := len(array)
	if size == 0 {
		return []float64{}, []float64{}, nil
	}
	if size < 2 {
		return nil, nil, fmt.Errorf("peaks: array must have at least 2 elements: %d", size)
	}

	cfg := d.cfg
	scale := cfg.Range / float64(size-1)
	found := make([]peak, 0, 16)

	// Round up so that the first candidate never lies below MinPosition.
	i := max(0, int(math.Ceil(cfg.MinPosition/scale)))

	if first := float64(i) * scale; first <= cfg.MaxPosition && i+1 < size && array[i] > array[i+1] && d.keep(array[i]) {
		found = append(found, peak{position: first, amplitude: array[i]})
	}

	for {
		// descend
		for i+1 < size-1 && array[i] >= array[i+1] {
			i++
		}
		// climb
		for i+1 < size-1 && array[i] < array[i+1] {
			i++
		}
		// walk the plateau
		j := i
		for j+1 < size-1 && array[j] == array[j+1] {
			j++
		}

		if j+1 < size-1 && array[j+1] < array[j] && d.keep(array[j]) {
			var bin, val float64
			switch {
			case j != i:
				bin, val = float64(i), array[i]
				if cfg.Interpolate {
					bin = float64(i+j) * 0.5
				}
			case cfg.Interpolate:
				bin, val = parabolic(array[j-1], array[j], array[j+1], j)
			default:
				bin, val = float64(j), array[j]
			}

			pos := bin * scale
			if pos > cfg.MaxPosition {
				break
			}
			// refinement may shift a peak below the first candidate bin
			if pos >= cfg.MinPosition {
				found = append(found, peak{position: pos, amplitude: val})
			}
		}

		i = j
		if i+1 >= size-1 {
			// the element just before the last one
			if i == size-2 && i > 0 && array[i-1] < array[i] && array[i+1] < array[i] && d.keep(array[i]) {
				bin, val := float64(i), array[i]
				if cfg.Interpolate {
					bin, val = parabolic(array[i-1], array[i], array[i+1], i)
				}
				if pos := bin * scale; pos >= cfg.MinPosition && pos <= cfg.MaxPosition {
					found = append(found, peak{position: pos, amplitude: val})
				}
			}
			break
		}
	}

	// upper boundary, unrefined like the lower one
	last := float64(size-1) * scale
	if last <= cfg.MaxPosition && last >= cfg.MinPosition && array[size-1] > array[size-2] && d.keep(array[size-1]) {
		found = append(found, peak{position: last, amplitude: array[size-1]})
	}

	wanted := min(cfg.MaxPeaks, len(found))

	// strongest first, lower position on ties
	sort.SliceStable(found, func(a, b int) bool {
		if found[a].amplitude != found[b].amplitude {
			return found[a].amplitude > found[b].amplitude
		}
		return found[a].position < found[b].position
	})
	found = found[:wanted]

	if cfg.OrderBy == ByPosition {
		sort.SliceStable(found, func(a, b int) bool {
			if found[a].position != found[b].position {
				return found[a].position < found[b].position
			}
			return found[a].amplitude > found[b].amplitude
		})
	}

	positions = make([]float64, wanted)
	amplitudes = make([]float64, wanted)
	for k, p := range found {
		positions[k] = p.position
		amplitudes[k] = p.amplitude
	}
	return positions, amplitudes, nil
}

func (d *Detector) keep(amplitude float64) bool {
	return amplitude >= d.cfg.Threshold
}

// parabolic fits a parabola through three equally spaced samples centred on
// bin and returns the vertex location and height.
func parabolic(left, middle, right float64, bin int) (float64, float64) {
	den := left - 2*middle + right
	if den == 0 {
		return float64(bin), middle
	}
	delta := 0.5 * (left - right) / den
	return float64(bin) + delta, middle - 0.25*(left-right)*delta
}
