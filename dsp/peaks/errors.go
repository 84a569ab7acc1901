package peaks

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every configuration error returned by [New].
var ErrInvalidConfig = errors.New("peaks: invalid configuration")

func validate(cfg Config) error {
	if !(cfg.Range > 0) {
		return fmt.Errorf("%w: range must be > 0: %f", ErrInvalidConfig, cfg.Range)
	}
	if cfg.MaxPeaks < 1 {
		return fmt.Errorf("%w: max peaks must be >= 1: %d", ErrInvalidConfig, cfg.MaxPeaks)
	}
	if cfg.MinPosition < 0 {
		return fmt.Errorf("%w: min position must be >= 0: %f", ErrInvalidConfig, cfg.MinPosition)
	}
	if !(cfg.MaxPosition > 0) {
		return fmt.Errorf("%w: max position must be > 0: %f", ErrInvalidConfig, cfg.MaxPosition)
	}
	if cfg.MinPosition >= cfg.MaxPosition {
		return fmt.Errorf("%w: min position must be less than max position: %f >= %f",
			ErrInvalidConfig, cfg.MinPosition, cfg.MaxPosition)
	}
	switch cfg.OrderBy {
	case ByPosition, ByAmplitude:
	default:
		return fmt.Errorf("%w: unsupported ordering: %d", ErrInvalidConfig, cfg.OrderBy)
	}
	return nil
}
