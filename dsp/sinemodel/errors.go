package sinemodel

import "errors"

var (
	// ErrInvalidConfig is wrapped by configuration errors from this package.
	ErrInvalidConfig = errors.New("sinemodel: invalid configuration")
	// ErrLengthMismatch is wrapped when index-aligned arrays differ in length.
	ErrLengthMismatch = errors.New("sinemodel: misaligned arrays")
)
