package mod

import "errors"

var (
	// ErrBufferTooSmall is returned when an input or output buffer cannot
	// hold the value it is asked to carry.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrBadInputData is returned when a decoded value or a modulus
	// representation is invalid, e.g. a decoded value that is not smaller
	// than the modulus.
	ErrBadInputData = errors.New("bad input data")
)
