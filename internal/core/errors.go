package core

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrMalformedInput       = errors.New("malformed input")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrNotScheduled         = errors.New("process not scheduled")
)
