package bench

import "errors"

var (
	ErrInvalidSize           = errors.New("size must be positive")
	ErrInvalidRounds         = errors.New("rounds must be positive")
	ErrUnknownImplementation = errors.New("unknown implementation")
	ErrUnknownWorkload       = errors.New("unknown workload")
)
