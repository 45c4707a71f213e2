package client

import "errors"

var (
	ErrUnknownNetwork     = errors.New("unknown network")
	ErrUnknownScript      = errors.New("unknown script")
	ErrOutPointOutOfRange = errors.New("out point index out of range")
)
