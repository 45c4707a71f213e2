package signer

import (
	"errors"
	"fmt"
)

var (
	ErrNotSupported     = errors.New("not supported")
	ErrNoAddress        = errors.New("signer has no address")
	ErrInvalidKey       = errors.New("invalid key")
	ErrInvalidSignature = errors.New("invalid signature")
)

// NotSupported names the operation a signer cannot perform.
func NotSupported(signer, op string) error {
	return fmt.Errorf("%s: %s: %w", signer, op, ErrNotSupported)
}
