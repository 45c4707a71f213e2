package txbuilder

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

var (
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrInsufficientUdt      = errors.New("insufficient udt balance")
	ErrFeeNotConverged      = errors.New("fee did not converge")
	ErrOutputIndex          = errors.New("output index out of range")
)

type Kind int

const (
	KindCapacity Kind = iota
	KindUdt
)

// InsufficientError reports how much more the signer needed to own.
type InsufficientError struct {
	Kind Kind
	// Missing is the amount still lacking after every candidate was collected.
	Missing *uint256.Int
	// ForChange is set when the payment itself was covered but the change output was not.
	ForChange bool
}

func (e *InsufficientError) Error() string {
	msg := fmt.Sprintf("%s: %s more needed", e.sentinel(), e.Missing.Dec())
	if e.ForChange {
		msg += " for change"
	}
	return msg
}

func (e *InsufficientError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *InsufficientError) sentinel() error {
	if e.Kind == KindUdt {
		return ErrInsufficientUdt
	}
	return ErrInsufficientCapacity
}
