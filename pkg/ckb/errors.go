package ckb

import "errors"

var (
	ErrUnknownHashType    = errors.New("unknown hash type")
	ErrUnknownDepType     = errors.New("unknown dep type")
	ErrInvalidLength      = errors.New("invalid length")
	ErrInvalidSince       = errors.New("invalid since")
	ErrCellNotResolved    = errors.New("input cell not resolved")
	ErrOutputsExceed      = errors.New("outputs capacity exceeds inputs capacity")
	ErrUdtBalanceOverflow = errors.New("udt balance exceeds u128")
)
