package core

import (
	"ccc/pkg/ckb"

	"github.com/jellydator/validation"
)

// TransferRequest moves Amount shannons to the address To.
// A zero FeeRate lets the builder ask the node.
type TransferRequest struct {
	To      string `json:"to"`
	Amount  uint64 `json:"amount"`
	FeeRate uint64 `json:"feeRate"`
}

func (r TransferRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.To, validation.Required),
		validation.Field(&r.Amount, validation.Required, validation.Min(uint64(minTransfer))),
	)
}

// TransferResult is what a transfer sent.
type TransferResult struct {
	Hash   ckb.Hash `json:"hash"`
	Inputs int      `json:"inputs"`
	Fee    uint64   `json:"fee"`
}

// a plain secp256k1 cell is the smallest cell anyone can receive
const minTransfer = 61 * ckb.ShannonsPerByte
