package signer

import (
	"context"

	"ccc/pkg/ckb"
)

// ReadOnly is embedded by signers that know addresses but hold no key.
type ReadOnly struct {
	Name string
}

func (r ReadOnly) Connect(context.Context) error {
	return nil
}

func (r ReadOnly) IsConnected(context.Context) (bool, error) {
	return true, nil
}

func (r ReadOnly) SignMessageRaw(context.Context, []byte) (string, error) {
	return "", NotSupported(r.Name, "sign message")
}

func (r ReadOnly) SignOnlyTransaction(context.Context, *ckb.Transaction) (*ckb.Transaction, error) {
	return nil, NotSupported(r.Name, "sign transaction")
}
