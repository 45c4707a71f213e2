package core

import (
	"context"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	AddressPrefix() string
	GetCell(ctx context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error)
	GetBalance(ctx context.Context, locks []*ckb.Script) (uint64, error)
	SendTransaction(ctx context.Context, tx *ckb.Transaction) (ckb.Hash, error)
}

//counterfeiter:generate -o fake -fake-name TxBuilder . TxBuilder
type TxBuilder interface {
	CompleteFeeChangeToLock(ctx context.Context, tx *ckb.Transaction, lock *ckb.Script, feeRate uint64) (int, error)
}

//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	GetAddressObjs(ctx context.Context) ([]*address.Address, error)
	GetRecommendedAddressObj(ctx context.Context) (*address.Address, error)
	PrepareTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error)
	SignOnlyTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error)
}
