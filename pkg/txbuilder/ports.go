package txbuilder

import (
	"context"
	"iter"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Client finds spendable cells. FindCells must not yield cells the client
// knows to be spent.
//
//counterfeiter:generate -o fake -fake-name Client . Client
type Client interface {
	GetCell(ctx context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error)
	FindCells(ctx context.Context, key *cache.SearchKey) iter.Seq2[*ckb.Cell, error]
	GetFeeRate(ctx context.Context) (uint64, error)
}

// Signer owns the cells being collected and receives the change.
//
//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	GetAddressObjs(ctx context.Context) ([]*address.Address, error)
	GetRecommendedAddressObj(ctx context.Context) (*address.Address, error)
	PrepareTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error)
}
