package cache

import (
	"context"

	"ccc/pkg/ckb"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// StoredCell is a cell with its insertion sequence number.
type StoredCell struct {
	Seq  uint64
	Cell *ckb.Cell
}

// Store persists the state of a Persistent cache. Getters return nil without
// an error when nothing is stored.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	UpsertCells(ctx context.Context, cells []*ckb.Cell, usable bool) error
	SetCellsUsable(ctx context.Context, outPoints []*ckb.OutPoint, usable bool) error
	GetCell(ctx context.Context, outPoint *ckb.OutPoint, usableOnly bool) (*ckb.Cell, error)
	ListUsableCells(ctx context.Context, afterSeq uint64, limit int) ([]StoredCell, error)

	AddUnusable(ctx context.Context, outPoints []*ckb.OutPoint) error
	RemoveUnusable(ctx context.Context, outPoints []*ckb.OutPoint) error
	IsUnusable(ctx context.Context, outPoint *ckb.OutPoint) (bool, error)

	AppendTransactions(ctx context.Context, txs []*ckb.Transaction) error
	GetTransaction(ctx context.Context, hash ckb.Hash) (*ckb.Transaction, error)
}
