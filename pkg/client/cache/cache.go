package cache

import (
	"context"
	"iter"

	"ccc/pkg/ckb"
)

// Cache tracks cells and transactions the client has seen or produced so that
// cells spent by pending transactions are not collected twice.
//
// A cell is usable or unusable, never both. An out point the cache knows
// nothing about is not unusable.
type Cache interface {
	// MarkUsable stores the cells as spendable, lifting any tombstone on their out points.
	MarkUsable(ctx context.Context, cells ...*ckb.Cell) error
	// MarkUnusable tombstones the out points and drops their usable cells.
	MarkUnusable(ctx context.Context, outPoints ...*ckb.OutPoint) error
	// MarkTransactions applies sent transactions: inputs become unusable, outputs usable.
	MarkTransactions(ctx context.Context, txs ...*ckb.Transaction) error
	IsUnusable(ctx context.Context, outPoint *ckb.OutPoint) (bool, error)

	RecordTransactions(ctx context.Context, txs ...*ckb.Transaction) error
	// GetTransaction returns nil when the hash was never recorded.
	GetTransaction(ctx context.Context, hash ckb.Hash) (*ckb.Transaction, error)

	// RecordCells stores cells as usable without touching tombstones.
	RecordCells(ctx context.Context, cells ...*ckb.Cell) error
	// GetCell returns the usable cell at outPoint, or nil.
	GetCell(ctx context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error)
	// GetKnownCell returns any cell ever stored at outPoint, including spent ones, or nil.
	GetKnownCell(ctx context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error)

	// FindCells lazily yields usable cells matching key in insertion order.
	// Breaking out of the loop early is safe.
	FindCells(ctx context.Context, key *SearchKey) iter.Seq2[*ckb.Cell, error]
}

// markTransactions is MarkTransactions for any cache.
func markTransactions(ctx context.Context, c Cache, txs []*ckb.Transaction) error {
	for _, tx := range txs {
		spent := make([]*ckb.OutPoint, 0, len(tx.Inputs))
		for _, in := range tx.Inputs {
			spent = append(spent, in.PreviousOutput)
		}
		if err := c.MarkUnusable(ctx, spent...); err != nil {
			return err
		}

		txHash := tx.Hash()
		created := make([]*ckb.Cell, 0, len(tx.Outputs))
		for i, out := range tx.Outputs {
			var data []byte
			if i < len(tx.OutputsData) {
				data = tx.OutputsData[i]
			}
			created = append(created, &ckb.Cell{
				OutPoint:   ckb.NewOutPoint(txHash, uint32(i)),
				CellOutput: out,
				OutputData: data,
			})
		}
		if err := c.MarkUsable(ctx, created...); err != nil {
			return err
		}
	}
	return c.RecordTransactions(ctx, txs...)
}
