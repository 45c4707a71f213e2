package cache

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"ccc/pkg/ckb"

	"go.uber.org/zap"
)

const defaultPageSize = 100

// Persistent is a Cache kept in a Store, so pending spends survive restarts.
// Store errors are returned wrapped and may be retried.
type Persistent struct {
	logs     *zap.SugaredLogger
	store    Store
	pageSize int

	// serializes the compound updates of the mark methods
	mu sync.Mutex
}

func NewPersistent(logger *zap.SugaredLogger, store Store) *Persistent {
	return &Persistent{
		logs:     logger,
		store:    store,
		pageSize: defaultPageSize,
	}
}

func (p *Persistent) MarkUsable(ctx context.Context, cells ...*ckb.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	outPoints := make([]*ckb.OutPoint, 0, len(cells))
	for _, cell := range cells {
		outPoints = append(outPoints, cell.OutPoint)
	}
	if err := p.store.RemoveUnusable(ctx, outPoints); err != nil {
		return fmt.Errorf("mark usable: %w", err)
	}
	if err := p.store.UpsertCells(ctx, cells, true); err != nil {
		return fmt.Errorf("mark usable: %w", err)
	}
	return nil
}

func (p *Persistent) MarkUnusable(ctx context.Context, outPoints ...*ckb.OutPoint) error {
	if len(outPoints) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.AddUnusable(ctx, outPoints); err != nil {
		return fmt.Errorf("mark unusable: %w", err)
	}
	if err := p.store.SetCellsUsable(ctx, outPoints, false); err != nil {
		return fmt.Errorf("mark unusable: %w", err)
	}
	return nil
}

func (p *Persistent) MarkTransactions(ctx context.Context, txs ...*ckb.Transaction) error {
	return markTransactions(ctx, p, txs)
}

func (p *Persistent) IsUnusable(ctx context.Context, outPoint *ckb.OutPoint) (bool, error) {
	unusable, err := p.store.IsUnusable(ctx, outPoint)
	if err != nil {
		return false, fmt.Errorf("is unusable %s: %w", outPoint, err)
	}
	return unusable, nil
}

func (p *Persistent) RecordTransactions(ctx context.Context, txs ...*ckb.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	if err := p.store.AppendTransactions(ctx, txs); err != nil {
		return fmt.Errorf("record transactions: %w", err)
	}
	return nil
}

func (p *Persistent) GetTransaction(ctx context.Context, hash ckb.Hash) (*ckb.Transaction, error) {
	tx, err := p.store.GetTransaction(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", hash, err)
	}
	return tx, nil
}

func (p *Persistent) RecordCells(ctx context.Context, cells ...*ckb.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	if err := p.store.UpsertCells(ctx, cells, true); err != nil {
		return fmt.Errorf("record cells: %w", err)
	}
	return nil
}

func (p *Persistent) GetCell(ctx context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error) {
	cell, err := p.store.GetCell(ctx, outPoint, true)
	if err != nil {
		return nil, fmt.Errorf("get cell %s: %w", outPoint, err)
	}
	return cell, nil
}

func (p *Persistent) GetKnownCell(ctx context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error) {
	cell, err := p.store.GetCell(ctx, outPoint, false)
	if err != nil {
		return nil, fmt.Errorf("get known cell %s: %w", outPoint, err)
	}
	return cell, nil
}

// FindCells pages through the usable cells in sequence order. Each page is
// fetched when the previous one is consumed.
func (p *Persistent) FindCells(ctx context.Context, key *SearchKey) iter.Seq2[*ckb.Cell, error] {
	return func(yield func(*ckb.Cell, error) bool) {
		var after uint64
		for {
			page, err := p.store.ListUsableCells(ctx, after, p.pageSize)
			if err != nil {
				yield(nil, fmt.Errorf("find cells after %d: %w", after, err))
				return
			}
			p.logs.Debugw("cache page loaded", "after", after, "count", len(page))

			for _, stored := range page {
				after = stored.Seq
				if !key.Match(stored.Cell) {
					continue
				}
				if !yield(stored.Cell, nil) {
					return
				}
			}
			if len(page) < p.pageSize {
				return
			}
		}
	}
}
