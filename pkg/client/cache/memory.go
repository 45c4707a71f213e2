package cache

import (
	"context"
	"iter"
	"slices"
	"sync"

	"ccc/pkg/ckb"
)

// Memory is an in-process Cache. All methods are safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	usable   []*ckb.Cell
	known    map[string]*ckb.Cell
	unusable map[string]struct{}
	txs      []*ckb.Transaction
}

func NewMemory() *Memory {
	return &Memory{
		known:    make(map[string]*ckb.Cell),
		unusable: make(map[string]struct{}),
	}
}

func (m *Memory) MarkUsable(_ context.Context, cells ...*ckb.Cell) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cell := range cells {
		delete(m.unusable, cell.OutPoint.Key())
		m.putUsable(cell.Clone())
	}
	return nil
}

func (m *Memory) MarkUnusable(_ context.Context, outPoints ...*ckb.OutPoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, outPoint := range outPoints {
		key := outPoint.Key()
		m.unusable[key] = struct{}{}
		m.usable = slices.DeleteFunc(m.usable, func(c *ckb.Cell) bool {
			return c.OutPoint.Key() == key
		})
	}
	return nil
}

func (m *Memory) MarkTransactions(ctx context.Context, txs ...*ckb.Transaction) error {
	return markTransactions(ctx, m, txs)
}

func (m *Memory) IsUnusable(_ context.Context, outPoint *ckb.OutPoint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.unusable[outPoint.Key()]
	return ok, nil
}

// RecordTransactions appends to the log. Recording the same transaction twice keeps both entries.
func (m *Memory) RecordTransactions(_ context.Context, txs ...*ckb.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tx := range txs {
		m.txs = append(m.txs, tx.Clone())
	}
	return nil
}

func (m *Memory) GetTransaction(_ context.Context, hash ckb.Hash) (*ckb.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.txs) - 1; i >= 0; i-- {
		if m.txs[i].Hash() == hash {
			return m.txs[i].Clone(), nil
		}
	}
	return nil, nil
}

func (m *Memory) RecordCells(_ context.Context, cells ...*ckb.Cell) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cell := range cells {
		m.putUsable(cell.Clone())
	}
	return nil
}

func (m *Memory) GetCell(_ context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := outPoint.Key()
	for _, cell := range m.usable {
		if cell.OutPoint.Key() == key {
			return cell.Clone(), nil
		}
	}
	return nil, nil
}

func (m *Memory) GetKnownCell(_ context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.known[outPoint.Key()].Clone(), nil
}

// FindCells iterates a snapshot taken when iteration starts.
func (m *Memory) FindCells(ctx context.Context, key *SearchKey) iter.Seq2[*ckb.Cell, error] {
	return func(yield func(*ckb.Cell, error) bool) {
		m.mu.Lock()
		snapshot := slices.Clone(m.usable)
		m.mu.Unlock()

		for _, cell := range snapshot {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !key.Match(cell) {
				continue
			}
			if !yield(cell.Clone(), nil) {
				return
			}
		}
	}
}

// putUsable replaces the usable cell at the same out point in place, or appends.
func (m *Memory) putUsable(cell *ckb.Cell) {
	key := cell.OutPoint.Key()
	m.known[key] = cell
	for i, existing := range m.usable {
		if existing.OutPoint.Key() == key {
			m.usable[i] = cell
			return
		}
	}
	m.usable = append(m.usable, cell)
}
