package repository

import (
	"context"
	"errors"
	"fmt"

	"ccc/internal/db"
	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	outPointColumn = "out_point"
	hashColumn     = "hash"
)

// CacheRepository keeps the state of a persistent client cache in the database.
type CacheRepository struct {
	db Storage
}

func NewCacheRepository(db Storage) *CacheRepository {
	return &CacheRepository{
		db: db,
	}
}

var _ cache.Store = (*CacheRepository)(nil)

func (r *CacheRepository) Migrate() error {
	err := r.db.MigrateTable(&Cell{}, &Unusable{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *CacheRepository) UpsertCells(ctx context.Context, cells []*ckb.Cell, usable bool) error {
	rows := make([]Cell, 0, len(cells))
	for _, c := range cells {
		data := c.OutputData
		if data == nil {
			data = []byte{}
		}
		rows = append(rows, Cell{
			OutPoint: outPointKey(c.OutPoint),
			Usable:   usable,
			Output:   c.CellOutput.ToBytes(),
			Data:     data,
		})
	}

	err := r.db.UpsertToTable(ctx, &rows, outPointColumn, "usable", "output", "data")
	if err != nil {
		return fmt.Errorf("upsert cells: %w", err)
	}

	return nil
}

func (r *CacheRepository) SetCellsUsable(ctx context.Context, outPoints []*ckb.OutPoint, usable bool) error {
	err := r.db.UpdateWhereIn(ctx, &Cell{}, outPointColumn, outPointKeys(outPoints), map[string]any{"usable": usable})
	if err != nil {
		return fmt.Errorf("set cells usable: %w", err)
	}

	return nil
}

func (r *CacheRepository) GetCell(ctx context.Context, outPoint *ckb.OutPoint, usableOnly bool) (*ckb.Cell, error) {
	var row Cell
	err := r.db.GetOneBy(ctx, outPointColumn, outPointKey(outPoint), &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cell: %w", err)
	}

	if usableOnly && !row.Usable {
		return nil, nil
	}
	return row.toCell()
}

func (r *CacheRepository) ListUsableCells(ctx context.Context, afterSeq uint64, limit int) ([]cache.StoredCell, error) {
	var rows []Cell
	err := r.db.GetPage(ctx, "usable = ? AND seq > ?", []any{true, afterSeq}, "seq", limit, &rows)
	if err != nil {
		return nil, fmt.Errorf("list usable cells: %w", err)
	}

	out := make([]cache.StoredCell, 0, len(rows))
	for _, row := range rows {
		cell, err := row.toCell()
		if err != nil {
			return nil, err
		}
		out = append(out, cache.StoredCell{Seq: row.Seq, Cell: cell})
	}

	return out, nil
}

func (r *CacheRepository) AddUnusable(ctx context.Context, outPoints []*ckb.OutPoint) error {
	rows := make([]Unusable, 0, len(outPoints))
	for _, key := range outPointKeys(outPoints) {
		rows = append(rows, Unusable{OutPoint: key})
	}

	err := r.db.UpsertToTable(ctx, &rows, outPointColumn)
	if err != nil {
		return fmt.Errorf("add unusable: %w", err)
	}

	return nil
}

func (r *CacheRepository) RemoveUnusable(ctx context.Context, outPoints []*ckb.OutPoint) error {
	err := r.db.DeleteWhereIn(ctx, &Unusable{}, outPointColumn, outPointKeys(outPoints))
	if err != nil {
		return fmt.Errorf("remove unusable: %w", err)
	}

	return nil
}

func (r *CacheRepository) IsUnusable(ctx context.Context, outPoint *ckb.OutPoint) (bool, error) {
	var row Unusable
	err := r.db.GetOneBy(ctx, outPointColumn, outPointKey(outPoint), &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("is unusable: %w", err)
	}

	return true, nil
}

func (r *CacheRepository) AppendTransactions(ctx context.Context, txs []*ckb.Transaction) error {
	rows := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, Transaction{
			Hash: tx.Hash().Hex(),
			Raw:  tx.ToBytes(),
		})
	}

	err := r.db.SaveToTable(ctx, &rows)
	if err != nil {
		return fmt.Errorf("append transactions: %w", err)
	}

	return nil
}

// GetTransaction returns the latest record of hash. Records of one hash may
// differ in witnesses.
func (r *CacheRepository) GetTransaction(ctx context.Context, hash ckb.Hash) (*ckb.Transaction, error) {
	var rows []Transaction
	err := r.db.GetPage(ctx, hashColumn+" = ?", []any{hash.Hex()}, "id DESC", 1, &rows)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]

	tx, err := ckb.TransactionFromBytes(row.Raw)
	if err != nil {
		return nil, fmt.Errorf("decode stored transaction %s: %w", row.Hash, err)
	}

	return tx, nil
}

func (row Cell) toCell() (*ckb.Cell, error) {
	outPointBytes, err := hexutil.Decode(row.OutPoint)
	if err != nil {
		return nil, fmt.Errorf("decode stored out point %q: %w", row.OutPoint, err)
	}
	outPoint, err := ckb.OutPointFromBytes(outPointBytes)
	if err != nil {
		return nil, fmt.Errorf("decode stored out point %q: %w", row.OutPoint, err)
	}
	output, err := ckb.CellOutputFromBytes(row.Output)
	if err != nil {
		return nil, fmt.Errorf("decode stored cell %q: %w", row.OutPoint, err)
	}

	return &ckb.Cell{
		OutPoint:   outPoint,
		CellOutput: output,
		OutputData: row.Data,
	}, nil
}

func outPointKey(o *ckb.OutPoint) string {
	return hexutil.Encode(o.ToBytes())
}

func outPointKeys(outPoints []*ckb.OutPoint) []string {
	keys := make([]string, 0, len(outPoints))
	for _, o := range outPoints {
		keys = append(keys, outPointKey(o))
	}
	return keys
}
