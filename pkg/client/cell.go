package client

import (
	"context"
	"fmt"
	"iter"

	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"
	"ccc/pkg/jsonrpc"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DefaultPageSize is the number of cells requested per indexer page.
const DefaultPageSize = 100

var _ ckb.CellResolver = (*Client)(nil)

// GetCell returns the cell at outPoint whether it is live or spent. It looks
// at the cache before fetching the creating transaction. It returns nil for
// an unknown transaction.
func (c *Client) GetCell(ctx context.Context, outPoint *ckb.OutPoint) (*ckb.Cell, error) {
	cell, err := c.cache.GetCell(ctx, outPoint)
	if err != nil {
		return nil, fmt.Errorf("get cached cell %s: %w", outPoint, err)
	}
	if cell != nil {
		return cell, nil
	}
	cell, err = c.cache.GetKnownCell(ctx, outPoint)
	if err != nil {
		return nil, fmt.Errorf("get known cell %s: %w", outPoint, err)
	}
	if cell != nil {
		return cell, nil
	}

	tx, err := c.GetTransaction(ctx, outPoint.TxHash)
	if err != nil {
		return nil, fmt.Errorf("get cell %s: %w", outPoint, err)
	}
	if tx == nil {
		return nil, nil
	}
	if int(outPoint.Index) >= len(tx.Outputs) {
		return nil, fmt.Errorf("get cell %s: %w: transaction has %d outputs", outPoint, ErrOutPointOutOfRange, len(tx.Outputs))
	}

	var data []byte
	if int(outPoint.Index) < len(tx.OutputsData) {
		data = tx.OutputsData[outPoint.Index]
	}
	return &ckb.Cell{
		OutPoint:   outPoint.Clone(),
		CellOutput: tx.Outputs[outPoint.Index].Clone(),
		OutputData: append([]byte{}, data...),
	}, nil
}

// GetCellLive asks the node for a live cell. It returns nil when the cell is not live.
func (c *Client) GetCellLive(ctx context.Context, outPoint *ckb.OutPoint, withData bool) (*ckb.Cell, error) {
	var res liveCellJSON
	if err := jsonrpc.Call(ctx, c.transport, &res, "get_live_cell", outPoint, withData); err != nil {
		return nil, fmt.Errorf("get live cell %s: %w", outPoint, err)
	}
	if res.Status != "live" || res.Cell == nil || res.Cell.Output == nil {
		return nil, nil
	}

	data := []byte{}
	if res.Cell.Data != nil {
		data = res.Cell.Data.Content
	}
	return &ckb.Cell{
		OutPoint:   outPoint.Clone(),
		CellOutput: res.Cell.Output,
		OutputData: data,
	}, nil
}

// FindCellsPaged runs one indexer search. An empty cursor starts from the beginning.
func (c *Client) FindCellsPaged(ctx context.Context, key *cache.SearchKey, order Order, limit int, cursor string) (*CellsPage, error) {
	if order == "" {
		order = OrderAsc
	}
	params := []any{key, order, hexutil.Uint64(limit)}
	if cursor != "" {
		params = append(params, cursor)
	}

	var res indexerCellsJSON
	if err := jsonrpc.Call(ctx, c.transport, &res, "get_cells", params...); err != nil {
		return nil, fmt.Errorf("find cells: %w", err)
	}

	page := &CellsPage{
		Cells:      make([]*ckb.Cell, 0, len(res.Objects)),
		LastCursor: res.LastCursor,
	}
	for _, o := range res.Objects {
		if o.OutPoint == nil || o.Output == nil {
			return nil, fmt.Errorf("find cells: %w: cell without out point or output", jsonrpc.ErrMalformedResponse)
		}
		data := []byte(o.OutputData)
		if data == nil {
			data = []byte{}
		}
		page.Cells = append(page.Cells, &ckb.Cell{OutPoint: o.OutPoint, CellOutput: o.Output, OutputData: data})
	}
	return page, nil
}

// FindCells yields the matching usable cells known to the cache, then the
// matching live cells reported by the node. Cells tombstoned in the cache and
// cells already yielded are skipped.
func (c *Client) FindCells(ctx context.Context, key *cache.SearchKey) iter.Seq2[*ckb.Cell, error] {
	return func(yield func(*ckb.Cell, error) bool) {
		seen := make(map[string]struct{})

		for cell, err := range c.cache.FindCells(ctx, key) {
			if err != nil {
				yield(nil, fmt.Errorf("find cached cells: %w", err))
				return
			}
			seen[cell.OutPoint.Key()] = struct{}{}

			unusable, err := c.cache.IsUnusable(ctx, cell.OutPoint)
			if err != nil {
				yield(nil, fmt.Errorf("check cell %s: %w", cell.OutPoint, err))
				return
			}
			if unusable {
				continue
			}
			if !yield(cell, nil) {
				return
			}
		}

		cursor := ""
		for {
			page, err := c.FindCellsPaged(ctx, key, OrderAsc, DefaultPageSize, cursor)
			if err != nil {
				yield(nil, err)
				return
			}
			c.logs.Debugw("indexer page fetched",
				"cells", len(page.Cells),
				"cursor", page.LastCursor,
			)

			for _, cell := range page.Cells {
				k := cell.OutPoint.Key()
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}

				unusable, err := c.cache.IsUnusable(ctx, cell.OutPoint)
				if err != nil {
					yield(nil, fmt.Errorf("check cell %s: %w", cell.OutPoint, err))
					return
				}
				if unusable {
					continue
				}
				if !yield(cell, nil) {
					return
				}
			}

			if len(page.Cells) < DefaultPageSize || page.LastCursor == "" || page.LastCursor == cursor {
				return
			}
			cursor = page.LastCursor
		}
	}
}

func (c *Client) GetCellsCapacity(ctx context.Context, key *cache.SearchKey) (uint64, error) {
	var res *cellsCapacityJSON
	if err := jsonrpc.Call(ctx, c.transport, &res, "get_cells_capacity", key); err != nil {
		return 0, fmt.Errorf("get cells capacity: %w", err)
	}
	if res == nil {
		return 0, nil
	}
	return uint64(res.Capacity), nil
}

// GetBalance sums the capacity of plain cells, with no type and no data, locked by locks.
func (c *Client) GetBalance(ctx context.Context, locks []*ckb.Script) (uint64, error) {
	var total uint64
	for _, lock := range locks {
		capacity, err := c.GetCellsCapacity(ctx, BalanceSearchKey(lock))
		if err != nil {
			return 0, fmt.Errorf("get balance of %s: %w", lock.Hash().Hex(), err)
		}
		total += capacity
	}
	return total, nil
}

// BalanceSearchKey selects plain capacity cells locked by lock.
func BalanceSearchKey(lock *ckb.Script) *cache.SearchKey {
	return &cache.SearchKey{
		Script:           lock,
		ScriptType:       cache.ScriptTypeLock,
		ScriptSearchMode: cache.SearchModeExact,
		Filter: &cache.SearchFilter{
			ScriptLenRange:     &cache.Range{Start: 0, End: 1},
			OutputDataLenRange: &cache.Range{Start: 0, End: 1},
		},
		WithData: true,
	}
}
