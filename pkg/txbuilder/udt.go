package txbuilder

import (
	"context"
	"fmt"

	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"

	"github.com/holiman/uint256"
)

// CompleteInputsByUdt adds the signer's cells of udtType until the inputs
// balance covers the outputs balance.
func (b *Builder) CompleteInputsByUdt(ctx context.Context, tx *ckb.Transaction, udtType *ckb.Script) (int, error) {
	expected := tx.GetOutputsUdtBalance(udtType)
	current, err := tx.GetInputsUdtBalance(ctx, udtType, b.client)
	if err != nil {
		return 0, fmt.Errorf("complete inputs by udt: %w", err)
	}
	if current.Cmp(expected) >= 0 {
		return 0, nil
	}

	added, done, err := b.collect(ctx, tx,
		func(lock *ckb.Script) *cache.SearchKey { return udtKey(lock, udtType) },
		// The indexer matches type args by prefix, so other tokens can share the filter.
		func(cell *ckb.Cell) bool { return cell.CellOutput.Type.Eq(udtType) },
		func(cell *ckb.Cell) bool {
			current.Add(current, ckb.UdtBalanceFrom(cell.OutputData))
			return current.Cmp(expected) >= 0
		},
	)
	if err != nil {
		return added, fmt.Errorf("complete inputs by udt: %w", err)
	}
	if !done {
		return added, &InsufficientError{Kind: KindUdt, Missing: new(uint256.Int).Sub(expected, current)}
	}
	return added, nil
}

// CompleteUdtChange returns the excess udt balance of the inputs to the
// signer. An output already carrying the change lock and udtType receives it,
// otherwise a new output is added. It reports whether the transaction changed.
func (b *Builder) CompleteUdtChange(ctx context.Context, tx *ckb.Transaction, udtType *ckb.Script) (bool, error) {
	inputs, err := tx.GetInputsUdtBalance(ctx, udtType, b.client)
	if err != nil {
		return false, fmt.Errorf("complete udt change: %w", err)
	}
	outputs := tx.GetOutputsUdtBalance(udtType)
	if inputs.Cmp(outputs) < 0 {
		return false, &InsufficientError{Kind: KindUdt, Missing: new(uint256.Int).Sub(outputs, inputs)}
	}
	excess := new(uint256.Int).Sub(inputs, outputs)
	if excess.IsZero() {
		return false, nil
	}

	lock, err := b.changeLock(ctx)
	if err != nil {
		return false, fmt.Errorf("complete udt change: %w", err)
	}

	for i, out := range tx.Outputs {
		if !out.Lock.Eq(lock) || !out.Type.Eq(udtType) {
			continue
		}
		var data []byte
		if i < len(tx.OutputsData) {
			data = tx.OutputsData[i]
		}
		balance := new(uint256.Int).Add(ckb.UdtBalanceFrom(data), excess)
		var rest []byte
		if len(data) > 16 {
			rest = data[16:]
		}
		newData, err := ckb.UdtBalanceToData(balance, rest)
		if err != nil {
			return false, fmt.Errorf("complete udt change: %w", err)
		}
		tx.SetOutputDataAt(i, newData)
		b.logs.Debugw("udt change merged into output", "index", i, "change", excess.Dec())
		return true, nil
	}

	data, err := ckb.UdtBalanceToData(excess, nil)
	if err != nil {
		return false, fmt.Errorf("complete udt change: %w", err)
	}
	out := &ckb.CellOutput{Lock: lock.Clone(), Type: udtType.Clone()}
	out.Capacity = out.MinCapacity(len(data))
	index := tx.AddOutput(out, data)
	b.logs.Debugw("udt change output added", "index", index, "change", excess.Dec())
	return true, nil
}
