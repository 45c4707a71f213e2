package txbuilder

import (
	"context"
	"fmt"
	"math"

	"ccc/pkg/ckb"
	"ccc/pkg/client/cache"
	"ccc/pkg/codec"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// Builder completes transaction skeletons with the signer's cells.
//
// Candidates are taken in the order the client yields them, cache first and
// then the node indexer in ascending order, and the first ones that reach the
// target win. Completion mutates the transaction and must not run twice at
// once on the same transaction.
type Builder struct {
	client Client
	signer Signer
	logs   *zap.SugaredLogger
}

func New(logger *zap.SugaredLogger, client Client, signer Signer) *Builder {
	return &Builder{
		client: client,
		signer: signer,
		logs:   logger,
	}
}

func (b *Builder) locks(ctx context.Context) ([]*ckb.Script, error) {
	addrs, err := b.signer.GetAddressObjs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get signer addresses: %w", err)
	}
	locks := make([]*ckb.Script, 0, len(addrs))
	for _, a := range addrs {
		locks = append(locks, a.Script)
	}
	return locks, nil
}

func (b *Builder) changeLock(ctx context.Context) (*ckb.Script, error) {
	addr, err := b.signer.GetRecommendedAddressObj(ctx)
	if err != nil {
		return nil, fmt.Errorf("get recommended address: %w", err)
	}
	return addr.Script, nil
}

// capacityKey selects plain cells: no type script and no data.
func capacityKey(lock *ckb.Script) *cache.SearchKey {
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

func udtKey(lock, udtType *ckb.Script) *cache.SearchKey {
	return &cache.SearchKey{
		Script:           lock,
		ScriptType:       cache.ScriptTypeLock,
		ScriptSearchMode: cache.SearchModeExact,
		Filter: &cache.SearchFilter{
			Script:             udtType,
			OutputDataLenRange: &cache.Range{Start: 16, End: math.MaxUint32},
		},
		WithData: true,
	}
}

// collect adds the signer's cells matched by keyFor as inputs until accept
// returns true. Cells rejected by want are never added. It returns the number
// of inputs added and whether accept was satisfied.
func (b *Builder) collect(
	ctx context.Context,
	tx *ckb.Transaction,
	keyFor func(lock *ckb.Script) *cache.SearchKey,
	want func(cell *ckb.Cell) bool,
	accept func(cell *ckb.Cell) (done bool),
) (int, bool, error) {
	locks, err := b.locks(ctx)
	if err != nil {
		return 0, false, err
	}

	added := 0
	for _, lock := range locks {
		for cell, err := range b.client.FindCells(ctx, keyFor(lock)) {
			if err != nil {
				return added, false, fmt.Errorf("find cells: %w", err)
			}
			if want != nil && !want(cell) {
				continue
			}
			if _, ok := tx.AddInput(cell.CellInput()); !ok {
				continue
			}
			added++
			if accept(cell) {
				return added, true, nil
			}
		}
	}
	return added, false, nil
}

// CompleteInputsByCapacity adds plain capacity cells until the inputs cover
// the outputs plus tweak. It returns the number of inputs added.
func (b *Builder) CompleteInputsByCapacity(ctx context.Context, tx *ckb.Transaction, tweak uint64) (int, error) {
	outputs, err := tx.GetOutputsCapacity()
	if err != nil {
		return 0, fmt.Errorf("complete inputs by capacity: %w", err)
	}
	if outputs > math.MaxUint64-tweak {
		return 0, fmt.Errorf("complete inputs by capacity: tweak %d: %w", tweak, codec.ErrNumberOverflow)
	}
	expected := outputs + tweak
	current, err := tx.GetInputsCapacity(ctx, b.client)
	if err != nil {
		return 0, fmt.Errorf("complete inputs by capacity: %w", err)
	}
	if current >= expected {
		return 0, nil
	}

	added, done, err := b.collect(ctx, tx, capacityKey, nil, func(cell *ckb.Cell) bool {
		current += cell.CellOutput.Capacity
		return current >= expected
	})
	if err != nil {
		return added, fmt.Errorf("complete inputs by capacity: %w", err)
	}
	if !done {
		return added, &InsufficientError{Kind: KindCapacity, Missing: uint256.NewInt(expected - current)}
	}
	return added, nil
}

// CompleteInputsAll adds every plain capacity cell of the signer.
func (b *Builder) CompleteInputsAll(ctx context.Context, tx *ckb.Transaction) (int, error) {
	added, _, err := b.collect(ctx, tx, capacityKey, nil, func(*ckb.Cell) bool { return false })
	if err != nil {
		return added, fmt.Errorf("complete inputs all: %w", err)
	}
	return added, nil
}

// CompleteInputsAtLeastOne adds one plain capacity cell to a transaction without inputs.
func (b *Builder) CompleteInputsAtLeastOne(ctx context.Context, tx *ckb.Transaction) (int, error) {
	if len(tx.Inputs) > 0 {
		return 0, nil
	}
	added, done, err := b.collect(ctx, tx, capacityKey, nil, func(*ckb.Cell) bool { return true })
	if err != nil {
		return added, fmt.Errorf("complete inputs at least one: %w", err)
	}
	if !done {
		return 0, &InsufficientError{Kind: KindCapacity, Missing: uint256.NewInt(1)}
	}
	return added, nil
}
