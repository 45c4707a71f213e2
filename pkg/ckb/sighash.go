package ckb

import (
	"context"
	"fmt"

	"ccc/pkg/codec"
	"ccc/pkg/hasher"
)

// SignHashInfo is the message a lock group signs and the witness position the signature goes to.
type SignHashInfo struct {
	Message  Hash
	Position int
}

// PrepareSighashAllWitness reserves lockLen zero bytes in the lock field of
// the witness of the first input locked by lock. The placeholder must have the
// final signature length: the signed message covers the witness bytes.
// It reports whether the transaction spends any input locked by lock.
func (t *Transaction) PrepareSighashAllWitness(ctx context.Context, lock *Script, lockLen int, resolver CellResolver) (bool, error) {
	position, err := t.FindInputIndexByLock(ctx, lock, resolver)
	if err != nil {
		return false, fmt.Errorf("prepare sighash all witness: %w", err)
	}
	if position == -1 {
		return false, nil
	}

	wa, err := t.GetWitnessArgsAt(position)
	if err != nil {
		return false, fmt.Errorf("prepare sighash all witness: %w", err)
	}
	if wa == nil {
		wa = &WitnessArgs{}
	}
	wa.Lock = Placeholder(lockLen)
	t.SetWitnessArgsAt(position, wa)
	return true, nil
}

// GetSignHashInfo computes the sighash-all message of the lock group of lock:
// the transaction hash followed by every witness of the group and every
// witness beyond the inputs, each prefixed with its little-endian u64 length.
// It returns nil when no input is locked by lock.
func (t *Transaction) GetSignHashInfo(ctx context.Context, lock *Script, resolver CellResolver) (*SignHashInfo, error) {
	h := hasher.NewCkb()
	txHash := t.Hash()
	h.Update(txHash[:])

	position := -1
	for i, witness := range t.Witnesses {
		if i < len(t.Inputs) {
			in := t.Inputs[i]
			if err := in.CompleteExtraInfos(ctx, resolver); err != nil {
				return nil, fmt.Errorf("sign hash info: %w", err)
			}
			if !in.CellOutput.Lock.Eq(lock) {
				continue
			}
			if position == -1 {
				position = i
			}
		}
		if position == -1 {
			return nil, nil
		}
		h.Update(codec.Uint64Le(uint64(len(witness))), witness)
	}

	if position == -1 {
		return nil, nil
	}
	return &SignHashInfo{Message: h.Digest(), Position: position}, nil
}
