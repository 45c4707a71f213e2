package txbuilder

import (
	"context"
	"errors"
	"fmt"

	"ccc/pkg/ckb"
)

const maxFeeIterations = 16

// ChangeFunc hands capacity, the inputs capacity left over after outputs and
// fee, to tx. It returns zero when the change was placed, or the capacity it
// needs at least to place it.
type ChangeFunc func(tx *ckb.Transaction, capacity uint64) (needed uint64, err error)

// CompleteFee adds capacity inputs until the transaction pays feeRate
// shannons per 1000 bytes and passes the rest to change. A zero feeRate asks
// the client. The fee is estimated on the transaction as the signer prepares
// it, so placeholder witnesses count. It returns the number of inputs added.
func (b *Builder) CompleteFee(ctx context.Context, tx *ckb.Transaction, change ChangeFunc, feeRate uint64) (int, error) {
	if feeRate == 0 {
		rate, err := b.client.GetFeeRate(ctx)
		if err != nil {
			return 0, fmt.Errorf("complete fee: %w", err)
		}
		feeRate = rate
	}

	var leastFee, leastExtra uint64
	for i := 0; i < maxFeeIterations; i++ {
		work := tx.Clone()

		added, err := b.CompleteInputsByCapacity(ctx, work, leastFee+leastExtra)
		if err != nil {
			var insufficient *InsufficientError
			if errors.As(err, &insufficient) && leastExtra > 0 {
				insufficient.ForChange = true
			}
			return 0, err
		}

		fee, err := b.estimateFee(ctx, work, feeRate)
		if err != nil {
			return 0, err
		}
		fee = max(fee, leastFee)
		inputs, err := work.GetInputsCapacity(ctx, b.client)
		if err != nil {
			return 0, fmt.Errorf("complete fee: %w", err)
		}
		outputs, err := work.GetOutputsCapacity()
		if err != nil {
			return 0, fmt.Errorf("complete fee: %w", err)
		}

		b.logs.Debugw("fee completion iteration",
			"iteration", i,
			"inputs_added", added,
			"fee", fee,
			"inputs_capacity", inputs,
			"outputs_capacity", outputs,
		)

		if inputs < outputs+fee {
			leastFee = fee
			continue
		}

		needed, err := change(work, inputs-outputs-fee)
		if err != nil {
			return 0, fmt.Errorf("complete fee: change: %w", err)
		}
		if needed > 0 {
			leastFee, leastExtra = fee, needed
			continue
		}

		// the change may have grown the transaction
		finalFee, err := b.estimateFee(ctx, work, feeRate)
		if err != nil {
			return 0, err
		}
		paid, err := work.GetFee(ctx, b.client)
		if err != nil {
			return 0, fmt.Errorf("complete fee: %w", err)
		}
		if paid < finalFee {
			leastFee = finalFee
			continue
		}

		tx.CopyFrom(work)
		b.logs.Infow("fee completed",
			"fee", paid,
			"fee_rate", feeRate,
			"inputs_added", added,
			"size", work.Size(),
		)
		return added, nil
	}

	return 0, fmt.Errorf("complete fee: %w after %d iterations", ErrFeeNotConverged, maxFeeIterations)
}

func (b *Builder) estimateFee(ctx context.Context, tx *ckb.Transaction, feeRate uint64) (uint64, error) {
	prepared, err := b.signer.PrepareTransaction(ctx, tx.Clone())
	if err != nil {
		return 0, fmt.Errorf("prepare transaction: %w", err)
	}
	return prepared.EstimateFee(feeRate), nil
}

// CompleteFeeChangeToLock sends the change to lock. An output with the same
// lock and no type takes the change, otherwise a new output is added.
func (b *Builder) CompleteFeeChangeToLock(ctx context.Context, tx *ckb.Transaction, lock *ckb.Script, feeRate uint64) (int, error) {
	reuse := -1
	for i, out := range tx.Outputs {
		if out.Lock.Eq(lock) && out.Type == nil {
			reuse = i
			break
		}
	}
	if reuse >= 0 {
		return b.CompleteFeeChangeToOutput(ctx, tx, reuse, feeRate)
	}

	return b.CompleteFee(ctx, tx, func(work *ckb.Transaction, capacity uint64) (uint64, error) {
		out := &ckb.CellOutput{Lock: lock.Clone()}
		minCapacity := out.MinCapacity(0)
		if capacity < minCapacity {
			return minCapacity, nil
		}
		out.Capacity = capacity
		work.AddOutput(out, nil)
		return 0, nil
	}, feeRate)
}

// CompleteFeeBy sends the change to the signer's recommended address.
func (b *Builder) CompleteFeeBy(ctx context.Context, tx *ckb.Transaction, feeRate uint64) (int, error) {
	lock, err := b.changeLock(ctx)
	if err != nil {
		return 0, fmt.Errorf("complete fee: %w", err)
	}
	return b.CompleteFeeChangeToLock(ctx, tx, lock, feeRate)
}

// CompleteFeeChangeToOutput adds the change to the capacity of output index.
func (b *Builder) CompleteFeeChangeToOutput(ctx context.Context, tx *ckb.Transaction, index int, feeRate uint64) (int, error) {
	if index < 0 || index >= len(tx.Outputs) {
		return 0, fmt.Errorf("complete fee: %w: %d of %d", ErrOutputIndex, index, len(tx.Outputs))
	}
	return b.CompleteFee(ctx, tx, func(work *ckb.Transaction, capacity uint64) (uint64, error) {
		work.Outputs[index].Capacity += capacity
		return 0, nil
	}, feeRate)
}
