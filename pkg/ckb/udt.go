package ckb

import (
	"context"
	"fmt"
	"slices"

	"github.com/holiman/uint256"
)

const udtBalanceSize = 16

// UdtBalanceFrom reads the little-endian u128 amount at the start of a UDT cell's data.
// Data shorter than 16 bytes holds no balance.
func UdtBalanceFrom(data []byte) *uint256.Int {
	if len(data) < udtBalanceSize {
		return uint256.NewInt(0)
	}
	be := slices.Clone(data[:udtBalanceSize])
	slices.Reverse(be)
	return new(uint256.Int).SetBytes(be)
}

// UdtBalanceToData writes balance as the first 16 bytes and keeps the remaining data.
func UdtBalanceToData(balance *uint256.Int, rest []byte) ([]byte, error) {
	if balance.BitLen() > udtBalanceSize*8 {
		return nil, fmt.Errorf("%w: %s", ErrUdtBalanceOverflow, balance.Dec())
	}
	full := balance.Bytes32()
	le := slices.Clone(full[32-udtBalanceSize:])
	slices.Reverse(le)
	return append(le, rest...), nil
}

// GetOutputsUdtBalance sums the balance of outputs typed by udtType.
func (t *Transaction) GetOutputsUdtBalance(udtType *Script) *uint256.Int {
	total := uint256.NewInt(0)
	for i, out := range t.Outputs {
		if !out.Type.Eq(udtType) {
			continue
		}
		var data []byte
		if i < len(t.OutputsData) {
			data = t.OutputsData[i]
		}
		total.Add(total, UdtBalanceFrom(data))
	}
	return total
}

// GetInputsUdtBalance sums the balance of spent cells typed by udtType.
func (t *Transaction) GetInputsUdtBalance(ctx context.Context, udtType *Script, resolver CellResolver) (*uint256.Int, error) {
	total := uint256.NewInt(0)
	for _, in := range t.Inputs {
		if err := in.CompleteExtraInfos(ctx, resolver); err != nil {
			return nil, err
		}
		if !in.CellOutput.Type.Eq(udtType) {
			continue
		}
		total.Add(total, UdtBalanceFrom(in.OutputData))
	}
	return total, nil
}
