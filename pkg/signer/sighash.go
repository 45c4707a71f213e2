package signer

import (
	"context"

	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/codec"
)

// Omnilock auth flags.
const (
	OmniLockAuthBitcoin         byte = 0x04
	OmniLockAuthEthereumDisplay byte = 0x12
)

// OmniLockWitnessLen is the size of an omnilock witness lock holding one 65 byte signature.
const OmniLockWitnessLen = 85

// OmniLockArgs builds omnilock args from an auth flag and a 20 byte auth content, with no omnilock flags set.
func OmniLockArgs(flag byte, auth []byte) []byte {
	args := make([]byte, 0, 22)
	args = append(args, flag)
	args = append(args, auth...)
	return append(args, 0x00)
}

// OmniLockWitness encodes the omnilock witness lock table {signature, identity, preimage}.
func OmniLockWitness(signature []byte) []byte {
	return codec.PackTable(codec.PackBytesOpt(signature), nil, nil)
}

// PrepareSighashAll returns a copy of tx carrying the deps of script and a
// lockLen placeholder in the witness of the first input locked by lock.
// tx is returned as a copy untouched when no input uses lock.
func PrepareSighashAll(ctx context.Context, c *client.Client, tx *ckb.Transaction, lock *ckb.Script, lockLen int, script client.KnownScript) (*ckb.Transaction, error) {
	tx = tx.Clone()
	found, err := tx.PrepareSighashAllWitness(ctx, lock, lockLen, c)
	if err != nil {
		return nil, err
	}
	if !found {
		return tx, nil
	}

	info, err := c.GetKnownScript(script)
	if err != nil {
		return nil, err
	}
	tx.AddCellDeps(info.CellDeps...)
	return tx, nil
}

// SignSighashAll returns a copy of tx with the lock of the witness of lock's
// group set to what sign returns for the group's sighash-all message.
func SignSighashAll(ctx context.Context, c *client.Client, tx *ckb.Transaction, lock *ckb.Script, sign func(message ckb.Hash) ([]byte, error)) (*ckb.Transaction, error) {
	tx = tx.Clone()
	info, err := tx.GetSignHashInfo(ctx, lock, c)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return tx, nil
	}

	lockBytes, err := sign(info.Message)
	if err != nil {
		return nil, err
	}
	wa, err := tx.GetWitnessArgsAt(info.Position)
	if err != nil {
		return nil, err
	}
	if wa == nil {
		wa = &ckb.WitnessArgs{}
	}
	wa.Lock = lockBytes
	tx.SetWitnessArgsAt(info.Position, wa)
	return tx, nil
}
