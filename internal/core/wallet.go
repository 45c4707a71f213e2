package core

import (
	"context"
	"errors"
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"

	"go.uber.org/zap"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrWrongNetwork   = errors.New("address is for another network")
)

// Wallet sends and inspects capacity on behalf of one signer.
type Wallet struct {
	logs    *zap.SugaredLogger
	chain   Chain
	builder TxBuilder
	signer  Signer
}

func NewWallet(logger *zap.SugaredLogger, chain Chain, builder TxBuilder, signer Signer) *Wallet {
	return &Wallet{
		logs:    logger,
		chain:   chain,
		builder: builder,
		signer:  signer,
	}
}

// Address is the signer's recommended address.
func (w *Wallet) Address(ctx context.Context) (string, error) {
	addr, err := w.signer.GetRecommendedAddressObj(ctx)
	if err != nil {
		return "", fmt.Errorf("get recommended address: %w", err)
	}
	return addr.String(), nil
}

// Balance is the plain capacity of addr, or of every signer address when addr is empty.
func (w *Wallet) Balance(ctx context.Context, addr string) (uint64, error) {
	var locks []*ckb.Script
	if addr == "" {
		addrs, err := w.signer.GetAddressObjs(ctx)
		if err != nil {
			return 0, fmt.Errorf("get addresses: %w", err)
		}
		for _, a := range addrs {
			locks = append(locks, a.Script)
		}
	} else {
		decoded, err := w.decodeAddress(addr)
		if err != nil {
			return 0, err
		}
		locks = append(locks, decoded.Script)
	}

	balance, err := w.chain.GetBalance(ctx, locks)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// Transfer builds, signs and sends a transaction paying req.Amount to req.To,
// with change back to the signer's recommended address.
func (w *Wallet) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	to, err := w.decodeAddress(req.To)
	if err != nil {
		return nil, err
	}
	from, err := w.signer.GetRecommendedAddressObj(ctx)
	if err != nil {
		return nil, fmt.Errorf("get recommended address: %w", err)
	}

	tx := ckb.NewTransaction()
	tx.AddOutput(&ckb.CellOutput{Capacity: req.Amount, Lock: to.Script}, nil)

	added, err := w.builder.CompleteFeeChangeToLock(ctx, tx, from.Script, req.FeeRate)
	if err != nil {
		return nil, fmt.Errorf("complete fee: %w", err)
	}
	fee, err := tx.GetFee(ctx, w.chain)
	if err != nil {
		return nil, fmt.Errorf("get fee: %w", err)
	}

	prepared, err := w.signer.PrepareTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("prepare transaction: %w", err)
	}
	signed, err := w.signer.SignOnlyTransaction(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}

	hash, err := w.chain.SendTransaction(ctx, signed)
	if err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}

	w.logs.Infow("transfer sent",
		"hash", hash.Hex(),
		"to", req.To,
		"amount", req.Amount,
		"inputs", added,
		"fee", fee,
	)
	return &TransferResult{Hash: hash, Inputs: added, Fee: fee}, nil
}

func (w *Wallet) decodeAddress(s string) (*address.Address, error) {
	addr, err := address.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if addr.Prefix != w.chain.AddressPrefix() {
		return nil, fmt.Errorf("%w: %s", ErrWrongNetwork, addr.Prefix)
	}
	return addr, nil
}
