package signer

import (
	"context"
	"fmt"
	"iter"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/client/cache"
)

// Type is the key family a signer holds.
type Type string

const (
	TypeCKB   Type = "CKB"
	TypeEVM   Type = "EVM"
	TypeBTC   Type = "BTC"
	TypeNostr Type = "Nostr"
)

// SignType tells a verifier how a message signature was produced.
type SignType string

const (
	SignTypeUnknown      SignType = "Unknown"
	SignTypeCkbSecp256k1 SignType = "CkbSecp256k1"
	SignTypeEvmPersonal  SignType = "EvmPersonal"
	SignTypeBtcEcdsa     SignType = "BtcEcdsa"
	SignTypeNostrEvent   SignType = "NostrEvent"
)

// Signature is a signed message together with what a verifier needs to check it.
type Signature struct {
	Signature string   `json:"signature"`
	Identity  string   `json:"identity"`
	SignType  SignType `json:"signType"`
}

// Signer is a key holding agent that can own cells and authorize transactions.
type Signer interface {
	Type() Type
	SignType() SignType
	Client() *client.Client

	// Connect is idempotent.
	Connect(ctx context.Context) error
	IsConnected(ctx context.Context) (bool, error)

	// GetInternalAddress is the address in the signer's own chain format.
	GetInternalAddress(ctx context.Context) (string, error)
	// GetIdentity is what verifiers match a message signature against.
	GetIdentity(ctx context.Context) (string, error)
	GetAddressObjs(ctx context.Context) ([]*address.Address, error)
	GetRecommendedAddressObj(ctx context.Context) (*address.Address, error)

	SignMessageRaw(ctx context.Context, message []byte) (string, error)
	// PrepareTransaction returns a copy of tx with cell deps and placeholder
	// witnesses for the signer's locks.
	PrepareTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error)
	// SignOnlyTransaction returns a copy of a prepared tx with the signatures filled in.
	SignOnlyTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error)
}

func GetAddresses(ctx context.Context, s Signer) ([]string, error) {
	addrs, err := s.GetAddressObjs(ctx)
	if err != nil {
		return nil, fmt.Errorf("get addresses: %w", err)
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	return out, nil
}

func GetRecommendedAddress(ctx context.Context, s Signer) (string, error) {
	addr, err := s.GetRecommendedAddressObj(ctx)
	if err != nil {
		return "", fmt.Errorf("get recommended address: %w", err)
	}
	return addr.String(), nil
}

// RecommendedAddressObj is the first address of the signer.
func RecommendedAddressObj(ctx context.Context, s Signer) (*address.Address, error) {
	addrs, err := s.GetAddressObjs(ctx)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("recommended address: %w", ErrNoAddress)
	}
	return addrs[0], nil
}

func SignMessage(ctx context.Context, s Signer, message []byte) (*Signature, error) {
	sig, err := s.SignMessageRaw(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	identity, err := s.GetIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}
	return &Signature{
		Signature: sig,
		Identity:  identity,
		SignType:  s.SignType(),
	}, nil
}

func SignTransaction(ctx context.Context, s Signer, tx *ckb.Transaction) (*ckb.Transaction, error) {
	prepared, err := s.PrepareTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	signed, err := s.SignOnlyTransaction(ctx, prepared)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return signed, nil
}

// SendTransaction signs tx and submits it through the signer's client.
func SendTransaction(ctx context.Context, s Signer, tx *ckb.Transaction) (ckb.Hash, error) {
	signed, err := SignTransaction(ctx, s, tx)
	if err != nil {
		return ckb.Hash{}, err
	}
	return s.Client().SendTransaction(ctx, signed)
}

// FindCells yields cells locked by any of the signer's addresses.
func FindCells(ctx context.Context, s Signer, filter *cache.SearchFilter, withData bool) iter.Seq2[*ckb.Cell, error] {
	return func(yield func(*ckb.Cell, error) bool) {
		addrs, err := s.GetAddressObjs(ctx)
		if err != nil {
			yield(nil, fmt.Errorf("find cells: %w", err))
			return
		}
		for _, a := range addrs {
			key := &cache.SearchKey{
				Script:           a.Script,
				ScriptType:       cache.ScriptTypeLock,
				ScriptSearchMode: cache.SearchModeExact,
				Filter:           filter,
				WithData:         withData,
			}
			for cell, err := range s.Client().FindCells(ctx, key) {
				if !yield(cell, err) || err != nil {
					return
				}
			}
		}
	}
}

// GetBalance is the plain capacity held by the signer's addresses.
func GetBalance(ctx context.Context, s Signer) (uint64, error) {
	addrs, err := s.GetAddressObjs(ctx)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	locks := make([]*ckb.Script, 0, len(addrs))
	for _, a := range addrs {
		locks = append(locks, a.Script)
	}
	return s.Client().GetBalance(ctx, locks)
}
