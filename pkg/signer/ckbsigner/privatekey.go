package ckbsigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/codec"
	"ccc/pkg/signer"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var _ signer.Signer = (*PrivateKey)(nil)

// PrivateKey signs with a secp256k1 key for the secp256k1_blake160 lock.
type PrivateKey struct {
	*PublicKey
	key *ecdsa.PrivateKey
}

// NewPrivateKey takes a 32 byte private key in hex.
func NewPrivateKey(c *client.Client, privateKey string) (*PrivateKey, error) {
	raw, err := codec.DecodeHex(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	pub, err := NewPublicKey(c, crypto.CompressPubkey(&key.PublicKey))
	if err != nil {
		return nil, err
	}
	pub.ReadOnly.Name = "ckb private key signer"
	return &PrivateKey{PublicKey: pub, key: key}, nil
}

func (s *PrivateKey) SignMessageRaw(_ context.Context, message []byte) (string, error) {
	hash := MessageHash(message)
	sig, err := crypto.Sign(hash[:], s.key)
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	return hexutil.Encode(sig), nil
}

func (s *PrivateKey) SignOnlyTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	signed, err := signer.SignSighashAll(ctx, s.client, tx, lock, func(message ckb.Hash) ([]byte, error) {
		return crypto.Sign(message[:], s.key)
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return signed, nil
}
