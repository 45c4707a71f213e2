package ckbsigner

import (
	"context"
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/hasher"
	"ccc/pkg/signer"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	publicKeyLen = 33
	signatureLen = 65
)

var _ signer.Signer = (*PublicKey)(nil)

// PublicKey knows the secp256k1 lock of a public key but cannot sign.
type PublicKey struct {
	signer.ReadOnly
	client    *client.Client
	publicKey []byte
}

// NewPublicKey takes a 33 byte compressed secp256k1 public key.
func NewPublicKey(c *client.Client, publicKey []byte) (*PublicKey, error) {
	if len(publicKey) != publicKeyLen {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", signer.ErrInvalidKey, len(publicKey), publicKeyLen)
	}
	if _, err := crypto.DecompressPubkey(publicKey); err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	return &PublicKey{
		ReadOnly:  signer.ReadOnly{Name: "ckb public key signer"},
		client:    c,
		publicKey: append([]byte{}, publicKey...),
	}, nil
}

func (s *PublicKey) Type() signer.Type {
	return signer.TypeCKB
}

func (s *PublicKey) SignType() signer.SignType {
	return signer.SignTypeCkbSecp256k1
}

func (s *PublicKey) Client() *client.Client {
	return s.client
}

func (s *PublicKey) GetIdentity(context.Context) (string, error) {
	return hexutil.Encode(s.publicKey), nil
}

func (s *PublicKey) GetInternalAddress(ctx context.Context) (string, error) {
	return signer.GetRecommendedAddress(ctx, s)
}

// Lock is the secp256k1_blake160 lock of the public key.
func (s *PublicKey) Lock() (*ckb.Script, error) {
	info, err := s.client.GetKnownScript(client.Secp256k1Blake160)
	if err != nil {
		return nil, err
	}
	return info.Script(hasher.Blake160(s.publicKey)), nil
}

func (s *PublicKey) GetAddressObjs(context.Context) ([]*address.Address, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	addr, err := address.New(lock, s.client.AddressPrefix())
	if err != nil {
		return nil, err
	}
	return []*address.Address{addr}, nil
}

func (s *PublicKey) GetRecommendedAddressObj(ctx context.Context) (*address.Address, error) {
	return signer.RecommendedAddressObj(ctx, s)
}

func (s *PublicKey) PrepareTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	prepared, err := signer.PrepareSighashAll(ctx, s.client, tx, lock, signatureLen, client.Secp256k1Blake160)
	if err != nil {
		return nil, fmt.Errorf("prepare transaction: %w", err)
	}
	return prepared, nil
}
