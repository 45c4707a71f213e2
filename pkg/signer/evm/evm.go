package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/codec"
	"ccc/pkg/signer"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const transactionPrefix = "CKB transaction: "

var (
	_ signer.Signer = (*AddressReadonly)(nil)
	_ signer.Signer = (*PrivateKey)(nil)
)

// AddressReadonly watches the omnilock of an Ethereum account.
type AddressReadonly struct {
	signer.ReadOnly
	client  *client.Client
	account common.Address
}

func NewAddressReadonly(c *client.Client, account string) (*AddressReadonly, error) {
	if !common.IsHexAddress(account) {
		return nil, fmt.Errorf("%w: evm address %q", signer.ErrInvalidKey, account)
	}
	return &AddressReadonly{
		ReadOnly: signer.ReadOnly{Name: "evm address signer"},
		client:   c,
		account:  common.HexToAddress(account),
	}, nil
}

func (s *AddressReadonly) Type() signer.Type {
	return signer.TypeEVM
}

func (s *AddressReadonly) SignType() signer.SignType {
	return signer.SignTypeEvmPersonal
}

func (s *AddressReadonly) Client() *client.Client {
	return s.client
}

func (s *AddressReadonly) GetInternalAddress(context.Context) (string, error) {
	return s.account.Hex(), nil
}

func (s *AddressReadonly) GetIdentity(context.Context) (string, error) {
	return s.account.Hex(), nil
}

// Lock is the omnilock of the account in Ethereum display mode.
func (s *AddressReadonly) Lock() (*ckb.Script, error) {
	info, err := s.client.GetKnownScript(client.OmniLock)
	if err != nil {
		return nil, err
	}
	return info.Script(signer.OmniLockArgs(signer.OmniLockAuthEthereumDisplay, s.account.Bytes())), nil
}

func (s *AddressReadonly) GetAddressObjs(context.Context) ([]*address.Address, error) {
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

func (s *AddressReadonly) GetRecommendedAddressObj(ctx context.Context) (*address.Address, error) {
	return signer.RecommendedAddressObj(ctx, s)
}

func (s *AddressReadonly) PrepareTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	prepared, err := signer.PrepareSighashAll(ctx, s.client, tx, lock, signer.OmniLockWitnessLen, client.OmniLock)
	if err != nil {
		return nil, fmt.Errorf("prepare transaction: %w", err)
	}
	return prepared, nil
}

// PrivateKey signs EIP-191 personal messages with an Ethereum key.
type PrivateKey struct {
	*AddressReadonly
	key *ecdsa.PrivateKey
}

func NewPrivateKey(c *client.Client, privateKey string) (*PrivateKey, error) {
	raw, err := codec.DecodeHex(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	ro, err := NewAddressReadonly(c, crypto.PubkeyToAddress(key.PublicKey).Hex())
	if err != nil {
		return nil, err
	}
	ro.ReadOnly.Name = "evm private key signer"
	return &PrivateKey{AddressReadonly: ro, key: key}, nil
}

func (s *PrivateKey) personalSign(message []byte) ([]byte, error) {
	return crypto.Sign(accounts.TextHash(message), s.key)
}

// SignMessageRaw returns the personal_sign signature, with v as 27 or 28.
func (s *PrivateKey) SignMessageRaw(_ context.Context, message []byte) (string, error) {
	sig, err := s.personalSign(message)
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

func (s *PrivateKey) SignOnlyTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	signed, err := signer.SignSighashAll(ctx, s.client, tx, lock, func(message ckb.Hash) ([]byte, error) {
		sig, err := s.personalSign([]byte(transactionPrefix + message.Hex()))
		if err != nil {
			return nil, err
		}
		return signer.OmniLockWitness(sig), nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return signed, nil
}

// VerifyMessage checks a personal_sign signature of message against an account address.
func VerifyMessage(message []byte, signature, account string) (bool, error) {
	sig, err := codec.DecodeHex(signature)
	if err != nil {
		return false, fmt.Errorf("verify message: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return false, fmt.Errorf("verify message: %w: %d bytes", signer.ErrInvalidSignature, len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return false, nil
	}
	return crypto.PubkeyToAddress(*pub) == common.HexToAddress(account), nil
}
