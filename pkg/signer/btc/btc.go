package btc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/codec"
	"ccc/pkg/signer"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	messageMagic      = "Bitcoin Signed Message:\n"
	transactionPrefix = "CKB (Bitcoin Layer) transaction: "

	// compact signature header for a compressed key: 27 + 4 + recovery id
	compressedHeader = 31
)

var (
	_ signer.Signer = (*PublicKeyReadonly)(nil)
	_ signer.Signer = (*PrivateKey)(nil)
)

// PublicKeyReadonly watches the omnilock of a Bitcoin public key.
type PublicKeyReadonly struct {
	signer.ReadOnly
	client    *client.Client
	publicKey *btcec.PublicKey
}

// NewPublicKeyReadonly takes a compressed or uncompressed secp256k1 public key.
func NewPublicKeyReadonly(c *client.Client, publicKey []byte) (*PublicKeyReadonly, error) {
	pub, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	return &PublicKeyReadonly{
		ReadOnly:  signer.ReadOnly{Name: "btc public key signer"},
		client:    c,
		publicKey: pub,
	}, nil
}

func (s *PublicKeyReadonly) Type() signer.Type {
	return signer.TypeBTC
}

func (s *PublicKeyReadonly) SignType() signer.SignType {
	return signer.SignTypeBtcEcdsa
}

func (s *PublicKeyReadonly) Client() *client.Client {
	return s.client
}

func (s *PublicKeyReadonly) pubKeyHash() []byte {
	return btcutil.Hash160(s.publicKey.SerializeCompressed())
}

func (s *PublicKeyReadonly) params() *chaincfg.Params {
	if s.client.Network() == client.Mainnet {
		return &chaincfg.MainNetParams
	}
	return &chaincfg.TestNet3Params
}

// GetInternalAddress is the native segwit address of the key.
func (s *PublicKeyReadonly) GetInternalAddress(context.Context) (string, error) {
	addr, err := btcutil.NewAddressWitnessPubKeyHash(s.pubKeyHash(), s.params())
	if err != nil {
		return "", fmt.Errorf("get internal address: %w", err)
	}
	return addr.EncodeAddress(), nil
}

// GetIdentity is the compressed public key in hex without prefix.
func (s *PublicKeyReadonly) GetIdentity(context.Context) (string, error) {
	return hex.EncodeToString(s.publicKey.SerializeCompressed()), nil
}

// Lock is the omnilock of the key hash in Bitcoin mode.
func (s *PublicKeyReadonly) Lock() (*ckb.Script, error) {
	info, err := s.client.GetKnownScript(client.OmniLock)
	if err != nil {
		return nil, err
	}
	return info.Script(signer.OmniLockArgs(signer.OmniLockAuthBitcoin, s.pubKeyHash())), nil
}

func (s *PublicKeyReadonly) GetAddressObjs(context.Context) ([]*address.Address, error) {
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

func (s *PublicKeyReadonly) GetRecommendedAddressObj(ctx context.Context) (*address.Address, error) {
	return signer.RecommendedAddressObj(ctx, s)
}

func (s *PublicKeyReadonly) PrepareTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
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

// PrivateKey signs Bitcoin signed messages.
type PrivateKey struct {
	*PublicKeyReadonly
	key *btcec.PrivateKey
}

func NewPrivateKey(c *client.Client, privateKey string) (*PrivateKey, error) {
	raw, err := codec.DecodeHex(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	if len(raw) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: private key is %d bytes", signer.ErrInvalidKey, len(raw))
	}
	key, pub := btcec.PrivKeyFromBytes(raw)
	ro, err := NewPublicKeyReadonly(c, pub.SerializeCompressed())
	if err != nil {
		return nil, err
	}
	ro.ReadOnly.Name = "btc private key signer"
	return &PrivateKey{PublicKeyReadonly: ro, key: key}, nil
}

func (s *PrivateKey) signCompact(message []byte) ([]byte, error) {
	return ecdsa.SignCompact(s.key, MessageHash(message), true)
}

// SignMessageRaw returns the base64 compact signature of message.
func (s *PrivateKey) SignMessageRaw(_ context.Context, message []byte) (string, error) {
	sig, err := s.signCompact(message)
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

func (s *PrivateKey) SignOnlyTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	signed, err := signer.SignSighashAll(ctx, s.client, tx, lock, func(message ckb.Hash) ([]byte, error) {
		sig, err := s.signCompact([]byte(transactionPrefix + hex.EncodeToString(message[:])))
		if err != nil {
			return nil, err
		}
		sig[0] = compressedHeader + (sig[0]-27)%4
		return signer.OmniLockWitness(sig), nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return signed, nil
}

// MessageHash is the double sha256 of the magic prefixed message.
func MessageHash(message []byte) []byte {
	var buf bytes.Buffer
	_ = wire.WriteVarString(&buf, 0, messageMagic)
	_ = wire.WriteVarBytes(&buf, 0, message)
	return chainhash.DoubleHashB(buf.Bytes())
}

// VerifyMessage checks a base64 compact signature of message against a hex public key.
func VerifyMessage(message []byte, signature, publicKey string) (bool, error) {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("verify message: %w: %w", signer.ErrInvalidSignature, err)
	}
	if len(sig) != 65 {
		return false, fmt.Errorf("verify message: %w: %d bytes", signer.ErrInvalidSignature, len(sig))
	}
	want, err := codec.DecodeHex(publicKey)
	if err != nil {
		return false, fmt.Errorf("verify message: %w", err)
	}

	pub, _, err := ecdsa.RecoverCompact(sig, MessageHash(message))
	if err != nil {
		return false, nil
	}
	return bytes.Equal(pub.SerializeCompressed(), want) || bytes.Equal(pub.SerializeUncompressed(), want), nil
}
