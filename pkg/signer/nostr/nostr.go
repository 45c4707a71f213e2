package nostr

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"ccc/pkg/address"
	"ccc/pkg/ckb"
	"ccc/pkg/client"
	"ccc/pkg/codec"
	"ccc/pkg/hasher"
	"ccc/pkg/signer"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// KindCkbSign is the event kind used for both messages and transactions.
	KindCkbSign = 23334

	TagSighashAll = "ckb_sighash_all"

	transactionContent = "Signing a CKB transaction"
	npubPrefix         = "npub"
)

var errWitnessSize = errors.New("event size differs from placeholder")

var _ signer.Signer = (*PrivateKey)(nil)

// PrivateKey signs Nostr events with a schnorr key and owns the matching nostr lock.
type PrivateKey struct {
	client *client.Client
	key    *btcec.PrivateKey
	now    func() time.Time
}

func NewPrivateKey(c *client.Client, privateKey string) (*PrivateKey, error) {
	raw, err := codec.DecodeHex(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", signer.ErrInvalidKey, err)
	}
	if len(raw) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: private key is %d bytes", signer.ErrInvalidKey, len(raw))
	}
	key, _ := btcec.PrivKeyFromBytes(raw)
	return &PrivateKey{client: c, key: key, now: time.Now}, nil
}

func (s *PrivateKey) Type() signer.Type {
	return signer.TypeNostr
}

func (s *PrivateKey) SignType() signer.SignType {
	return signer.SignTypeNostrEvent
}

func (s *PrivateKey) Client() *client.Client {
	return s.client
}

func (s *PrivateKey) Connect(context.Context) error {
	return nil
}

func (s *PrivateKey) IsConnected(context.Context) (bool, error) {
	return true, nil
}

func (s *PrivateKey) publicKey() []byte {
	return schnorr.SerializePubKey(s.key.PubKey())
}

// GetInternalAddress is the npub of the key.
func (s *PrivateKey) GetInternalAddress(context.Context) (string, error) {
	data, err := bech32.ConvertBits(s.publicKey(), 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("get internal address: %w", err)
	}
	npub, err := bech32.Encode(npubPrefix, data)
	if err != nil {
		return "", fmt.Errorf("get internal address: %w", err)
	}
	return npub, nil
}

// GetIdentity is the x-only public key in hex.
func (s *PrivateKey) GetIdentity(context.Context) (string, error) {
	return hex.EncodeToString(s.publicKey()), nil
}

// Lock is the nostr lock of the public key hash.
func (s *PrivateKey) Lock() (*ckb.Script, error) {
	info, err := s.client.GetKnownScript(client.NostrLock)
	if err != nil {
		return nil, err
	}
	args := append([]byte{0x00}, hasher.Blake160(s.publicKey())...)
	return info.Script(args), nil
}

func (s *PrivateKey) GetAddressObjs(context.Context) ([]*address.Address, error) {
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

func (s *PrivateKey) GetRecommendedAddressObj(ctx context.Context) (*address.Address, error) {
	return signer.RecommendedAddressObj(ctx, s)
}

// SignEvent fills in the pubkey, id and sig of event.
func (s *PrivateKey) SignEvent(event *Event) error {
	event.PubKey = hex.EncodeToString(s.publicKey())
	id, err := event.computeID()
	if err != nil {
		return err
	}
	digest, _ := hex.DecodeString(id)
	sig, err := schnorr.Sign(s.key, digest)
	if err != nil {
		return fmt.Errorf("sign event: %w", err)
	}
	event.ID = id
	event.Sig = hex.EncodeToString(sig.Serialize())
	return nil
}

// SignMessageRaw returns the signed event carrying message as JSON.
func (s *PrivateKey) SignMessageRaw(_ context.Context, message []byte) (string, error) {
	event := &Event{
		CreatedAt: s.now().Unix(),
		Kind:      KindCkbSign,
		Tags:      [][]string{},
		Content:   messageContent(message),
	}
	if err := s.SignEvent(event); err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	raw, err := event.marshal()
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	return string(raw), nil
}

func (s *PrivateKey) transactionEvent(message ckb.Hash) *Event {
	return &Event{
		CreatedAt: s.now().Unix(),
		Kind:      KindCkbSign,
		Tags:      [][]string{{TagSighashAll, hex.EncodeToString(message[:])}},
		Content:   transactionContent,
	}
}

// witnessLen is the size of a signed transaction event, which only depends
// on the digit count of its timestamp.
func (s *PrivateKey) witnessLen() (int, error) {
	event := s.transactionEvent(ckb.Hash{})
	event.PubKey = hex.EncodeToString(s.publicKey())
	event.ID = hex.EncodeToString(make([]byte, 32))
	event.Sig = hex.EncodeToString(make([]byte, 64))
	raw, err := event.marshal()
	if err != nil {
		return 0, err
	}
	return len(raw), nil
}

func (s *PrivateKey) PrepareTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	size, err := s.witnessLen()
	if err != nil {
		return nil, fmt.Errorf("prepare transaction: %w", err)
	}
	prepared, err := signer.PrepareSighashAll(ctx, s.client, tx, lock, size, client.NostrLock)
	if err != nil {
		return nil, fmt.Errorf("prepare transaction: %w", err)
	}
	return prepared, nil
}

func (s *PrivateKey) SignOnlyTransaction(ctx context.Context, tx *ckb.Transaction) (*ckb.Transaction, error) {
	lock, err := s.Lock()
	if err != nil {
		return nil, err
	}
	size, err := s.witnessLen()
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	signed, err := signer.SignSighashAll(ctx, s.client, tx, lock, func(message ckb.Hash) ([]byte, error) {
		event := s.transactionEvent(message)
		if err := s.SignEvent(event); err != nil {
			return nil, err
		}
		raw, err := event.marshal()
		if err != nil {
			return nil, err
		}
		if len(raw) != size {
			return nil, fmt.Errorf("%w: %d != %d", errWitnessSize, len(raw), size)
		}
		return raw, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return signed, nil
}

// messageContent is message itself when it is text, and its hex otherwise.
func messageContent(message []byte) string {
	if utf8.Valid(message) {
		return string(message)
	}
	return hexutil.Encode(message)
}

// VerifyMessage checks that signature is an event for message signed by the
// x-only public key.
func VerifyMessage(message []byte, signature, publicKey string) (bool, error) {
	var event Event
	if err := json.UnmarshalFromString(signature, &event); err != nil {
		return false, fmt.Errorf("verify message: %w: %w", signer.ErrInvalidSignature, err)
	}
	if event.Content != messageContent(message) || event.PubKey != publicKey {
		return false, nil
	}

	id, err := event.computeID()
	if err != nil {
		return false, fmt.Errorf("verify message: %w", err)
	}
	if id != event.ID {
		return false, nil
	}

	rawPub, err := hex.DecodeString(publicKey)
	if err != nil {
		return false, fmt.Errorf("verify message: %w", err)
	}
	pub, err := schnorr.ParsePubKey(rawPub)
	if err != nil {
		return false, fmt.Errorf("verify message: %w", err)
	}
	rawSig, err := hex.DecodeString(event.Sig)
	if err != nil {
		return false, fmt.Errorf("verify message: %w: %w", signer.ErrInvalidSignature, err)
	}
	sig, err := schnorr.ParseSignature(rawSig)
	if err != nil {
		return false, fmt.Errorf("verify message: %w: %w", signer.ErrInvalidSignature, err)
	}
	digest, _ := hex.DecodeString(id)
	return sig.Verify(digest, pub), nil
}
