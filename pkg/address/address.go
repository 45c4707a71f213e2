package address

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"ccc/pkg/ckb"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
)

const (
	PrefixMainnet = "ckb"
	PrefixTestnet = "ckt"
)

// Format is the leading byte of an address payload.
type Format byte

const (
	FormatFull     Format = 0x00
	FormatShort    Format = 0x01
	FormatFullData Format = 0x02
	FormatFullType Format = 0x04
)

var (
	ErrInvalidAddress   = errors.New("invalid address")
	ErrUnknownPrefix    = errors.New("unknown address prefix")
	ErrUnknownFormat    = errors.New("unknown address format")
	ErrUnknownCodeIndex = errors.New("unknown short address code index")
)

var (
	secp256k1Blake160 = common.HexToHash("0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8")
	secp256k1Multisig = common.HexToHash("0x5c5069eb0857efc65e1bca0c07df34c31663b3622fd3876c876320fc9634e2a8")

	// short addresses index a fixed table of type-hashed locks
	shortCodeHashes = map[string]map[byte]ckb.Hash{
		PrefixMainnet: {
			0: secp256k1Blake160,
			1: secp256k1Multisig,
			2: common.HexToHash("0xd369597ff47f29fbc0d47d2e3775370d1250b85140c670e4718af712983a2354"),
		},
		PrefixTestnet: {
			0: secp256k1Blake160,
			1: secp256k1Multisig,
			2: common.HexToHash("0x3419a1c09eb2567f6552ee7a8ecffd64155cffe0f1796e6e61ec088d740c1356"),
		},
	}
)

// Address is a lock script rendered for a network.
type Address struct {
	Script *ckb.Script
	Prefix string
}

func New(script *ckb.Script, prefix string) (*Address, error) {
	if _, ok := shortCodeHashes[prefix]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	if _, err := script.HashType.Byte(); err != nil {
		return nil, fmt.Errorf("new address: %w", err)
	}
	return &Address{Script: script.Clone(), Prefix: prefix}, nil
}

// String encodes the address in the full format.
func (a *Address) String() string {
	s, err := Encode(a.Script, a.Prefix)
	if err != nil {
		return ""
	}
	return s
}

// Encode renders script in the full format with a bech32m checksum.
func Encode(script *ckb.Script, prefix string) (string, error) {
	hashType, err := script.HashType.Byte()
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	payload := make([]byte, 0, 34+len(script.Args))
	payload = append(payload, byte(FormatFull))
	payload = append(payload, script.CodeHash[:]...)
	payload = append(payload, hashType)
	payload = append(payload, script.Args...)

	data, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	s, err := bech32.EncodeM(prefix, data)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return s, nil
}

// Decode parses an address in the full format or one of the deprecated formats.
func Decode(s string) (*Address, error) {
	prefix, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
	}
	if _, ok := shortCodeHashes[prefix]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w %q: empty payload", ErrInvalidAddress, s)
	}

	format := Format(payload[0])
	if err := checkVariant(s, prefix, data, format == FormatFull); err != nil {
		return nil, err
	}

	var script *ckb.Script
	switch format {
	case FormatFull:
		script, err = decodeFull(payload[1:])
	case FormatShort:
		script, err = decodeShort(prefix, payload[1:])
	case FormatFullData:
		script, err = decodeDeprecatedFull(payload[1:], ckb.HashTypeData)
	case FormatFullType:
		script, err = decodeDeprecatedFull(payload[1:], ckb.HashTypeType)
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownFormat, payload[0])
	}
	if err != nil {
		return nil, fmt.Errorf("decode address %q: %w", s, err)
	}
	return &Address{Script: script, Prefix: prefix}, nil
}

// checkVariant re-encodes the data to tell bech32m from bech32: the full
// format must use bech32m and the deprecated formats bech32.
func checkVariant(s, prefix string, data []byte, wantM bool) error {
	encode := bech32.Encode
	if wantM {
		encode = bech32.EncodeM
	}
	expected, err := encode(prefix, data)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidAddress, s, err)
	}
	if expected != strings.ToLower(s) {
		return fmt.Errorf("%w %q: wrong checksum variant", ErrInvalidAddress, s)
	}
	return nil
}

func decodeFull(payload []byte) (*ckb.Script, error) {
	if len(payload) < 33 {
		return nil, fmt.Errorf("%w: full payload has %d bytes", ErrInvalidAddress, len(payload))
	}
	hashType, err := ckb.HashTypeFromByte(payload[32])
	if err != nil {
		return nil, err
	}
	return &ckb.Script{
		CodeHash: ckb.Hash(payload[:32]),
		HashType: hashType,
		Args:     bytes.Clone(payload[33:]),
	}, nil
}

func decodeShort(prefix string, payload []byte) (*ckb.Script, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("%w: empty short payload", ErrInvalidAddress)
	}
	codeHash, ok := shortCodeHashes[prefix][payload[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodeIndex, payload[0])
	}
	args := payload[1:]
	// ACP short addresses may append minimum amounts
	if payload[0] != 2 && len(args) != 20 {
		return nil, fmt.Errorf("%w: short args have %d bytes", ErrInvalidAddress, len(args))
	}
	return &ckb.Script{
		CodeHash: codeHash,
		HashType: ckb.HashTypeType,
		Args:     bytes.Clone(args),
	}, nil
}

func decodeDeprecatedFull(payload []byte, hashType ckb.HashType) (*ckb.Script, error) {
	if len(payload) < 32 {
		return nil, fmt.Errorf("%w: full payload has %d bytes", ErrInvalidAddress, len(payload))
	}
	return &ckb.Script{
		CodeHash: ckb.Hash(payload[:32]),
		HashType: hashType,
		Args:     bytes.Clone(payload[32:]),
	}, nil
}
