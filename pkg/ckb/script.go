package ckb

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ccc/pkg/codec"
	"ccc/pkg/entity"
	"ccc/pkg/hasher"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

type Hash = hasher.Hash

// Script is a lock or type predicate: code selected by CodeHash and HashType, run with Args.
type Script struct {
	CodeHash Hash
	HashType HashType
	Args     []byte
}

var scriptCodec = entity.New("script", decodeScript, encodeScript)

func NewScript(codeHash Hash, hashType HashType, args []byte) (*Script, error) {
	if _, err := hashType.Byte(); err != nil {
		return nil, fmt.Errorf("new script: %w", err)
	}
	return &Script{
		CodeHash: codeHash,
		HashType: hashType,
		Args:     bytes.Clone(args),
	}, nil
}

func ScriptFromBytes(b []byte) (*Script, error) {
	return scriptCodec.FromBytes(b)
}

func encodeScript(s *Script) []byte {
	ht, err := s.HashType.Byte()
	if err != nil {
		// constructors and decoders validate the hash type; a literal with a bad one is a bug
		panic(err)
	}
	return codec.PackTable(s.CodeHash[:], []byte{ht}, codec.PackBytes(s.Args))
}

func decodeScript(b []byte) (*Script, error) {
	fields, err := codec.UnpackTable(b, 3)
	if err != nil {
		return nil, err
	}
	if len(fields[0]) != 32 {
		return nil, fmt.Errorf("%w: code hash has %d bytes", ErrInvalidLength, len(fields[0]))
	}
	if len(fields[1]) != 1 {
		return nil, fmt.Errorf("%w: hash type has %d bytes", ErrInvalidLength, len(fields[1]))
	}
	hashType, err := HashTypeFromByte(fields[1][0])
	if err != nil {
		return nil, err
	}
	args, err := codec.UnpackBytes(fields[2])
	if err != nil {
		return nil, fmt.Errorf("args: %w", err)
	}
	return &Script{
		CodeHash: Hash(fields[0]),
		HashType: hashType,
		Args:     args,
	}, nil
}

func (s *Script) ToBytes() []byte {
	return encodeScript(s)
}

func (s *Script) Hash() Hash {
	return scriptCodec.MustHash(s)
}

func (s *Script) Clone() *Script {
	if s == nil {
		return nil
	}
	return scriptCodec.MustClone(s)
}

// Eq compares canonical encodings. Two nil scripts are equal.
func (s *Script) Eq(other *Script) bool {
	if s == nil || other == nil {
		return s == nil && other == nil
	}
	return scriptCodec.Equal(s, other)
}

// OccupiedSize is the number of bytes the script occupies in a cell.
func (s *Script) OccupiedSize() uint64 {
	if s == nil {
		return 0
	}
	return 32 + 1 + uint64(len(s.Args))
}

type scriptJSON struct {
	CodeHash Hash          `json:"code_hash"`
	HashType HashType      `json:"hash_type"`
	Args     hexutil.Bytes `json:"args"`
}

func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(scriptJSON{
		CodeHash: s.CodeHash,
		HashType: s.HashType,
		Args:     s.Args,
	})
}

func (s *Script) UnmarshalJSON(data []byte) error {
	var w scriptJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	if _, err := w.HashType.Byte(); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	s.CodeHash = w.CodeHash
	s.HashType = w.HashType
	s.Args = w.Args
	if s.Args == nil {
		s.Args = []byte{}
	}
	return nil
}
