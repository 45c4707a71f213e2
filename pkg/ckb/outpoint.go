package ckb

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"ccc/pkg/codec"
	"ccc/pkg/entity"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const outPointSize = 36

// OutPoint references output Index of transaction TxHash.
type OutPoint struct {
	TxHash Hash
	Index  uint32
}

var outPointCodec = entity.New("out point", decodeOutPoint, encodeOutPoint)

func NewOutPoint(txHash Hash, index uint32) *OutPoint {
	return &OutPoint{TxHash: txHash, Index: index}
}

func OutPointFromBytes(b []byte) (*OutPoint, error) {
	return outPointCodec.FromBytes(b)
}

func encodeOutPoint(o *OutPoint) []byte {
	out := make([]byte, 0, outPointSize)
	out = append(out, o.TxHash[:]...)
	return binary.LittleEndian.AppendUint32(out, o.Index)
}

func decodeOutPoint(b []byte) (*OutPoint, error) {
	if len(b) != outPointSize {
		return nil, fmt.Errorf("%w: out point has %d bytes, want %d", ErrInvalidLength, len(b), outPointSize)
	}
	index, err := codec.Uint32FromLe(b[32:])
	if err != nil {
		return nil, err
	}
	return &OutPoint{TxHash: Hash(b[:32]), Index: index}, nil
}

func (o *OutPoint) ToBytes() []byte {
	return encodeOutPoint(o)
}

func (o *OutPoint) Hash() Hash {
	return outPointCodec.MustHash(o)
}

func (o *OutPoint) Clone() *OutPoint {
	if o == nil {
		return nil
	}
	return outPointCodec.MustClone(o)
}

func (o *OutPoint) Eq(other *OutPoint) bool {
	if o == nil || other == nil {
		return o == nil && other == nil
	}
	return outPointCodec.Equal(o, other)
}

// Key is a comparable identity usable as a map key.
func (o *OutPoint) Key() string {
	return string(encodeOutPoint(o))
}

func (o *OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxHash.Hex(), o.Index)
}

type outPointJSON struct {
	TxHash Hash           `json:"tx_hash"`
	Index  hexutil.Uint64 `json:"index"`
}

func (o OutPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(outPointJSON{TxHash: o.TxHash, Index: hexutil.Uint64(o.Index)})
}

func (o *OutPoint) UnmarshalJSON(data []byte) error {
	var w outPointJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("out point: %w", err)
	}
	if uint64(w.Index) > math.MaxUint32 {
		return fmt.Errorf("out point index %d: %w", uint64(w.Index), codec.ErrNumberOverflow)
	}
	o.TxHash = w.TxHash
	o.Index = uint32(w.Index)
	return nil
}
