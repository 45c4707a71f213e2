package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"slices"
)

// NumBeToBytes encodes a non-negative integer big-endian into exactly width bytes.
func NumBeToBytes(v *big.Int, width int) ([]byte, error) {
	if v == nil {
		v = new(big.Int)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrNumberOverflow, v)
	}
	if (v.BitLen()+7)/8 > width {
		return nil, fmt.Errorf("%w: %s in %d bytes", ErrNumberOverflow, v, width)
	}
	return v.FillBytes(make([]byte, width)), nil
}

// NumLeToBytes encodes a non-negative integer little-endian into exactly width bytes.
func NumLeToBytes(v *big.Int, width int) ([]byte, error) {
	b, err := NumBeToBytes(v, width)
	if err != nil {
		return nil, err
	}
	slices.Reverse(b)
	return b, nil
}

func NumFromBeBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

func NumFromLeBytes(b []byte) *big.Int {
	be := slices.Clone(b)
	slices.Reverse(be)
	return new(big.Int).SetBytes(be)
}

func Uint32Le(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func Uint64Le(v uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, v)
}

func Uint32FromLe(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: uint32 needs 4 bytes, got %d", ErrMalformedMolecule, len(b))
	}
	return binary.LittleEndian.Uint32(b), nil
}

func Uint64FromLe(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: uint64 needs 8 bytes, got %d", ErrMalformedMolecule, len(b))
	}
	return binary.LittleEndian.Uint64(b), nil
}
