package codec

import (
	"encoding/binary"
	"fmt"
)

// Molecule is the canonical binary layout used on chain. Every length and
// offset in its headers is a little-endian uint32.
const headerUnit = 4

// PackFixVec packs items of identical size as a count followed by the items.
func PackFixVec(items [][]byte) []byte {
	out := Uint32Le(uint32(len(items)))
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

// UnpackFixVec splits a fixvec of itemSize-byte items.
func UnpackFixVec(b []byte, itemSize int) ([][]byte, error) {
	if len(b) < headerUnit {
		return nil, fmt.Errorf("%w: fixvec header needs 4 bytes, got %d", ErrMalformedMolecule, len(b))
	}
	count := int(binary.LittleEndian.Uint32(b))
	if len(b) != headerUnit+count*itemSize {
		return nil, fmt.Errorf("%w: fixvec of %d items of %d bytes has %d bytes", ErrMalformedMolecule, count, itemSize, len(b))
	}
	items := make([][]byte, count)
	for i := range items {
		start := headerUnit + i*itemSize
		items[i] = b[start : start+itemSize]
	}
	return items, nil
}

// PackBytes packs a byte fixvec.
func PackBytes(b []byte) []byte {
	out := Uint32Le(uint32(len(b)))
	return append(out, b...)
}

func UnpackBytes(b []byte) ([]byte, error) {
	if len(b) < headerUnit {
		return nil, fmt.Errorf("%w: bytes header needs 4 bytes, got %d", ErrMalformedMolecule, len(b))
	}
	size := int(binary.LittleEndian.Uint32(b))
	if len(b) != headerUnit+size {
		return nil, fmt.Errorf("%w: bytes declares %d bytes, has %d", ErrMalformedMolecule, size, len(b)-headerUnit)
	}
	return append([]byte{}, b[headerUnit:]...), nil
}

// PackBytesOpt packs an optional byte fixvec; nil means absent.
func PackBytesOpt(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return PackBytes(b)
}

func UnpackBytesOpt(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, nil
	}
	return UnpackBytes(b)
}

// PackDynVec packs variable-size items as total size, offsets and items.
func PackDynVec(items [][]byte) []byte {
	return packOffsets(items)
}

// PackTable packs the fields of a table. Tables share the dynvec layout.
func PackTable(fields ...[]byte) []byte {
	return packOffsets(fields)
}

func packOffsets(items [][]byte) []byte {
	headerSize := headerUnit * (1 + len(items))
	total := headerSize
	for _, item := range items {
		total += len(item)
	}

	out := make([]byte, 0, total)
	out = binary.LittleEndian.AppendUint32(out, uint32(total))
	offset := headerSize
	for _, item := range items {
		out = binary.LittleEndian.AppendUint32(out, uint32(offset))
		offset += len(item)
	}
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

// UnpackDynVec splits a dynvec into its items.
func UnpackDynVec(b []byte) ([][]byte, error) {
	return unpackOffsets(b, -1)
}

// UnpackTable splits a table that must carry exactly fieldCount fields.
func UnpackTable(b []byte, fieldCount int) ([][]byte, error) {
	return unpackOffsets(b, fieldCount)
}

func unpackOffsets(b []byte, want int) ([][]byte, error) {
	if len(b) < headerUnit {
		return nil, fmt.Errorf("%w: header needs 4 bytes, got %d", ErrMalformedMolecule, len(b))
	}
	total := int(binary.LittleEndian.Uint32(b))
	if total != len(b) {
		return nil, fmt.Errorf("%w: declared size %d, actual %d", ErrMalformedMolecule, total, len(b))
	}
	if total == headerUnit {
		if want > 0 {
			return nil, fmt.Errorf("%w: expected %d fields, got 0", ErrMalformedMolecule, want)
		}
		return [][]byte{}, nil
	}
	if total < 2*headerUnit {
		return nil, fmt.Errorf("%w: truncated offsets", ErrMalformedMolecule)
	}

	first := int(binary.LittleEndian.Uint32(b[headerUnit:]))
	if first%headerUnit != 0 || first < 2*headerUnit || first > total {
		return nil, fmt.Errorf("%w: invalid first offset %d", ErrMalformedMolecule, first)
	}
	count := first/headerUnit - 1
	if want >= 0 && count != want {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedMolecule, want, count)
	}

	offsets := make([]int, count+1)
	for i := 0; i < count; i++ {
		offsets[i] = int(binary.LittleEndian.Uint32(b[headerUnit*(i+1):]))
	}
	offsets[count] = total

	items := make([][]byte, count)
	for i := 0; i < count; i++ {
		if offsets[i] > offsets[i+1] {
			return nil, fmt.Errorf("%w: offsets not ascending at %d", ErrMalformedMolecule, i)
		}
		items[i] = b[offsets[i]:offsets[i+1]]
	}
	return items, nil
}
