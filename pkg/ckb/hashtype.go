package ckb

import (
	"encoding/json"
	"fmt"
)

// HashType tells the VM how a script's code hash selects its code.
type HashType string

const (
	HashTypeData  HashType = "data"
	HashTypeType  HashType = "type"
	HashTypeData1 HashType = "data1"
	HashTypeData2 HashType = "data2"
)

// the byte codes are not sequential, so both directions are table driven
var (
	hashTypeToByte = map[HashType]byte{
		HashTypeData:  0x00,
		HashTypeType:  0x01,
		HashTypeData1: 0x02,
		HashTypeData2: 0x04,
	}
	byteToHashType = map[byte]HashType{
		0x00: HashTypeData,
		0x01: HashTypeType,
		0x02: HashTypeData1,
		0x04: HashTypeData2,
	}
)

func HashTypeFrom(s string) (HashType, error) {
	h := HashType(s)
	if _, ok := hashTypeToByte[h]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHashType, s)
	}
	return h, nil
}

func HashTypeFromByte(b byte) (HashType, error) {
	h, ok := byteToHashType[b]
	if !ok {
		return "", fmt.Errorf("%w: byte 0x%02x", ErrUnknownHashType, b)
	}
	return h, nil
}

func (h HashType) Byte() (byte, error) {
	b, ok := hashTypeToByte[h]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHashType, string(h))
	}
	return b, nil
}

func (h *HashType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hash type: %w", err)
	}
	parsed, err := HashTypeFrom(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// DepType tells how a cell dep is loaded: directly, or as a group of out points.
type DepType string

const (
	DepTypeCode     DepType = "code"
	DepTypeDepGroup DepType = "dep_group"
)

func DepTypeFrom(s string) (DepType, error) {
	switch DepType(s) {
	case DepTypeCode, DepTypeDepGroup:
		return DepType(s), nil
	case "depGroup":
		return DepTypeDepGroup, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDepType, s)
}

func DepTypeFromByte(b byte) (DepType, error) {
	switch b {
	case 0:
		return DepTypeCode, nil
	case 1:
		return DepTypeDepGroup, nil
	}
	return "", fmt.Errorf("%w: byte 0x%02x", ErrUnknownDepType, b)
}

func (d DepType) Byte() (byte, error) {
	switch d {
	case DepTypeCode:
		return 0, nil
	case DepTypeDepGroup:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDepType, string(d))
}

func (d *DepType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dep type: %w", err)
	}
	parsed, err := DepTypeFrom(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
