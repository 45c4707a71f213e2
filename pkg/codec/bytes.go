package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Encoding names a textual representation of a byte sequence.
type Encoding string

const (
	Hex    Encoding = "hex"
	UTF8   Encoding = "utf8"
	Base64 Encoding = "base64"
)

// BytesFrom converts a byte-like value into a fresh byte slice.
//
// Accepted values are []byte, [N]byte pointers via Bytes(), []int and []uint
// (every element must be within [0, 255]) and strings. Strings are hex by
// default: the 0x prefix is optional and odd-length input is rejected rather
// than left padded.
func BytesFrom(value any, encoding ...Encoding) ([]byte, error) {
	enc := Hex
	if len(encoding) > 0 {
		enc = encoding[0]
	}

	switch v := value.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		return bytes.Clone(v), nil
	case interface{ Bytes() []byte }:
		return bytes.Clone(v.Bytes()), nil
	case []int:
		out := make([]byte, len(v))
		for i, n := range v {
			if n < 0 || n > 255 {
				return nil, fmt.Errorf("%w: element %d is %d", ErrByteRange, i, n)
			}
			out[i] = byte(n)
		}
		return out, nil
	case []uint:
		out := make([]byte, len(v))
		for i, n := range v {
			if n > 255 {
				return nil, fmt.Errorf("%w: element %d is %d", ErrByteRange, i, n)
			}
			out[i] = byte(n)
		}
		return out, nil
	case string:
		return bytesFromString(v, enc)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func bytesFromString(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case Hex:
		return DecodeHex(s)
	case UTF8:
		return []byte(s), nil
	case Base64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decode base64 %q: %w", s, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, enc)
	}
}

// DecodeHex decodes a hex string with or without the 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	if s == "" || s == "0x" || s == "0X" {
		return []byte{}, nil
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidHex, s, err)
	}
	return b, nil
}

// BytesTo renders bytes in the requested encoding. Hex output carries the 0x prefix.
func BytesTo(b []byte, encoding Encoding) (string, error) {
	switch encoding {
	case Hex:
		return hexutil.Encode(b), nil
	case UTF8:
		return string(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}

// HexFrom converts a byte-like value into its canonical 0x-prefixed lowercase hex form.
func HexFrom(value any) (string, error) {
	b, err := BytesFrom(value)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}

// BytesConcat concatenates byte-like values in argument order.
func BytesConcat(values ...any) ([]byte, error) {
	var buf bytes.Buffer
	for i, v := range values {
		b, err := BytesFrom(v)
		if err != nil {
			return nil, fmt.Errorf("concat argument %d: %w", i, err)
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// BytesEq compares two byte slices, treating nil and empty as equal.
func BytesEq(a, b []byte) bool {
	return bytes.Equal(a, b)
}
