package codec

import "errors"

var (
	ErrInvalidHex        = errors.New("invalid hex string")
	ErrByteRange         = errors.New("byte value out of range [0, 255]")
	ErrUnsupportedType   = errors.New("unsupported byte-like type")
	ErrUnknownEncoding   = errors.New("unknown encoding")
	ErrNumberOverflow    = errors.New("number does not fit in width")
	ErrMalformedMolecule = errors.New("malformed molecule data")
)
