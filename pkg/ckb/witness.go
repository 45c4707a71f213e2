package ckb

import (
	"bytes"

	"ccc/pkg/codec"
	"ccc/pkg/entity"
)

// WitnessArgs is the conventional witness layout. Lock usually carries the
// signature of the input group; nil fields are absent, not empty.
type WitnessArgs struct {
	Lock       []byte
	InputType  []byte
	OutputType []byte
}

var witnessArgsCodec = entity.New("witness args", decodeWitnessArgs, encodeWitnessArgs)

func WitnessArgsFromBytes(b []byte) (*WitnessArgs, error) {
	return witnessArgsCodec.FromBytes(b)
}

func encodeWitnessArgs(w *WitnessArgs) []byte {
	return codec.PackTable(
		codec.PackBytesOpt(w.Lock),
		codec.PackBytesOpt(w.InputType),
		codec.PackBytesOpt(w.OutputType),
	)
}

func decodeWitnessArgs(b []byte) (*WitnessArgs, error) {
	fields, err := codec.UnpackTable(b, 3)
	if err != nil {
		return nil, err
	}
	w := &WitnessArgs{}
	if w.Lock, err = codec.UnpackBytesOpt(fields[0]); err != nil {
		return nil, err
	}
	if w.InputType, err = codec.UnpackBytesOpt(fields[1]); err != nil {
		return nil, err
	}
	if w.OutputType, err = codec.UnpackBytesOpt(fields[2]); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WitnessArgs) ToBytes() []byte {
	return encodeWitnessArgs(w)
}

func (w *WitnessArgs) Clone() *WitnessArgs {
	return witnessArgsCodec.MustClone(w)
}

func (w *WitnessArgs) Eq(other *WitnessArgs) bool {
	if w == nil || other == nil {
		return w == nil && other == nil
	}
	return witnessArgsCodec.Equal(w, other)
}

// Placeholder returns lockLen zero bytes, reserving space for a signature.
func Placeholder(lockLen int) []byte {
	return bytes.Repeat([]byte{0}, lockLen)
}
