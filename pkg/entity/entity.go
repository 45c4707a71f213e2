// Package entity derives value semantics for chain entities from a pair of
// codec functions: equality and hashing compare canonical encodings, and
// cloning goes through a full decode of the encoding.
package entity

import (
	"bytes"
	"errors"
	"fmt"

	"ccc/pkg/hasher"
)

var ErrNotImplemented = errors.New("not implemented")

// Codec binds the decode and encode functions of an entity type. A zero
// Codec has neither, and every operation on it fails with ErrNotImplemented.
type Codec[T any] struct {
	name   string
	decode func([]byte) (T, error)
	encode func(T) []byte
}

func New[T any](name string, decode func([]byte) (T, error), encode func(T) []byte) Codec[T] {
	return Codec[T]{
		name:   name,
		decode: decode,
		encode: encode,
	}
}

func (c Codec[T]) FromBytes(b []byte) (T, error) {
	if c.decode == nil {
		var zero T
		return zero, fmt.Errorf("%s from bytes: %w", c.name, ErrNotImplemented)
	}
	v, err := c.decode(b)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return v, nil
}

// ToBytes encodes v. Encoders panic on values no constructor produces, such
// as a literal with an unknown enum; ToBytes reports those as errors.
func (c Codec[T]) ToBytes(v T) (b []byte, err error) {
	if c.encode == nil {
		return nil, fmt.Errorf("%s to bytes: %w", c.name, ErrNotImplemented)
	}
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("encode %s: %w", c.name, rerr)
			} else {
				err = fmt.Errorf("encode %s: %v", c.name, r)
			}
			b = nil
		}
	}()
	return c.encode(v), nil
}

// Clone returns a deep copy sharing no memory with v.
func (c Codec[T]) Clone(v T) (T, error) {
	b, err := c.ToBytes(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.FromBytes(b)
}

// MustClone is Clone for codecs whose encoding always decodes. A panic here
// is a codec bug.
func (c Codec[T]) MustClone(v T) T {
	cloned, err := c.Clone(v)
	if err != nil {
		panic(err)
	}
	return cloned
}

// Eq reports whether the canonical encodings of a and b are identical.
func (c Codec[T]) Eq(a, b T) (bool, error) {
	ab, err := c.ToBytes(a)
	if err != nil {
		return false, err
	}
	bb, err := c.ToBytes(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(ab, bb), nil
}

// Hash is the CKB hash of the canonical encoding.
func (c Codec[T]) Hash(v T) (hasher.Hash, error) {
	b, err := c.ToBytes(v)
	if err != nil {
		return hasher.Hash{}, err
	}
	return hasher.HashCkb(b), nil
}

// Equal is Eq for codecs known to encode; it reports false when they cannot.
func (c Codec[T]) Equal(a, b T) bool {
	eq, err := c.Eq(a, b)
	return err == nil && eq
}

// MustHash is Hash for codecs known to encode.
func (c Codec[T]) MustHash(v T) hasher.Hash {
	h, err := c.Hash(v)
	if err != nil {
		panic(err)
	}
	return h
}
