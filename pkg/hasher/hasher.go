// Package hasher implements the CKB default hash: BLAKE2b-256 personalised with "ckb-default-hash".
package hasher

import (
	"hash"

	"github.com/ethereum/go-ethereum/common"
	blake2b "github.com/minio/blake2b-simd"
)

const CkbPersonalization = "ckb-default-hash"

// Hash is a 32-byte digest rendered as 0x-prefixed lowercase hex.
type Hash = common.Hash

// Hasher accumulates data incrementally.
type Hasher struct {
	h hash.Hash
}

func NewCkb() *Hasher {
	h, err := blake2b.New(&blake2b.Config{
		Size:   32,
		Person: []byte(CkbPersonalization),
	})
	if err != nil {
		// only reachable with an invalid static config
		panic(err)
	}
	return &Hasher{h: h}
}

func (h *Hasher) Update(data ...[]byte) *Hasher {
	for _, d := range data {
		h.h.Write(d)
	}
	return h
}

func (h *Hasher) Digest() Hash {
	return common.BytesToHash(h.h.Sum(nil))
}

// HashCkb hashes the concatenation of data.
func HashCkb(data ...[]byte) Hash {
	return NewCkb().Update(data...).Digest()
}

// Blake160 is the first 20 bytes of the CKB hash, used as a public key hash.
func Blake160(data []byte) []byte {
	h := HashCkb(data)
	return h[:20]
}
