package ckbsigner

import (
	"bytes"
	"fmt"

	"ccc/pkg/ckb"
	"ccc/pkg/codec"
	"ccc/pkg/hasher"
	"ccc/pkg/signer"

	"github.com/ethereum/go-ethereum/crypto"
)

var messagePrefix = []byte("Nervos Message:")

// MessageHash is the digest a CKB secp256k1 message signature covers.
func MessageHash(message []byte) ckb.Hash {
	return hasher.HashCkb(messagePrefix, message)
}

// VerifyMessage checks a recoverable signature of message against a compressed public key, both in hex.
func VerifyMessage(message []byte, signature, publicKey string) (bool, error) {
	sig, err := codec.DecodeHex(signature)
	if err != nil {
		return false, fmt.Errorf("verify message: %w", err)
	}
	if len(sig) != signatureLen {
		return false, fmt.Errorf("verify message: %w: %d bytes", signer.ErrInvalidSignature, len(sig))
	}
	pub, err := codec.DecodeHex(publicKey)
	if err != nil {
		return false, fmt.Errorf("verify message: %w", err)
	}

	hash := MessageHash(message)
	recovered, err := crypto.SigToPub(hash[:], sig)
	if err != nil {
		return false, nil
	}
	return bytes.Equal(crypto.CompressPubkey(recovered), pub), nil
}
