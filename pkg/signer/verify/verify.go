// Package verify checks message signatures from any signer family.
package verify

import (
	"errors"
	"fmt"

	"ccc/pkg/signer"
	"ccc/pkg/signer/btc"
	"ccc/pkg/signer/ckbsigner"
	"ccc/pkg/signer/evm"
	"ccc/pkg/signer/nostr"
)

var ErrUnknownSignType = errors.New("unknown sign type")

// Message reports whether sig is a valid signature of message by sig.Identity.
func Message(message []byte, sig *signer.Signature) (bool, error) {
	switch sig.SignType {
	case signer.SignTypeCkbSecp256k1:
		return ckbsigner.VerifyMessage(message, sig.Signature, sig.Identity)
	case signer.SignTypeEvmPersonal:
		return evm.VerifyMessage(message, sig.Signature, sig.Identity)
	case signer.SignTypeBtcEcdsa:
		return btc.VerifyMessage(message, sig.Signature, sig.Identity)
	case signer.SignTypeNostrEvent:
		return nostr.VerifyMessage(message, sig.Signature, sig.Identity)
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownSignType, sig.SignType)
	}
}
