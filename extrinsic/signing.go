package extrinsic

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wireforge/go-subwire/crypto"
	"github.com/wireforge/go-subwire/types"
)

// PayloadHashThreshold is the size above which a signing payload is replaced
// by its blake2b-256 digest before signing. Runtimes apply the same rule when
// verifying, so signing an oversized payload raw produces a signature the
// chain rejects.
const PayloadHashThreshold = 256

// signableBytes applies the oversized-payload rule.
func signableBytes(payload []byte, hash crypto.Hasher) []byte {
	if len(payload) <= PayloadHashThreshold {
		return payload
	}
	digest := hash(payload)
	return digest[:]
}

// SignedExtrinsic is an assembled version-4 signed transaction, ready for
// submission. The exported fields expose the assembled parts for inspection;
// Bytes carries the authoritative wire form.
type SignedExtrinsic struct {
	Address   types.MultiAddress
	Signature types.MultiSignature
	Extra     []byte
	Call      types.Call

	raw []byte
}

// Bytes returns the length-prefixed wire encoding.
func (e *SignedExtrinsic) Bytes() []byte {
	return e.raw
}

// Hex returns the wire encoding as a 0x-prefixed hex string, the form
// author_submitExtrinsic takes.
func (e *SignedExtrinsic) Hex() string {
	return hexutil.Encode(e.raw)
}
