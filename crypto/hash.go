// Package crypto supplies the cryptographic collaborators the builder and
// client consume: blake2b hashing and a seed-based ed25519 signer. Other
// schemes (sr25519 in particular) stay external; anything satisfying Signer
// plugs in.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/wireforge/go-subwire/scale"
)

// Hasher is the payload-hash collaborator: 32 bytes out, used for oversized
// signing payloads and extrinsic hashes.
type Hasher func([]byte) [32]byte

// Blake2b256 returns the 32-byte blake2b digest of b.
func Blake2b256(b []byte) [32]byte {
	return blake2b.Sum256(b)
}

// Blake2b512 returns the 64-byte blake2b digest of b.
func Blake2b512(b []byte) [64]byte {
	return blake2b.Sum512(b)
}

// Blake2b returns a digest of the given output size, 1 through 64 bytes.
func Blake2b(b []byte, size int) ([]byte, error) {
	if size < 1 || size > 64 {
		return nil, fmt.Errorf("%w: blake2b output size %d not in [1, 64]", scale.ErrRange, size)
	}
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, err
	}
	h.Write(b)
	return h.Sum(nil), nil
}
