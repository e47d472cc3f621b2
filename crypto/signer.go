package crypto

import (
	"crypto/ed25519"
	"fmt"

	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

// Signer signs prepared payloads. Implementations own their key material;
// the builder only ever sees the public key and the finished signature.
type Signer interface {
	Sign(message []byte) (types.MultiSignature, error)
	PublicKey() types.AccountID
	Scheme() types.SignatureScheme
}

// Ed25519Signer signs with the standard library ed25519 implementation,
// expanded from a 32-byte seed.
type Ed25519Signer struct {
	priv ed25519.PrivateKey
}

// NewEd25519Signer expands a 32-byte seed into a signing key.
func NewEd25519Signer(seed []byte) (*Ed25519Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: ed25519 seed needs %d bytes, got %d", scale.ErrRange, ed25519.SeedSize, len(seed))
	}
	return &Ed25519Signer{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign returns the ed25519 signature over message.
func (s *Ed25519Signer) Sign(message []byte) (types.MultiSignature, error) {
	return types.NewMultiSignature(types.SchemeEd25519, ed25519.Sign(s.priv, message))
}

// PublicKey returns the 32-byte public key, which doubles as the on-chain
// account id.
func (s *Ed25519Signer) PublicKey() types.AccountID {
	var out types.AccountID
	copy(out[:], s.priv.Public().(ed25519.PublicKey))
	return out
}

// Scheme returns the ed25519 wire tag.
func (s *Ed25519Signer) Scheme() types.SignatureScheme {
	return types.SchemeEd25519
}
