package types

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wireforge/go-subwire/scale"
)

// Hash is a 32-byte block or state hash.
type Hash [32]byte

// HashFromHex parses a 0x-prefixed hex string of exactly 32 bytes.
func HashFromHex(s string) (Hash, error) {
	var out Hash
	raw, err := hexutil.Decode(s)
	if err != nil {
		return out, fmt.Errorf("%w: %v", scale.ErrFormat, err)
	}
	return HashFromBytes(raw)
}

// HashFromBytes copies exactly 32 bytes into a Hash.
func HashFromBytes(b []byte) (Hash, error) {
	var out Hash
	if len(b) != 32 {
		return out, fmt.Errorf("%w: hash needs 32 bytes, got %d", scale.ErrRange, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// MustHashFromHex is HashFromHex for well-known constants; it panics on
// malformed input.
func MustHashFromHex(s string) Hash {
	h, err := HashFromHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Hex returns the 0x-prefixed hex form.
func (h Hash) Hex() string {
	return hexutil.Encode(h[:])
}

// Bytes returns a copy of the raw 32 bytes.
func (h Hash) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, h[:])
	return out
}

// IsZero returns true for the all-zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// EncodeScale writes the raw 32 bytes.
func (h Hash) EncodeScale(w *scale.Writer) {
	w.RawBytes(h[:])
}

// DecodeScale reads the raw 32 bytes.
func (h *Hash) DecodeScale(r *scale.Reader) error {
	raw, err := r.Read(32)
	if err != nil {
		return err
	}
	copy(h[:], raw)
	return nil
}

// MarshalText implements encoding.TextMarshaler as 0x-prefixed hex.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := HashFromHex(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
