// Package types defines the wire-level value types shared across the module:
// account identifiers, multi-scheme addresses and signatures, block hashes,
// 128-bit balances, mortality eras and call indexes. Each type knows its own
// byte form and hex or decimal text form, so higher layers never hand-roll
// conversions.
package types

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wireforge/go-subwire/scale"
)

// AccountID is a 32-byte public key identifying an on-chain account.
type AccountID [32]byte

// AccountIDFromHex parses a 0x-prefixed hex string of exactly 32 bytes.
func AccountIDFromHex(s string) (AccountID, error) {
	var out AccountID
	raw, err := hexutil.Decode(s)
	if err != nil {
		return out, fmt.Errorf("%w: %v", scale.ErrFormat, err)
	}
	return AccountIDFromBytes(raw)
}

// AccountIDFromBytes copies exactly 32 bytes into an AccountID.
func AccountIDFromBytes(b []byte) (AccountID, error) {
	var out AccountID
	if len(b) != 32 {
		return out, fmt.Errorf("%w: account id needs 32 bytes, got %d", scale.ErrRange, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Hex returns the 0x-prefixed hex form.
func (a AccountID) Hex() string {
	return hexutil.Encode(a[:])
}

// Bytes returns a copy of the raw 32 bytes.
func (a AccountID) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, a[:])
	return out
}

// IsZero returns true for the all-zero account.
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

// MarshalText implements encoding.TextMarshaler as 0x-prefixed hex.
func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AccountID) UnmarshalText(text []byte) error {
	parsed, err := AccountIDFromHex(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Address discriminants on the wire. Only the Id form is produced here;
// index, raw and 20-byte forms belong to chains this module does not target.
const addressTagID = 0x00

// MultiAddress is the tagged destination wrapper used by transfer-style
// calls, restricted to the accountized Id variant.
type MultiAddress struct {
	ID AccountID
}

// NewAddressFromAccountID wraps a 32-byte public key in the Id variant.
func NewAddressFromAccountID(id AccountID) MultiAddress {
	return MultiAddress{ID: id}
}

// EncodeScale writes the Id tag followed by the 32-byte account.
func (m MultiAddress) EncodeScale(w *scale.Writer) {
	w.U8(addressTagID)
	w.RawBytes(m.ID[:])
}

// DecodeScale reads an address, accepting only the Id variant.
func (m *MultiAddress) DecodeScale(r *scale.Reader) error {
	off := r.Position()
	tag, err := r.ReadByte()
	if err != nil {
		return err
	}
	if tag != addressTagID {
		return fmt.Errorf("%w: unsupported address variant 0x%02x at offset %d", scale.ErrFormat, tag, off)
	}
	raw, err := r.Read(32)
	if err != nil {
		return err
	}
	copy(m.ID[:], raw)
	return nil
}
