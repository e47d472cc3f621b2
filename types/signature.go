package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/wireforge/go-subwire/scale"
)

// SignatureScheme is the wire discriminant of a signature's crypto scheme.
type SignatureScheme uint8

// Signature schemes, in wire tag order.
const (
	SchemeEd25519 SignatureScheme = 0x00
	SchemeSr25519 SignatureScheme = 0x01
	SchemeEcdsa   SignatureScheme = 0x02
)

// String names the scheme for diagnostics.
func (s SignatureScheme) String() string {
	switch s {
	case SchemeEd25519:
		return "ed25519"
	case SchemeSr25519:
		return "sr25519"
	case SchemeEcdsa:
		return "ecdsa"
	default:
		return fmt.Sprintf("scheme-%d", uint8(s))
	}
}

func (s SignatureScheme) rawLen() (int, bool) {
	switch s {
	case SchemeEd25519, SchemeSr25519:
		return 64, true
	case SchemeEcdsa:
		return 65, true
	default:
		return 0, false
	}
}

// MultiSignature is a signature tagged with its scheme. The tag byte precedes
// the raw signature bytes on the wire.
type MultiSignature struct {
	Scheme SignatureScheme
	Raw    []byte
}

// NewMultiSignature validates the raw length against the scheme.
func NewMultiSignature(scheme SignatureScheme, raw []byte) (MultiSignature, error) {
	want, known := scheme.rawLen()
	if !known {
		return MultiSignature{}, fmt.Errorf("%w: unknown signature scheme %d", scale.ErrFormat, scheme)
	}
	if len(raw) != want {
		return MultiSignature{}, fmt.Errorf("%w: %s signature needs %d bytes, got %d", scale.ErrRange, scheme, want, len(raw))
	}
	cp := make([]byte, want)
	copy(cp, raw)
	return MultiSignature{Scheme: scheme, Raw: cp}, nil
}

// Hex returns the 0x-prefixed hex of the raw signature bytes (no tag).
func (m MultiSignature) Hex() string {
	return hexutil.Encode(m.Raw)
}

// EncodeScale writes the scheme tag followed by the raw signature.
func (m MultiSignature) EncodeScale(w *scale.Writer) error {
	want, known := m.Scheme.rawLen()
	if !known {
		return fmt.Errorf("%w: unknown signature scheme %d", scale.ErrFormat, m.Scheme)
	}
	if len(m.Raw) != want {
		return fmt.Errorf("%w: %s signature needs %d bytes, got %d", scale.ErrRange, m.Scheme, want, len(m.Raw))
	}
	w.U8(uint8(m.Scheme))
	w.RawBytes(m.Raw)
	return nil
}

// DecodeScale reads the scheme tag and the scheme-determined raw bytes.
func (m *MultiSignature) DecodeScale(r *scale.Reader) error {
	off := r.Position()
	tag, err := r.ReadByte()
	if err != nil {
		return err
	}
	scheme := SignatureScheme(tag)
	want, known := scheme.rawLen()
	if !known {
		return fmt.Errorf("%w: unknown signature scheme 0x%02x at offset %d", scale.ErrFormat, tag, off)
	}
	raw, err := r.Read(want)
	if err != nil {
		return err
	}
	m.Scheme = scheme
	m.Raw = make([]byte, want)
	copy(m.Raw, raw)
	return nil
}
