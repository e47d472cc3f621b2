package scale

import (
	"fmt"
	"math/bits"
)

// compact.go implements the variable-length compact integer scheme that the
// rest of the wire format composes. The two low bits of the first byte select
// the mode; encoding always picks the smallest mode that holds the magnitude
// and decoding rejects anything wider, so a value has exactly one valid
// byte form.

// Compact writes v in the four-mode compact scheme:
//
//	v < 2^6   one byte    v<<2
//	v < 2^14  two bytes   little-endian of v<<2 | 0b01
//	v < 2^30  four bytes  little-endian of v<<2 | 0b10
//	else      length byte (count-4)<<2 | 0b11, then count magnitude bytes
//	          little-endian, count minimal and at least 4
func (w *Writer) Compact(v uint64) {
	switch {
	case v < 1<<6:
		w.writeByte(byte(v) << 2)
	case v < 1<<14:
		w.writeByte(byte(v<<2) | 0b01)
		w.writeByte(byte(v >> 6))
	case v < 1<<30:
		w.U32(uint32(v)<<2 | 0b10)
	default:
		n := compactByteLen(v)
		w.writeByte(byte(n-4)<<2 | 0b11)
		for i := 0; i < n; i++ {
			w.writeByte(byte(v >> (8 * i)))
		}
	}
}

// CompactU128 writes a 16-byte little-endian magnitude in the compact scheme.
// Values that fit uint64 produce the same bytes Compact would.
func (w *Writer) CompactU128(v [16]byte) {
	var lo, hi uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(v[i]) << (8 * i)
		hi |= uint64(v[8+i]) << (8 * i)
	}
	if hi == 0 {
		w.Compact(lo)
		return
	}
	n := 8 + (bits.Len64(hi)+7)/8
	w.writeByte(byte(n-4)<<2 | 0b11)
	for i := 0; i < n; i++ {
		w.writeByte(v[i])
	}
}

// Compact reads a four-mode compact integer into a uint64. Non-minimal
// encodings fail with ErrFormat; magnitudes wider than 8 bytes fail with
// ErrPrecision (use CompactU128 for balance-sized values).
func (r *Reader) Compact() (uint64, error) {
	start := r.offset
	b0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b0 & 0b11 {
	case 0b00:
		return uint64(b0 >> 2), nil

	case 0b01:
		b1, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v := (uint64(b0) | uint64(b1)<<8) >> 2
		if v < 1<<6 {
			return 0, formatErr(start, "non-minimal compact (two-byte mode)")
		}
		return v, nil

	case 0b10:
		buf, err := r.Read(3)
		if err != nil {
			return 0, err
		}
		v := (uint64(b0) | uint64(buf[0])<<8 | uint64(buf[1])<<16 | uint64(buf[2])<<24) >> 2
		if v < 1<<14 {
			return 0, formatErr(start, "non-minimal compact (four-byte mode)")
		}
		return v, nil

	default:
		n := int(b0>>2) + 4
		if n > 8 {
			return 0, fmt.Errorf("%w: compact magnitude of %d bytes at offset %d", ErrPrecision, n, start)
		}
		buf, err := r.Read(n)
		if err != nil {
			return 0, err
		}
		var v uint64
		for i, b := range buf {
			v |= uint64(b) << (8 * i)
		}
		if buf[n-1] == 0 {
			return 0, formatErr(start, "non-minimal compact (zero high magnitude byte)")
		}
		if v < 1<<30 {
			return 0, formatErr(start, "non-minimal compact (big-integer mode)")
		}
		return v, nil
	}
}

// CompactU128 reads a compact integer of up to 16 magnitude bytes into a
// little-endian 16-byte array.
func (r *Reader) CompactU128() ([16]byte, error) {
	var out [16]byte
	start := r.offset
	b0, err := r.PeekByte()
	if err != nil {
		return out, err
	}
	if b0&0b11 != 0b11 || int(b0>>2)+4 <= 8 {
		// Narrow enough for the uint64 path and its canonical checks.
		v, err := r.Compact()
		if err != nil {
			return out, err
		}
		for i := 0; i < 8; i++ {
			out[i] = byte(v >> (8 * i))
		}
		return out, nil
	}
	r.offset++ // consume the peeked length byte
	n := int(b0>>2) + 4
	if n > 16 {
		return out, fmt.Errorf("%w: compact magnitude of %d bytes at offset %d", ErrPrecision, n, start)
	}
	buf, err := r.Read(n)
	if err != nil {
		return out, err
	}
	if buf[n-1] == 0 {
		return out, formatErr(start, "non-minimal compact (zero high magnitude byte)")
	}
	copy(out[:], buf)
	return out, nil
}

// compactByteLen returns the minimal mode-3 magnitude length for v.
func compactByteLen(v uint64) int {
	n := (bits.Len64(v) + 7) / 8
	if n < 4 {
		n = 4
	}
	return n
}
