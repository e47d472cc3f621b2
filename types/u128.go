package types

import (
	"fmt"

	"github.com/wireforge/go-subwire/scale"
)

// U128 is an unsigned 128-bit balance held as 16 little-endian bytes.
//
// On-chain balances routinely exceed 2^64, so conversion to and from decimal
// strings is done digit by digit over the byte buffer, never through native
// integers or floats wider than a byte. Arithmetic fails on overflow and
// underflow instead of wrapping.
type U128 [16]byte

// U128FromUint64 widens v to a balance.
func U128FromUint64(v uint64) U128 {
	var out U128
	for i := 0; i < 8; i++ {
		out[i] = byte(v >> (8 * i))
	}
	return out
}

// U128FromDecimal parses a base-10 string of any magnitude up to 2^128-1.
// Each digit multiplies the accumulator by ten and adds itself, with carry
// propagated across all 16 bytes.
func U128FromDecimal(s string) (U128, error) {
	var out U128
	if len(s) == 0 {
		return out, fmt.Errorf("%w: empty decimal string", scale.ErrFormat)
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return U128{}, fmt.Errorf("%w: invalid decimal digit %q", scale.ErrFormat, c)
		}
		carry := uint(c - '0')
		for i := 0; i < 16; i++ {
			x := uint(out[i])*10 + carry
			out[i] = byte(x)
			carry = x >> 8
		}
		if carry != 0 {
			return U128{}, fmt.Errorf("%w: decimal %q exceeds 128 bits", scale.ErrArithmetic, s)
		}
	}
	return out, nil
}

// U128FromBytes builds a balance from exactly 16 little-endian bytes.
func U128FromBytes(b []byte) (U128, error) {
	var out U128
	if len(b) != 16 {
		return out, fmt.Errorf("%w: balance needs 16 bytes, got %d", scale.ErrRange, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// String renders the balance as a decimal string by repeated division by ten,
// most significant byte first, collecting remainders.
func (v U128) String() string {
	if v.IsZero() {
		return "0"
	}
	cur := v
	digits := make([]byte, 0, 39)
	for !cur.IsZero() {
		var rem uint
		for i := 15; i >= 0; i-- {
			x := rem<<8 | uint(cur[i])
			cur[i] = byte(x / 10)
			rem = x % 10
		}
		digits = append(digits, byte('0'+rem))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// Bytes returns a copy of the 16 little-endian bytes.
func (v U128) Bytes() []byte {
	out := make([]byte, 16)
	copy(out, v[:])
	return out
}

// IsZero returns true for the zero balance.
func (v U128) IsZero() bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}
	return true
}

// Add returns v+o, failing with ErrArithmetic if the sum exceeds 128 bits.
func (v U128) Add(o U128) (U128, error) {
	var out U128
	carry := uint(0)
	for i := 0; i < 16; i++ {
		x := uint(v[i]) + uint(o[i]) + carry
		out[i] = byte(x)
		carry = x >> 8
	}
	if carry != 0 {
		return U128{}, fmt.Errorf("%w: balance addition overflow", scale.ErrArithmetic)
	}
	return out, nil
}

// Sub returns v-o, failing with ErrArithmetic if o exceeds v.
func (v U128) Sub(o U128) (U128, error) {
	var out U128
	borrow := uint(0)
	for i := 0; i < 16; i++ {
		x := int(v[i]) - int(o[i]) - int(borrow)
		if x < 0 {
			x += 256
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(x)
	}
	if borrow != 0 {
		return U128{}, fmt.Errorf("%w: balance subtraction underflow", scale.ErrArithmetic)
	}
	return out, nil
}

// Cmp compares most significant byte first: -1 if v<o, 0 if equal, 1 if v>o.
func (v U128) Cmp(o U128) int {
	for i := 15; i >= 0; i-- {
		switch {
		case v[i] < o[i]:
			return -1
		case v[i] > o[i]:
			return 1
		}
	}
	return 0
}

// EncodeScale writes the fixed-width 16-byte little-endian form.
func (v U128) EncodeScale(w *scale.Writer) {
	w.RawBytes(v[:])
}

// DecodeScale reads the fixed-width form.
func (v *U128) DecodeScale(r *scale.Reader) error {
	buf, err := r.Read(16)
	if err != nil {
		return err
	}
	copy(v[:], buf)
	return nil
}

// EncodeCompact writes the balance in compact form, as tips and transfer
// amounts appear on the wire.
func (v U128) EncodeCompact(w *scale.Writer) {
	w.CompactU128(v)
}

// DecodeCompactU128 reads a compact-form balance.
func DecodeCompactU128(r *scale.Reader) (U128, error) {
	raw, err := r.CompactU128()
	if err != nil {
		return U128{}, err
	}
	return U128(raw), nil
}

// MarshalText renders the decimal string, so JSON carries balances without
// precision loss.
func (v U128) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a decimal string.
func (v *U128) UnmarshalText(text []byte) error {
	parsed, err := U128FromDecimal(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
