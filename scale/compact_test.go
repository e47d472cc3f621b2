package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactRoundTrip(t *testing.T) {
	for _, v := range []uint64{
		0, 1, 5, 42, 63,
		64, 69, 255, 16383,
		16384, 65535, 1<<24 - 1, 1<<30 - 1,
		1 << 30, 1<<32 - 1, 1 << 32, 1 << 40, 1<<53 - 1,
		1<<64 - 1,
	} {
		w := NewWriter()
		w.Compact(v)

		r := NewReader(w.Bytes())
		got, err := r.Compact()
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, got, "value %d", v)
		assert.True(t, r.Empty(), "value %d left %d bytes", v, r.Remaining())
		assert.Equal(t, len(w.Bytes()), r.Position(), "value %d", v)
	}
}

func TestCompactCanonicalSizes(t *testing.T) {
	sizes := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{63, 1},
		{64, 2},
		{16383, 2},
		{16384, 4},
		{1<<30 - 1, 4},
		{1 << 30, 5},
		{1 << 32, 6},
		{1 << 40, 7},
		{1<<64 - 1, 9},
	}
	for _, tc := range sizes {
		w := NewWriter()
		w.Compact(tc.v)
		assert.Equal(t, tc.want, len(w.Bytes()), "value %d", tc.v)
	}
}

func TestCompactKnownVectors(t *testing.T) {
	vectors := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x04}},
		{42, []byte{0xa8}},
		{63, []byte{0xfc}},
		{64, []byte{0x01, 0x01}},
		{69, []byte{0x15, 0x01}},
		{16383, []byte{0xfd, 0xff}},
		{16384, []byte{0x02, 0x00, 0x01, 0x00}},
		{1<<30 - 1, []byte{0xfe, 0xff, 0xff, 0xff}},
		{1 << 30, []byte{0x03, 0x00, 0x00, 0x00, 0x40}},
		{1 << 32, []byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x01}},
	}
	for _, tc := range vectors {
		w := NewWriter()
		w.Compact(tc.v)
		assert.Equal(t, tc.want, w.Bytes(), "value %d", tc.v)

		r := NewReader(tc.want)
		got, err := r.Compact()
		require.NoError(t, err, "value %d", tc.v)
		assert.Equal(t, tc.v, got)
	}
}

func TestCompactDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, ErrBounds},
		{"truncated two-byte", []byte{0x01}, ErrBounds},
		{"truncated four-byte", []byte{0x02, 0x00}, ErrBounds},
		{"truncated big-integer", []byte{0x03, 0x00, 0x00}, ErrBounds},
		{"non-minimal two-byte", []byte{0x01, 0x00}, ErrFormat},
		{"non-minimal four-byte", []byte{0x02, 0x00, 0x00, 0x00}, ErrFormat},
		{"non-minimal big-integer value", []byte{0x03, 0xff, 0xff, 0xff, 0x3f}, ErrFormat},
		{"zero high magnitude byte", []byte{0x07, 0x01, 0x00, 0x00, 0x00, 0x00}, ErrFormat},
		{"magnitude wider than u64", []byte{0x17, 1, 2, 3, 4, 5, 6, 7, 8, 9}, ErrPrecision},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(tc.in)
			_, err := r.Compact()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func u128FromWords(lo, hi uint64) [16]byte {
	var out [16]byte
	for i := 0; i < 8; i++ {
		out[i] = byte(lo >> (8 * i))
		out[8+i] = byte(hi >> (8 * i))
	}
	return out
}

func TestCompactU128RoundTrip(t *testing.T) {
	cases := [][16]byte{
		u128FromWords(0, 0),
		u128FromWords(63, 0),
		u128FromWords(16384, 0),
		u128FromWords(1<<30, 0),
		u128FromWords(1<<64-1, 0),
		// 2^64, 2^128 - 1 and 10^18 exercise the wide path.
		u128FromWords(0, 1),
		u128FromWords(1<<64-1, 1<<64-1),
		u128FromWords(0x0de0b6b3a7640000, 0),
	}
	for _, v := range cases {
		w := NewWriter()
		w.CompactU128(v)

		r := NewReader(w.Bytes())
		got, err := r.CompactU128()
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.True(t, r.Empty())
	}
}

func TestCompactU128MatchesCompactForSmallValues(t *testing.T) {
	for _, v := range []uint64{0, 63, 64, 16384, 1 << 30, 1<<64 - 1} {
		w1 := NewWriter()
		w1.Compact(v)
		w2 := NewWriter()
		w2.CompactU128(u128FromWords(v, 0))
		assert.Equal(t, w1.Bytes(), w2.Bytes(), "value %d", v)
	}
}

func TestCompactU128KnownVectors(t *testing.T) {
	// 2^64 takes nine magnitude bytes.
	w := NewWriter()
	w.CompactU128(u128FromWords(0, 1))
	assert.Equal(t, []byte{0x17, 0, 0, 0, 0, 0, 0, 0, 0, 1}, w.Bytes())

	// 2^128 - 1 takes the full sixteen.
	w = NewWriter()
	w.CompactU128(u128FromWords(1<<64-1, 1<<64-1))
	want := []byte{0x33}
	for i := 0; i < 16; i++ {
		want = append(want, 0xff)
	}
	assert.Equal(t, want, w.Bytes())
}

func TestCompactU128DecodeErrors(t *testing.T) {
	// 17 magnitude bytes exceed the 128-bit domain.
	in := []byte{0x37}
	for i := 0; i < 17; i++ {
		in = append(in, 0x01)
	}
	r := NewReader(in)
	_, err := r.CompactU128()
	assert.ErrorIs(t, err, ErrPrecision)

	// Zero high magnitude byte is non-minimal in the wide path too.
	r = NewReader([]byte{0x17, 1, 2, 3, 4, 5, 6, 7, 8, 0})
	_, err = r.CompactU128()
	assert.ErrorIs(t, err, ErrFormat)
}
