package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newReaderFromWriter is the round-trip helper used across the codec tests.
func newReaderFromWriter(w *Writer) *Reader {
	return NewReader(w.Bytes())
}

func TestFixedWidthKnownVectors(t *testing.T) {
	w := NewWriter()
	w.U8(0xab)
	w.U16(0x1234)
	w.U32(0xdeadbeef)
	w.U64(0x0102030405060708)

	want := []byte{
		0xab,
		0x34, 0x12,
		0xef, 0xbe, 0xad, 0xde,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	require.Equal(t, want, w.Bytes())

	r := newReaderFromWriter(w)
	v8, err := r.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xab), v8)
	v16, err := r.U16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)
	v32, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v32)
	v64, err := r.U64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), v64)
	assert.True(t, r.Empty())
}

func TestFixedWidthTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.U32()
	assert.ErrorIs(t, err, ErrBounds)

	// The failed read must not consume anything.
	assert.Equal(t, 0, r.Position())
}

func TestUintWidths(t *testing.T) {
	cases := []struct {
		v     uint64
		width int
		ok    bool
	}{
		{255, 1, true},
		{256, 1, false},
		{65535, 2, true},
		{65536, 2, false},
		{1<<32 - 1, 4, true},
		{1 << 32, 4, false},
		{1<<64 - 1, 8, true},
		{5, 3, false},
	}
	for _, tc := range cases {
		w := NewWriter()
		err := w.Uint(tc.v, tc.width)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrRange, "value %d width %d", tc.v, tc.width)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.width, len(w.Bytes()))

		r := newReaderFromWriter(w)
		got, err := r.Uint(tc.width)
		require.NoError(t, err)
		assert.Equal(t, tc.v, got)
	}
}

func TestBool(t *testing.T) {
	w := NewWriter()
	w.Bool(true)
	w.Bool(false)
	require.Equal(t, []byte{0x01, 0x00}, w.Bytes())

	r := newReaderFromWriter(w)
	v, err := r.Bool()
	require.NoError(t, err)
	assert.True(t, v)
	v, err = r.Bool()
	require.NoError(t, err)
	assert.False(t, v)

	r = NewReader([]byte{0x02})
	_, err = r.Bool()
	assert.ErrorIs(t, err, ErrFormat)
}

func TestOption(t *testing.T) {
	w := NewWriter()
	w.Option(false)
	w.Option(true)
	w.U32(7)

	r := newReaderFromWriter(w)
	present, err := r.Option()
	require.NoError(t, err)
	assert.False(t, present)
	present, err = r.Option()
	require.NoError(t, err)
	assert.True(t, present)
	v, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), v)

	r = NewReader([]byte{0x05})
	_, err = r.Option()
	assert.ErrorIs(t, err, ErrFormat)
}

func TestSliceBytesAndText(t *testing.T) {
	w := NewWriter()
	w.SliceBytes([]byte{0xde, 0xad})
	w.Text("Balances")
	w.SliceBytes(nil)

	r := newReaderFromWriter(w)
	b, err := r.SliceBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, b)
	s, err := r.Text()
	require.NoError(t, err)
	assert.Equal(t, "Balances", s)
	b, err = r.SliceBytes()
	require.NoError(t, err)
	assert.Len(t, b, 0)
	assert.True(t, r.Empty())
}

func TestSliceBytesDeclaredLengthBeyondBuffer(t *testing.T) {
	// Declares 32 bytes, provides 2.
	w := NewWriter()
	w.Compact(32)
	w.RawBytes([]byte{0x01, 0x02})

	r := newReaderFromWriter(w)
	_, err := r.SliceBytes()
	assert.ErrorIs(t, err, ErrBounds)
}

func TestSliceBytesDeclaredLengthBeyondMaxAlloc(t *testing.T) {
	w := NewWriter()
	w.Compact(MaxAlloc + 1)

	r := newReaderFromWriter(w)
	_, err := r.SliceBytes()
	assert.ErrorIs(t, err, ErrBounds)
}

func TestCountBeyondRemaining(t *testing.T) {
	w := NewWriter()
	w.Compact(1000)
	w.RawBytes(make([]byte, 10))

	r := newReaderFromWriter(w)
	_, err := r.Count()
	assert.ErrorIs(t, err, ErrBounds)
}

func TestReaderPosition(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	assert.Equal(t, 0, r.Position())
	assert.Equal(t, 4, r.Remaining())

	_, err := r.Read(3)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Position())
	assert.Equal(t, 1, r.Remaining())
	assert.False(t, r.Empty())

	_, err = r.ReadByte()
	require.NoError(t, err)
	assert.True(t, r.Empty())

	_, err = r.ReadByte()
	assert.ErrorIs(t, err, ErrBounds)
}

func TestBoundsErrorCarriesOffset(t *testing.T) {
	r := NewReader(make([]byte, 10))
	_, err := r.Read(10)
	require.NoError(t, err)
	_, err = r.Read(4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 10")
}
