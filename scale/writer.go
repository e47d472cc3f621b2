package scale

import "fmt"

// Fixed-width integers are written little-endian, matching the wire layout of
// every runtime structure this module produces.

// U8 writes a single byte.
func (w *Writer) U8(v uint8) {
	w.writeByte(v)
}

// U16 writes a uint16, little-endian.
func (w *Writer) U16(v uint16) {
	w.writeByte(byte(v))
	w.writeByte(byte(v >> 8))
}

// U32 writes a uint32, little-endian.
func (w *Writer) U32(v uint32) {
	w.writeByte(byte(v))
	w.writeByte(byte(v >> 8))
	w.writeByte(byte(v >> 16))
	w.writeByte(byte(v >> 24))
}

// U64 writes a uint64, little-endian.
func (w *Writer) U64(v uint64) {
	for i := 0; i < 8; i++ {
		w.writeByte(byte(v >> (8 * i)))
	}
}

// Uint writes v as a little-endian integer of the given byte width
// (1, 2, 4 or 8). It fails with ErrRange if v does not fit the width, which
// is the one place a dynamically-sized write can smuggle in an out-of-range
// value.
func (w *Writer) Uint(v uint64, width int) error {
	switch width {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: unsupported integer width %d", ErrRange, width)
	}
	if width < 8 && v >= 1<<(8*width) {
		return fmt.Errorf("%w: %d does not fit %d bytes", ErrRange, v, width)
	}
	for i := 0; i < width; i++ {
		w.writeByte(byte(v >> (8 * i)))
	}
	return nil
}

// Bool writes 0x01 for true, 0x00 for false.
func (w *Writer) Bool(v bool) {
	if v {
		w.writeByte(0x01)
		return
	}
	w.writeByte(0x00)
}

// Option writes the option discriminant: 0x00 for absent, 0x01 for present.
// When present is true the caller writes the payload immediately after.
func (w *Writer) Option(present bool) {
	w.Bool(present)
}

// RawBytes writes b with no length prefix.
func (w *Writer) RawBytes(b []byte) {
	w.write(b)
}

// SliceBytes writes a compact length prefix followed by the raw bytes.
func (w *Writer) SliceBytes(b []byte) {
	w.Compact(uint64(len(b)))
	w.write(b)
}

// Text writes a string as a compact length prefix followed by its bytes.
func (w *Writer) Text(s string) {
	w.Compact(uint64(len(s)))
	w.buf = append(w.buf, s...)
}

