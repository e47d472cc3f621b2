package scale

import "fmt"

// U8 reads a single byte.
func (r *Reader) U8() (uint8, error) {
	return r.ReadByte()
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	buf, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	buf, err := r.Read(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	buf, err := r.Read(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

// Uint reads a little-endian integer of the given byte width (1, 2, 4 or 8).
func (r *Reader) Uint(width int) (uint64, error) {
	switch width {
	case 1, 2, 4, 8:
	default:
		return 0, fmt.Errorf("%w: unsupported integer width %d", ErrRange, width)
	}
	buf, err := r.Read(width)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * i)
	}
	return v, nil
}

// Bool reads a boolean. Only 0x00 and 0x01 are valid.
func (r *Reader) Bool() (bool, error) {
	off := r.offset
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, formatErr(off, fmt.Sprintf("invalid bool byte 0x%02x", b))
	}
}

// Option reads the option discriminant byte. When it returns true the caller
// decodes the payload immediately after.
func (r *Reader) Option() (bool, error) {
	off := r.offset
	present, err := r.Bool()
	if err != nil {
		return false, formatErr(off, "invalid option discriminant")
	}
	return present, nil
}

// Raw reads exactly n bytes with no length prefix. The result aliases the
// underlying buffer.
func (r *Reader) Raw(n int) ([]byte, error) {
	return r.Read(n)
}

// SliceBytes reads a compact length prefix and then that many bytes, returning
// a copy. The declared length is validated against the remaining input before
// any allocation.
func (r *Reader) SliceBytes() ([]byte, error) {
	off := r.offset
	size, err := r.Compact()
	if err != nil {
		return nil, err
	}
	if size > MaxAlloc {
		return nil, fmt.Errorf("%w: declared byte length %d at offset %d", ErrBounds, size, off)
	}
	if size > uint64(r.Remaining()) {
		return nil, boundsErr(r.offset, int(size), r.Remaining())
	}
	raw, err := r.Read(int(size))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Text reads a compact length prefix and then that many bytes as a string.
func (r *Reader) Text() (string, error) {
	raw, err := r.SliceBytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Count reads a sequence item count. Since every item occupies at least one
// byte, a count larger than the remaining input is rejected before the caller
// allocates for it.
func (r *Reader) Count() (int, error) {
	off := r.offset
	n, err := r.Compact()
	if err != nil {
		return 0, err
	}
	if n > uint64(r.Remaining()) {
		return 0, fmt.Errorf("%w: declared count %d at offset %d, %d bytes remaining", ErrBounds, n, off, r.Remaining())
	}
	return int(n), nil
}

