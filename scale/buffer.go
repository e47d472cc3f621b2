// Package scale implements the compact, primitive and container layers of the
// SCALE wire format used by self-describing blockchain runtimes.
//
// This package provides:
//   - A bounds-checked linear Reader over untrusted input
//   - An append-only Writer
//   - The four-mode compact integer codec, including the 128-bit path
//   - Fixed-width little-endian integers, booleans, options, byte strings
//     and sequence length handling
//
// Decoding is strict: inputs that are truncated, non-minimal or carry unknown
// discriminants fail with a typed error carrying the byte offset. Nothing is
// guessed around.
package scale

// Reader is a linear cursor over a byte slice. Unlike a trusted-input cursor
// it never panics: every access is bounds-checked and failures surface as
// ErrBounds with the offending offset, since the buffers it parses (metadata,
// extrinsics) arrive from the network.
type Reader struct {
	buf    []byte
	offset int
}

// NewReader wraps buf without copying it. The caller must not mutate buf
// while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Read consumes and returns the next n bytes. The returned slice aliases the
// underlying buffer.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, formatErr(r.offset, "negative read size")
	}
	if r.offset+n > len(r.buf) {
		return nil, boundsErr(r.offset, n, len(r.buf)-r.offset)
	}
	out := r.buf[r.offset : r.offset+n]
	r.offset += n
	return out, nil
}

// ReadByte consumes and returns the next byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.offset >= len(r.buf) {
		return 0, boundsErr(r.offset, 1, 0)
	}
	b := r.buf[r.offset]
	r.offset++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	if r.offset >= len(r.buf) {
		return 0, boundsErr(r.offset, 1, 0)
	}
	return r.buf[r.offset], nil
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.offset
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

// Empty returns true if the whole buffer was consumed.
func (r *Reader) Empty() bool {
	return r.offset >= len(r.buf)
}

// Writer accumulates encoded output. The zero value is not usable; construct
// with NewWriter.
type Writer struct {
	buf []byte
}

// NewWriter creates a ready-to-use writer with a small preallocated buffer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 128)}
}

// Bytes returns the accumulated output. The slice aliases the writer's
// buffer; further writes may invalidate it.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *Writer) write(b []byte) {
	w.buf = append(w.buf, b...)
}
