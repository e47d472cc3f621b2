package types

import (
	"fmt"

	"github.com/wireforge/go-subwire/scale"
)

// CallIndex is the two-byte prefix identifying a callable operation: the
// pallet's index within the runtime and the call's index within the pallet.
type CallIndex struct {
	Pallet uint8
	Call   uint8
}

// String renders the pair for diagnostics.
func (ci CallIndex) String() string {
	return fmt.Sprintf("%d.%d", ci.Pallet, ci.Call)
}

// Call is a fully encoded callable operation: the two-byte call index
// followed by the already-encoded argument bytes.
type Call struct {
	Index CallIndex
	Args  []byte
}

// NewCall pairs a call index with pre-encoded argument bytes.
func NewCall(index CallIndex, args []byte) Call {
	cp := make([]byte, len(args))
	copy(cp, args)
	return Call{Index: index, Args: cp}
}

// EncodeScale writes pallet index, call index, then the raw argument bytes.
func (c Call) EncodeScale(w *scale.Writer) {
	w.U8(c.Index.Pallet)
	w.U8(c.Index.Call)
	w.RawBytes(c.Args)
}

// Bytes returns the full encoded call.
func (c Call) Bytes() []byte {
	out := make([]byte, 0, 2+len(c.Args))
	out = append(out, c.Index.Pallet, c.Index.Call)
	return append(out, c.Args...)
}
