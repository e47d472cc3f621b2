package extrinsic

import (
	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

// NewTransfer encodes a balance transfer call: the destination as an id-form
// MultiAddress followed by the amount as a compact u128. The allow-death and
// keep-alive transfer variants share this argument layout, so the call index
// picks the variant.
func NewTransfer(index types.CallIndex, dest types.MultiAddress, amount types.U128) types.Call {
	w := scale.NewWriter()
	dest.EncodeScale(w)
	amount.EncodeCompact(w)
	return types.NewCall(index, w.Bytes())
}
