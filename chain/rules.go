// Package chain carries the static per-network facts: genesis hash, the
// signed-extension tuple the network's runtime deploys, and a fallback
// call-index table for building transactions without runtime metadata.
//
// Presets exist for the public networks. Custom networks fill in a Rules
// value directly.
package chain

import (
	"encoding/json"
	"fmt"

	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

// Rules describes one network.
type Rules struct {
	// Name identifies the network in errors and logs.
	Name string

	// GenesisHash anchors signatures to one chain. No two networks share it.
	GenesisHash types.Hash

	// SignedExtensions is the network's extension tuple, in signing order.
	SignedExtensions []string

	// Calls maps pallet name to call name to static call index. It backs
	// call resolution when metadata is unavailable; indexes move across
	// runtime upgrades, so metadata wins whenever both are at hand.
	Calls map[string]map[string]types.CallIndex

	// BalancesPallet is the index of the balances pallet.
	BalancesPallet uint8
}

// FallbackCallIndex resolves a call from the static table.
func (r Rules) FallbackCallIndex(pallet, call string) (types.CallIndex, error) {
	calls, ok := r.Calls[pallet]
	if !ok {
		return types.CallIndex{}, fmt.Errorf("%w: pallet %s has no static call table on %s", scale.ErrResolution, pallet, r.Name)
	}
	index, ok := calls[call]
	if !ok {
		return types.CallIndex{}, fmt.Errorf("%w: call %s.%s has no static index on %s", scale.ErrResolution, pallet, call, r.Name)
	}
	return index, nil
}

// Copy returns a deep copy. Rules carry maps and a slice, so a shallow copy
// would share the call table with the original.
func (r Rules) Copy() Rules {
	cp := r
	cp.SignedExtensions = append([]string(nil), r.SignedExtensions...)
	cp.Calls = make(map[string]map[string]types.CallIndex, len(r.Calls))
	for pallet, calls := range r.Calls {
		inner := make(map[string]types.CallIndex, len(calls))
		for name, index := range calls {
			inner[name] = index
		}
		cp.Calls[pallet] = inner
	}
	return cp
}

// String returns the rules as JSON for logging.
func (r Rules) String() string {
	b, _ := json.Marshal(&r)
	return string(b)
}
