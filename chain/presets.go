package chain

import (
	"fmt"

	"github.com/wireforge/go-subwire/extrinsic"
	"github.com/wireforge/go-subwire/types"
)

// Genesis hashes (block zero) of the public networks.
const (
	PolkadotGenesisHex = "0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3"
	KusamaGenesisHex   = "0xb0a8d493285c2df73290dfb7e61f870f17b41801197a149ca93654499ea3dafe"
	WestendGenesisHex  = "0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e"
)

// balancesCalls is the transfer call table shared by the public runtimes.
// Only the pallet index differs between networks.
func balancesCalls(pallet uint8) map[string]map[string]types.CallIndex {
	return map[string]map[string]types.CallIndex{
		"Balances": {
			"transfer_allow_death": {Pallet: pallet, Call: 0},
			"force_transfer":       {Pallet: pallet, Call: 2},
			"transfer_keep_alive":  {Pallet: pallet, Call: 3},
			"transfer_all":         {Pallet: pallet, Call: 4},
		},
	}
}

// publicExtensions is the tuple the public runtimes deploy: the reference
// eight plus the metadata-hash check.
func publicExtensions() []string {
	return append(extrinsic.DefaultExtensions(), "CheckMetadataHash")
}

// PolkadotRules returns the static facts of the Polkadot relay chain.
func PolkadotRules() Rules {
	return Rules{
		Name:             "polkadot",
		GenesisHash:      types.MustHashFromHex(PolkadotGenesisHex),
		SignedExtensions: publicExtensions(),
		Calls:            balancesCalls(5),
		BalancesPallet:   5,
	}
}

// KusamaRules returns the static facts of the Kusama relay chain.
func KusamaRules() Rules {
	return Rules{
		Name:             "kusama",
		GenesisHash:      types.MustHashFromHex(KusamaGenesisHex),
		SignedExtensions: publicExtensions(),
		Calls:            balancesCalls(4),
		BalancesPallet:   4,
	}
}

// WestendRules returns the static facts of the Westend test network.
func WestendRules() Rules {
	return Rules{
		Name:             "westend",
		GenesisHash:      types.MustHashFromHex(WestendGenesisHex),
		SignedExtensions: publicExtensions(),
		Calls:            balancesCalls(4),
		BalancesPallet:   4,
	}
}

// GetRulesByName looks up a preset by its network name. It enables flags
// like --chain=westend to select a network dynamically.
func GetRulesByName(name string) (Rules, error) {
	switch name {
	case "polkadot":
		return PolkadotRules(), nil
	case "kusama":
		return KusamaRules(), nil
	case "westend":
		return WestendRules(), nil
	default:
		return Rules{}, fmt.Errorf("unknown chain: %q (valid: polkadot, kusama, westend)", name)
	}
}
