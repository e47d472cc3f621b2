package launcher

// Defaults bundles the baseline values commands start from before CLI flags
// override them.
type Defaults struct {
	Chain   ChainDefaults
	Logging LoggingDefaults
	Signing SigningDefaults
}

// ChainDefaults selects the preset loaded when --chain is not given.
type ChainDefaults struct {
	Name string
}

// LoggingDefaults controls log verbosity and format.
type LoggingDefaults struct {
	Verbosity int    // logrus level ordinal (0=panic .. 5=debug)
	Format    string // text or json
}

// SigningDefaults seeds the payload fields a command may override.
type SigningDefaults struct {
	TransferCall string // Balances call built when --call is not given
	TipDecimal   string // tip attached when --tip is not given
}

// DefaultConfig returns the baseline defaults shared by every command.
func DefaultConfig() Defaults {
	return Defaults{
		Chain: ChainDefaults{
			Name: "polkadot",
		},
		Logging: LoggingDefaults{
			Verbosity: 3,
			Format:    "text",
		},
		Signing: SigningDefaults{
			TransferCall: "transfer_keep_alive",
			TipDecimal:   "0",
		},
	}
}
