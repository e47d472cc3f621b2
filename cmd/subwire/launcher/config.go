package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wireforge/go-subwire/chain"
	"github.com/wireforge/go-subwire/types"
)

// Config aggregates everything a subwire command needs: resolved chain
// rules, logging setup, and the draft payload fields taken from flags.
type Config struct {
	Chain    chain.Rules
	Logging  LoggingConfig
	Signing  SigningConfig
	Transfer TransferConfig
}

type LoggingConfig struct {
	Verbosity int
	Format    string
	SentryDSN string
}

// SigningConfig mirrors the flags in flags.SigningFlags. HasRuntimeVersion
// records whether the caller pinned spec-version or tx-version at all, since
// zero is a legal value for both.
type SigningConfig struct {
	Nonce              uint64
	Tip                types.U128
	Era                types.Era
	SpecVersion        uint32
	TransactionVersion uint32
	HasRuntimeVersion  bool
	Checkpoint         types.Hash
	Extensions         []string
}

type TransferConfig struct {
	Call   string
	Dest   string
	Amount string
}

// MakeAllConfigs merges defaults and CLI flag overrides into a single
// config struct.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg, err := defaultConfig()
	if err != nil {
		return Config{}, err
	}
	if err := applyCLIOverrides(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultConfig() (Config, error) {
	d := DefaultConfig()
	rules, err := chain.GetRulesByName(d.Chain.Name)
	if err != nil {
		return Config{}, err
	}
	tip, err := types.U128FromDecimal(d.Signing.TipDecimal)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Chain: rules,
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
		},
		Signing: SigningConfig{
			Tip: tip,
			Era: types.ImmortalEra(),
		},
		Transfer: TransferConfig{
			Call: d.Signing.TransferCall,
		},
	}, nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) error {
	if ctx.GlobalIsSet("chain") {
		rules, err := chain.GetRulesByName(ctx.GlobalString("chain"))
		if err != nil {
			return err
		}
		cfg.Chain = rules
	}

	if ctx.GlobalIsSet("log.format") {
		cfg.Logging.Format = ctx.GlobalString("log.format")
	}
	if ctx.GlobalIsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.GlobalInt("log.verbosity")
	}
	if ctx.GlobalIsSet("log.sentry") {
		cfg.Logging.SentryDSN = ctx.GlobalString("log.sentry")
	}

	if ctx.IsSet("nonce") {
		cfg.Signing.Nonce = ctx.Uint64("nonce")
	}
	if ctx.IsSet("tip") {
		tip, err := types.U128FromDecimal(ctx.String("tip"))
		if err != nil {
			return fmt.Errorf("--tip: %w", err)
		}
		cfg.Signing.Tip = tip
	}
	if period := ctx.Uint64("era.period"); period > 0 {
		cfg.Signing.Era = types.NewMortalEra(period, ctx.Uint64("era.block"))
	}
	if ctx.IsSet("spec-version") || ctx.IsSet("tx-version") {
		cfg.Signing.SpecVersion = uint32(ctx.Uint64("spec-version"))
		cfg.Signing.TransactionVersion = uint32(ctx.Uint64("tx-version"))
		cfg.Signing.HasRuntimeVersion = true
	}
	if ctx.IsSet("checkpoint") {
		h, err := types.HashFromHex(ctx.String("checkpoint"))
		if err != nil {
			return fmt.Errorf("--checkpoint: %w", err)
		}
		cfg.Signing.Checkpoint = h
	}
	if raw := ctx.StringSlice("extension"); len(raw) > 0 {
		var names []string
		for _, entry := range raw {
			names = append(names, splitCSV(entry)...)
		}
		cfg.Signing.Extensions = names
	}

	if ctx.IsSet("call") {
		cfg.Transfer.Call = ctx.String("call")
	}
	if ctx.IsSet("dest") {
		cfg.Transfer.Dest = ctx.String("dest")
	}
	if ctx.IsSet("amount") {
		cfg.Transfer.Amount = ctx.String("amount")
	}
	return nil
}

// setupLogging configures the process-wide logrus logger from the merged
// config, attaching a Sentry hook when a DSN is given.
func setupLogging(cfg LoggingConfig) error {
	if cfg.Verbosity < 0 || cfg.Verbosity > int(logrus.DebugLevel) {
		return fmt.Errorf("log.verbosity %d out of range [0, %d]", cfg.Verbosity, int(logrus.DebugLevel))
	}
	logrus.SetLevel(logrus.Level(cfg.Verbosity))

	switch cfg.Format {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q, want text or json", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("sentry hook: %w", err)
		}
		logrus.AddHook(hook)
	}
	return nil
}

// resolvePath expands a leading ~ to the user's home directory.
func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
