package launcher

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wireforge/go-subwire/extrinsic"
	"github.com/wireforge/go-subwire/flags"
	"github.com/wireforge/go-subwire/types"
)

var transferCommand = cli.Command{
	Name:   "transfer",
	Usage:  "Build a balance transfer: call data, unsigned extrinsic, and with --spec-version the signing payload",
	Flags:  append(flags.TransferFlags(), flags.SigningFlags()...),
	Action: runTransfer,
}

func runTransfer(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Logging); err != nil {
		return err
	}

	if cfg.Transfer.Dest == "" {
		return errors.New("--dest is required")
	}
	if cfg.Transfer.Amount == "" {
		return errors.New("--amount is required")
	}

	destID, err := types.AccountIDFromHex(cfg.Transfer.Dest)
	if err != nil {
		return fmt.Errorf("--dest: %w", err)
	}
	amount, err := types.U128FromDecimal(cfg.Transfer.Amount)
	if err != nil {
		return fmt.Errorf("--amount: %w", err)
	}
	index, err := cfg.Chain.FallbackCallIndex("Balances", cfg.Transfer.Call)
	if err != nil {
		return err
	}

	call := extrinsic.NewTransfer(index, types.NewAddressFromAccountID(destID), amount)
	b := extrinsic.NewBuilder(call)
	b.SetNonce(cfg.Signing.Nonce)
	b.SetTip(cfg.Signing.Tip)
	b.SetEra(cfg.Signing.Era)
	if len(cfg.Signing.Extensions) > 0 {
		b.SetExtensions(cfg.Signing.Extensions)
	} else {
		b.SetExtensions(cfg.Chain.SignedExtensions)
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "chain:    %s\n", cfg.Chain.Name)
	fmt.Fprintf(w, "call:     %s  (Balances.%s at %s)\n", hexutil.Encode(b.CallData()), cfg.Transfer.Call, index)
	fmt.Fprintf(w, "unsigned: %s\n", hexutil.Encode(b.EncodeUnsigned()))

	if !cfg.Signing.HasRuntimeVersion {
		return nil
	}
	payload, err := b.SigningPayload(extrinsic.SigningContext{
		SpecVersion:        cfg.Signing.SpecVersion,
		TransactionVersion: cfg.Signing.TransactionVersion,
		GenesisHash:        cfg.Chain.GenesisHash,
		CheckpointHash:     cfg.Signing.Checkpoint,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "payload:  %s\n", hexutil.Encode(payload))
	return nil
}
