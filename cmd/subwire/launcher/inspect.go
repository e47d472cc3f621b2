package launcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wireforge/go-subwire/flags"
	"github.com/wireforge/go-subwire/metadata"
)

var inspectCommand = cli.Command{
	Name:      "inspect",
	Usage:     "Decode a runtime metadata blob and summarize its pallets and signed extensions",
	ArgsUsage: "[file]",
	Flags:     flags.MetadataFlags(),
	Action:    runInspect,
}

// metadataSummary is the JSON form of the inspect output.
type metadataSummary struct {
	Version          uint8           `json:"version"`
	ExtrinsicVersion uint8           `json:"extrinsicVersion"`
	SignedExtensions []string        `json:"signedExtensions"`
	Pallets          []palletSummary `json:"pallets"`
}

type palletSummary struct {
	Index uint8    `json:"index"`
	Name  string   `json:"name"`
	Calls []string `json:"calls,omitempty"`
}

func runInspect(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Logging); err != nil {
		return err
	}

	path := ctx.String("file")
	if path == "" && ctx.NArg() > 0 {
		path = ctx.Args().First()
	}
	if path == "" {
		return errors.New("metadata file required, positional or --file")
	}

	blob, err := readMetadataBlob(resolvePath(path))
	if err != nil {
		return err
	}
	md, err := metadata.Decode(blob)
	if err != nil {
		return err
	}
	return printSummary(ctx, md)
}

// readMetadataBlob loads a metadata image from disk, accepting either raw
// bytes or a 0x-prefixed hex dump.
func readMetadataBlob(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if bytes.HasPrefix(trimmed, []byte("0x")) {
		return hexutil.Decode(string(trimmed))
	}
	return raw, nil
}

func printSummary(ctx *cli.Context, md *metadata.Metadata) error {
	w := ctx.App.Writer

	if name := ctx.String("pallet"); name != "" {
		p, err := md.PalletByName(name)
		if err != nil {
			return err
		}
		if ctx.Bool("json") {
			return writeJSON(w, summarizePallet(p))
		}
		fmt.Fprintf(w, "pallet %s, index %d\n", p.Name, p.Index)
		for _, call := range p.Calls() {
			idx, err := p.CallIndex(call)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %3d  %s\n", idx.Call, call)
		}
		return nil
	}

	summary := metadataSummary{
		Version:          md.Version,
		ExtrinsicVersion: md.Extrinsic.Version,
		SignedExtensions: md.SignedExtensionNames(),
	}
	for _, name := range md.PalletNames() {
		p, err := md.PalletByName(name)
		if err != nil {
			return err
		}
		summary.Pallets = append(summary.Pallets, summarizePallet(p))
	}
	if ctx.Bool("json") {
		return writeJSON(w, summary)
	}

	fmt.Fprintf(w, "metadata v%d\n", summary.Version)
	fmt.Fprintf(w, "extrinsic version: %d\n", summary.ExtrinsicVersion)
	fmt.Fprintf(w, "signed extensions: %s\n", strings.Join(summary.SignedExtensions, ", "))
	fmt.Fprintf(w, "pallets (%d):\n", len(summary.Pallets))
	for _, p := range summary.Pallets {
		fmt.Fprintf(w, "  %3d  %-24s calls: %d\n", p.Index, p.Name, len(p.Calls))
	}
	return nil
}

func summarizePallet(p *metadata.Pallet) palletSummary {
	return palletSummary{Index: p.Index, Name: p.Name, Calls: p.Calls()}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
