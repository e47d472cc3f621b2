package extrinsic

import (
	"fmt"

	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

// ErrUnknownExtension reports a signed-extension identifier with no
// registered handler. An extension the registry has never heard of cannot be
// skipped: its bytes would be missing from the payload and the chain would
// reject the signature.
var ErrUnknownExtension = fmt.Errorf("signed extension %w", scale.ErrResolution)

// SigningContext carries the facts the signed extensions encode.
//
// SpecVersion through CheckpointHash are supplied by the caller, usually
// fetched over RPC. The remaining fields belong to the draft: the Builder
// fills them in from its setters before any handler runs, so handlers read
// everything from one place.
type SigningContext struct {
	SpecVersion        uint32
	TransactionVersion uint32
	GenesisHash        types.Hash
	// CheckpointHash is the hash of the block a mortal era is anchored to.
	// Ignored for immortal transactions.
	CheckpointHash types.Hash

	Nonce uint64
	Tip   types.U128
	Era   types.Era
	// AssetID holds the pre-encoded asset id for ChargeAssetTxPayment
	// runtimes. Nil selects the native asset.
	AssetID []byte
	// MetadataHash enables the CheckMetadataHash digest when set. Must be
	// 32 bytes when non-nil.
	MetadataHash []byte
}

// HandlerFunc appends one extension's contribution to a payload segment.
type HandlerFunc func(w *scale.Writer, ctx *SigningContext) error

// Handler encodes one signed extension. Extra feeds the segment shipped
// inside the extrinsic; Additional feeds the segment that is only signed
// over. A nil func contributes nothing, which is how extensions like
// CheckWeight sit in the tuple without touching the wire.
type Handler struct {
	Extra      HandlerFunc
	Additional HandlerFunc
}

// ExtensionRegistry maps signed-extension identifiers, as runtime metadata
// spells them, to their encoders.
type ExtensionRegistry struct {
	handlers map[string]Handler
}

// Register adds or replaces the handler for an identifier.
func (reg *ExtensionRegistry) Register(identifier string, h Handler) {
	reg.handlers[identifier] = h
}

// segments runs the handlers for names in order and returns the
// concatenated extra and additional segments.
func (reg *ExtensionRegistry) segments(names []string, ctx *SigningContext) (extra, additional []byte, err error) {
	ew := scale.NewWriter()
	aw := scale.NewWriter()
	for _, name := range names {
		h, ok := reg.handlers[name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
		}
		if h.Extra != nil {
			if err := h.Extra(ew, ctx); err != nil {
				return nil, nil, fmt.Errorf("extension %s: %w", name, err)
			}
		}
		if h.Additional != nil {
			if err := h.Additional(aw, ctx); err != nil {
				return nil, nil, fmt.Errorf("extension %s: %w", name, err)
			}
		}
	}
	return ew.Bytes(), aw.Bytes(), nil
}

// DefaultExtensions returns the signed-extension tuple of the reference
// runtimes, in signing order. Drafts without an explicit list use it.
func DefaultExtensions() []string {
	return []string{
		"CheckNonZeroSender",
		"CheckSpecVersion",
		"CheckTxVersion",
		"CheckGenesis",
		"CheckMortality",
		"CheckNonce",
		"CheckWeight",
		"ChargeTransactionPayment",
	}
}

// NewRegistry returns a registry covering the extensions the reference
// runtimes deploy. CheckNonZeroSender and CheckWeight are registered as
// explicit no-ops: they validate on-chain state only and never contribute
// bytes, which is not the same as being unknown.
func NewRegistry() *ExtensionRegistry {
	reg := &ExtensionRegistry{handlers: make(map[string]Handler)}

	reg.Register("CheckNonZeroSender", Handler{})
	reg.Register("CheckWeight", Handler{})

	reg.Register("CheckSpecVersion", Handler{
		Additional: func(w *scale.Writer, ctx *SigningContext) error {
			w.U32(ctx.SpecVersion)
			return nil
		},
	})
	reg.Register("CheckTxVersion", Handler{
		Additional: func(w *scale.Writer, ctx *SigningContext) error {
			w.U32(ctx.TransactionVersion)
			return nil
		},
	})
	reg.Register("CheckGenesis", Handler{
		Additional: func(w *scale.Writer, ctx *SigningContext) error {
			w.RawBytes(ctx.GenesisHash[:])
			return nil
		},
	})
	reg.Register("CheckMortality", Handler{
		Extra: func(w *scale.Writer, ctx *SigningContext) error {
			return ctx.Era.EncodeScale(w)
		},
		Additional: func(w *scale.Writer, ctx *SigningContext) error {
			// A mortal era signs over its checkpoint block, an immortal
			// one over genesis.
			if ctx.Era.IsMortal {
				w.RawBytes(ctx.CheckpointHash[:])
			} else {
				w.RawBytes(ctx.GenesisHash[:])
			}
			return nil
		},
	})
	reg.Register("CheckNonce", Handler{
		Extra: func(w *scale.Writer, ctx *SigningContext) error {
			w.Compact(ctx.Nonce)
			return nil
		},
	})
	reg.Register("ChargeTransactionPayment", Handler{
		Extra: func(w *scale.Writer, ctx *SigningContext) error {
			ctx.Tip.EncodeCompact(w)
			return nil
		},
	})
	reg.Register("ChargeAssetTxPayment", Handler{
		Extra: func(w *scale.Writer, ctx *SigningContext) error {
			ctx.Tip.EncodeCompact(w)
			w.Option(len(ctx.AssetID) > 0)
			if len(ctx.AssetID) > 0 {
				w.RawBytes(ctx.AssetID)
			}
			return nil
		},
	})
	reg.Register("CheckMetadataHash", Handler{
		Extra: func(w *scale.Writer, ctx *SigningContext) error {
			mode := uint8(0x00)
			if len(ctx.MetadataHash) > 0 {
				mode = 0x01
			}
			w.U8(mode)
			return nil
		},
		Additional: func(w *scale.Writer, ctx *SigningContext) error {
			if len(ctx.MetadataHash) == 0 {
				w.Option(false)
				return nil
			}
			if len(ctx.MetadataHash) != 32 {
				return fmt.Errorf("%w: metadata hash needs 32 bytes, got %d", scale.ErrRange, len(ctx.MetadataHash))
			}
			w.Option(true)
			w.RawBytes(ctx.MetadataHash)
			return nil
		},
	})

	return reg
}
