// Package extrinsic assembles version-4 extrinsics: unsigned call wrappers
// and signed transactions carrying a configurable signed-extension tuple.
//
// A Builder is a mutable draft around one call. Chain-level facts (runtime
// versions, genesis and checkpoint hashes) arrive in a SigningContext at
// signing time, so the same draft can be signed against different chains or
// sessions without rebuilding it.
package extrinsic

import (
	"errors"
	"fmt"

	"github.com/wireforge/go-subwire/crypto"
	"github.com/wireforge/go-subwire/metadata"
	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

// Version is the extrinsic format version this package produces.
const Version = 4

// signedFlag marks the version byte of a signed extrinsic.
const signedFlag = 0x80

// ErrIncompleteContext reports a SigningContext missing a fact the selected
// extensions need.
var ErrIncompleteContext = errors.New("incomplete signing context")

// Builder accumulates one extrinsic draft.
type Builder struct {
	call       types.Call
	nonce      uint64
	tip        types.U128
	era        types.Era
	assetID    []byte
	metaHash   []byte
	extensions []string
	registry   *ExtensionRegistry
	hasher     crypto.Hasher
}

// NewBuilder starts a draft for call. The draft defaults to nonce 0, no tip,
// an immortal era, the default extension tuple and blake2b-256 payload
// hashing.
func NewBuilder(call types.Call) *Builder {
	return &Builder{
		call:     call,
		era:      types.ImmortalEra(),
		registry: NewRegistry(),
		hasher:   crypto.Blake2b256,
	}
}

// SetNonce sets the sender's transaction count.
func (b *Builder) SetNonce(nonce uint64) {
	b.nonce = nonce
}

// SetTip sets the optional priority tip.
func (b *Builder) SetTip(tip types.U128) {
	b.tip = tip
}

// SetEra bounds the draft's validity.
func (b *Builder) SetEra(era types.Era) {
	b.era = era
}

// SetAssetID supplies the pre-encoded asset id for ChargeAssetTxPayment
// runtimes. Nil selects the native asset.
func (b *Builder) SetAssetID(assetID []byte) {
	b.assetID = assetID
}

// SetMetadataHash supplies the 32-byte digest for CheckMetadataHash
// runtimes.
func (b *Builder) SetMetadataHash(digest []byte) {
	b.metaHash = digest
}

// SetExtensions overrides the signed-extension identifier list, in signing
// order.
func (b *Builder) SetExtensions(names []string) {
	b.extensions = names
}

// UseMetadata adopts the extension tuple the runtime metadata declares.
func (b *Builder) UseMetadata(md *metadata.Metadata) {
	b.extensions = md.SignedExtensionNames()
}

// SetRegistry overrides the handler registry, usually to add handlers for
// chain-specific extensions.
func (b *Builder) SetRegistry(reg *ExtensionRegistry) {
	b.registry = reg
}

// SetHasher overrides the oversized-payload hasher.
func (b *Builder) SetHasher(h crypto.Hasher) {
	b.hasher = h
}

// CallData returns the encoded call alone: index bytes plus arguments. This
// is the form dry-run RPCs take.
func (b *Builder) CallData() []byte {
	return b.call.Bytes()
}

// EncodeUnsigned wraps the call as an unsigned extrinsic: a compact length
// prefix, the bare version byte, then the call.
func (b *Builder) EncodeUnsigned() []byte {
	body := make([]byte, 0, 1+2+len(b.call.Args))
	body = append(body, Version)
	body = append(body, b.call.Bytes()...)

	w := scale.NewWriter()
	w.SliceBytes(body)
	return w.Bytes()
}

// SigningPayload returns the exact bytes a signer must sign for this draft:
// call ++ extra ++ additional, or its 32-byte digest when that concatenation
// exceeds PayloadHashThreshold.
func (b *Builder) SigningPayload(ctx SigningContext) ([]byte, error) {
	merged, err := b.context(ctx)
	if err != nil {
		return nil, err
	}
	_, payload, err := b.assemble(&merged)
	return payload, err
}

// Sign runs the signing payload through signer and assembles the final
// signed extrinsic. Fixed draft, context and signer always reproduce the
// same bytes.
func (b *Builder) Sign(signer crypto.Signer, ctx SigningContext) (*SignedExtrinsic, error) {
	merged, err := b.context(ctx)
	if err != nil {
		return nil, err
	}
	extra, payload, err := b.assemble(&merged)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(payload)
	if err != nil {
		return nil, fmt.Errorf("signing payload: %w", err)
	}
	address := types.NewAddressFromAccountID(signer.PublicKey())

	body := scale.NewWriter()
	body.U8(Version | signedFlag)
	address.EncodeScale(body)
	if err := sig.EncodeScale(body); err != nil {
		return nil, fmt.Errorf("signer produced an unusable signature: %w", err)
	}
	body.RawBytes(extra)
	body.RawBytes(b.call.Bytes())

	framed := scale.NewWriter()
	framed.SliceBytes(body.Bytes())

	return &SignedExtrinsic{
		Address:   address,
		Signature: sig,
		Extra:     extra,
		Call:      b.call,
		raw:       framed.Bytes(),
	}, nil
}

func (b *Builder) names() []string {
	if b.extensions != nil {
		return b.extensions
	}
	return DefaultExtensions()
}

// context merges the draft fields into a copy of ctx and validates the
// result.
func (b *Builder) context(ctx SigningContext) (SigningContext, error) {
	ctx.Nonce = b.nonce
	ctx.Tip = b.tip
	ctx.Era = b.era
	ctx.AssetID = b.assetID
	ctx.MetadataHash = b.metaHash

	if ctx.GenesisHash.IsZero() {
		return ctx, fmt.Errorf("%w: genesis hash not set", ErrIncompleteContext)
	}
	if ctx.Era.IsMortal && ctx.CheckpointHash.IsZero() {
		return ctx, fmt.Errorf("%w: mortal era needs the checkpoint block hash", ErrIncompleteContext)
	}
	return ctx, nil
}

// assemble produces the extra segment and the signable payload.
func (b *Builder) assemble(ctx *SigningContext) (extra, payload []byte, err error) {
	extra, additional, err := b.registry.segments(b.names(), ctx)
	if err != nil {
		return nil, nil, err
	}
	callData := b.call.Bytes()
	payload = make([]byte, 0, len(callData)+len(extra)+len(additional))
	payload = append(payload, callData...)
	payload = append(payload, extra...)
	payload = append(payload, additional...)
	return extra, signableBytes(payload, b.hasher), nil
}
