// Package metadata decodes a runtime's self-describing metadata blob into a
// queryable registry: portable types, pallets with resolved call indexes, and
// the ordered signed-extension declarations the extrinsic builder consumes.
//
// Only the self-describing version 14 layout is supported. Decoding is a
// strict single pass over the byte cursor; structurally invalid input fails
// with a typed error and a byte offset, never a guessed-around default. The
// one deliberate soft spot: a pallet whose declared calls type does not
// resolve to a variant keeps the rest of the metadata usable and only loses
// call-index resolution.
package metadata

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

var log = logrus.WithField("module", "metadata")

// SupportedVersion is the only metadata layout this package decodes.
const SupportedVersion = 14

var magic = []byte("meta")

// SignedExtension is one runtime-declared contribution to a transaction's
// non-call payload. Order of declaration fixes the byte layout of both the
// transmitted extra segment and the signed-only additional segment.
type SignedExtension struct {
	Identifier       string
	Type             uint64
	AdditionalSigned uint64
}

// ExtrinsicInfo is the runtime's extrinsic envelope declaration.
type ExtrinsicInfo struct {
	Type             uint64
	Version          uint8
	SignedExtensions []SignedExtension
}

// Metadata is a fully parsed metadata blob.
type Metadata struct {
	Version     uint8
	Types       *Registry
	Pallets     []Pallet
	Extrinsic   ExtrinsicInfo
	RuntimeType uint64

	byName map[string]*Pallet
}

// Decode parses a raw metadata blob. The input must carry the "meta" magic,
// the supported version byte, and decode cleanly to the last byte.
func Decode(data []byte) (*Metadata, error) {
	r := scale.NewReader(data)

	head, err := r.Read(4)
	if err != nil {
		return nil, fmt.Errorf("metadata magic: %w", err)
	}
	if !bytes.Equal(head, magic) {
		return nil, fmt.Errorf("%w: bad metadata magic % x", scale.ErrFormat, head)
	}

	version, err := r.U8()
	if err != nil {
		return nil, fmt.Errorf("metadata version: %w", err)
	}
	if version != SupportedVersion {
		return nil, fmt.Errorf("%w: unsupported metadata version %d (only %d)", scale.ErrFormat, version, SupportedVersion)
	}

	m := &Metadata{Version: version}
	if m.Types, err = decodeRegistry(r); err != nil {
		return nil, err
	}
	if m.Pallets, err = decodePallets(r); err != nil {
		return nil, err
	}
	if err = decodeExtrinsicInfo(r, &m.Extrinsic); err != nil {
		return nil, fmt.Errorf("extrinsic descriptor: %w", err)
	}
	if m.RuntimeType, err = r.Compact(); err != nil {
		return nil, fmt.Errorf("runtime type id: %w", err)
	}
	if !r.Empty() {
		return nil, fmt.Errorf("%w: %d trailing bytes after metadata at offset %d", scale.ErrFormat, r.Remaining(), r.Position())
	}

	m.resolve()
	return m, nil
}

// resolve builds the call-index maps and the name index. A calls type that is
// missing from the registry or is not a variant disables call resolution for
// that pallet only.
func (m *Metadata) resolve() {
	m.byName = make(map[string]*Pallet, len(m.Pallets))
	for i := range m.Pallets {
		p := &m.Pallets[i]
		m.byName[p.Name] = p
		if !p.HasCalls {
			continue
		}
		t, err := m.Types.Type(p.CallsType)
		if err != nil {
			log.WithField("pallet", p.Name).Warnf("calls type id %d not in registry, call resolution disabled", p.CallsType)
			continue
		}
		if t.Def.Kind != KindVariant {
			log.WithField("pallet", p.Name).Warnf("calls type %s is %s, not a variant, call resolution disabled", t.Name(), t.Def.Kind)
			continue
		}
		p.calls = make(map[string]uint8, len(t.Def.Variants))
		for _, v := range t.Def.Variants {
			p.calls[v.Name] = v.Index
		}
	}
}

func decodeExtrinsicInfo(r *scale.Reader, info *ExtrinsicInfo) error {
	var err error
	if info.Type, err = r.Compact(); err != nil {
		return err
	}
	if info.Version, err = r.U8(); err != nil {
		return err
	}
	count, err := r.Count()
	if err != nil {
		return err
	}
	info.SignedExtensions = make([]SignedExtension, count)
	for i := range info.SignedExtensions {
		e := &info.SignedExtensions[i]
		if e.Identifier, err = r.Text(); err != nil {
			return err
		}
		if e.Type, err = r.Compact(); err != nil {
			return err
		}
		if e.AdditionalSigned, err = r.Compact(); err != nil {
			return err
		}
	}
	return nil
}

// PalletByName finds a pallet, failing with ErrResolution when absent.
func (m *Metadata) PalletByName(name string) (*Pallet, error) {
	p, ok := m.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: pallet %q", scale.ErrResolution, name)
	}
	return p, nil
}

// PalletNames returns all pallet names, sorted.
func (m *Metadata) PalletNames() []string {
	out := make([]string, 0, len(m.Pallets))
	for i := range m.Pallets {
		out = append(out, m.Pallets[i].Name)
	}
	sort.Strings(out)
	return out
}

// CallIndex resolves a pallet and call name to the two-byte wire index pair.
func (m *Metadata) CallIndex(pallet, call string) (types.CallIndex, error) {
	p, err := m.PalletByName(pallet)
	if err != nil {
		return types.CallIndex{}, err
	}
	return p.CallIndex(call)
}

// CallsOf returns the sorted call names of a pallet.
func (m *Metadata) CallsOf(pallet string) ([]string, error) {
	p, err := m.PalletByName(pallet)
	if err != nil {
		return nil, err
	}
	return p.Calls(), nil
}

// SignedExtensionNames returns the extension identifiers in declaration
// order, which is the order their segments appear on the wire.
func (m *Metadata) SignedExtensionNames() []string {
	out := make([]string, len(m.Extrinsic.SignedExtensions))
	for i, e := range m.Extrinsic.SignedExtensions {
		out[i] = e.Identifier
	}
	return out
}
