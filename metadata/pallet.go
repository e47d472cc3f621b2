package metadata

import (
	"fmt"
	"sort"

	"github.com/wireforge/go-subwire/scale"
	"github.com/wireforge/go-subwire/types"
)

// Storage entry modifiers.
const (
	StorageModifierOptional uint8 = 0
	StorageModifierDefault  uint8 = 1
)

// StorageHasher is the wire tag of a storage-map key hasher.
type StorageHasher uint8

const (
	HasherBlake2b128 StorageHasher = iota
	HasherBlake2b256
	HasherBlake2b128Concat
	HasherTwox128
	HasherTwox256
	HasherTwox64Concat
	HasherIdentity
)

const storageHasherCount = 7

// String names the hasher for diagnostics.
func (h StorageHasher) String() string {
	switch h {
	case HasherBlake2b128:
		return "blake2b-128"
	case HasherBlake2b256:
		return "blake2b-256"
	case HasherBlake2b128Concat:
		return "blake2b-128-concat"
	case HasherTwox128:
		return "twox-128"
	case HasherTwox256:
		return "twox-256"
	case HasherTwox64Concat:
		return "twox-64-concat"
	case HasherIdentity:
		return "identity"
	default:
		return fmt.Sprintf("hasher-%d", uint8(h))
	}
}

// StorageEntry describes one storage item of a pallet: a plain value or a
// hashed-key map.
type StorageEntry struct {
	Name     string
	Modifier uint8
	IsMap    bool
	Hashers  []StorageHasher // map entries only
	Key      uint64          // map entries only
	Value    uint64
	Fallback []byte
	Docs     []string
}

// Storage is a pallet's storage section.
type Storage struct {
	Prefix  string
	Entries []StorageEntry
}

// Entry finds a storage entry by name.
func (s *Storage) Entry(name string) (*StorageEntry, error) {
	for i := range s.Entries {
		if s.Entries[i].Name == name {
			return &s.Entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: storage entry %q under prefix %q", scale.ErrResolution, name, s.Prefix)
}

// Constant is a runtime constant: its type id and raw encoded value.
type Constant struct {
	Name  string
	Type  uint64
	Value []byte
	Docs  []string
}

// Pallet is one runtime module: its wire index, optional storage, the type
// ids of its calls, events and errors, and its constants.
type Pallet struct {
	Name       string
	Index      uint8
	Storage    *Storage
	HasCalls   bool
	CallsType  uint64
	HasEvents  bool
	EventsType uint64
	HasErrors  bool
	ErrorsType uint64
	Constants  []Constant

	// call name -> call index, built when the calls type resolves to a
	// variant. Stays nil when the pallet declares no calls or resolution
	// was disabled.
	calls map[string]uint8
}

// CallIndex resolves a call name to the full (pallet, call) index pair.
func (p *Pallet) CallIndex(call string) (types.CallIndex, error) {
	if p.calls == nil {
		return types.CallIndex{}, fmt.Errorf("%w: pallet %q has no resolvable calls", scale.ErrResolution, p.Name)
	}
	idx, ok := p.calls[call]
	if !ok {
		return types.CallIndex{}, fmt.Errorf("%w: call %q in pallet %q", scale.ErrResolution, call, p.Name)
	}
	return types.CallIndex{Pallet: p.Index, Call: idx}, nil
}

// Calls returns the resolvable call names, sorted.
func (p *Pallet) Calls() []string {
	if p.calls == nil {
		return nil
	}
	out := make([]string, 0, len(p.calls))
	for name := range p.calls {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Constant finds a constant by name and returns its raw encoded value.
func (p *Pallet) Constant(name string) ([]byte, error) {
	for i := range p.Constants {
		if p.Constants[i].Name == name {
			return p.Constants[i].Value, nil
		}
	}
	return nil, fmt.Errorf("%w: constant %q in pallet %q", scale.ErrResolution, name, p.Name)
}

func decodePallets(r *scale.Reader) ([]Pallet, error) {
	count, err := r.Count()
	if err != nil {
		return nil, fmt.Errorf("pallet list length: %w", err)
	}
	out := make([]Pallet, count)
	for i := range out {
		if err := decodePallet(r, &out[i]); err != nil {
			if out[i].Name != "" {
				return nil, fmt.Errorf("pallet %q: %w", out[i].Name, err)
			}
			return nil, fmt.Errorf("pallet entry %d: %w", i, err)
		}
	}
	return out, nil
}

// decodePallet reads one pallet in wire order: name, storage, calls, events,
// constants, errors, index.
func decodePallet(r *scale.Reader, p *Pallet) error {
	var err error
	if p.Name, err = r.Text(); err != nil {
		return err
	}

	hasStorage, err := r.Option()
	if err != nil {
		return err
	}
	if hasStorage {
		if p.Storage, err = decodeStorage(r); err != nil {
			return err
		}
	}

	if p.HasCalls, p.CallsType, err = decodeOptionTypeID(r); err != nil {
		return err
	}
	if p.HasEvents, p.EventsType, err = decodeOptionTypeID(r); err != nil {
		return err
	}

	if p.Constants, err = decodeConstants(r); err != nil {
		return err
	}

	if p.HasErrors, p.ErrorsType, err = decodeOptionTypeID(r); err != nil {
		return err
	}

	p.Index, err = r.U8()
	return err
}

func decodeStorage(r *scale.Reader) (*Storage, error) {
	s := &Storage{}
	var err error
	if s.Prefix, err = r.Text(); err != nil {
		return nil, err
	}
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	s.Entries = make([]StorageEntry, count)
	for i := range s.Entries {
		if err := decodeStorageEntry(r, &s.Entries[i]); err != nil {
			return nil, fmt.Errorf("storage entry %d under prefix %q: %w", i, s.Prefix, err)
		}
	}
	return s, nil
}

func decodeStorageEntry(r *scale.Reader, e *StorageEntry) error {
	var err error
	if e.Name, err = r.Text(); err != nil {
		return err
	}

	modOff := r.Position()
	if e.Modifier, err = r.U8(); err != nil {
		return err
	}
	if e.Modifier > StorageModifierDefault {
		return fmt.Errorf("%w: unknown storage modifier %d at offset %d", scale.ErrFormat, e.Modifier, modOff)
	}

	tagOff := r.Position()
	tag, err := r.ReadByte()
	if err != nil {
		return err
	}
	switch tag {
	case 0: // plain value
		if e.Value, err = r.Compact(); err != nil {
			return err
		}
	case 1: // hashed-key map
		e.IsMap = true
		hasherCount, err := r.Count()
		if err != nil {
			return err
		}
		e.Hashers = make([]StorageHasher, hasherCount)
		for i := range e.Hashers {
			hOff := r.Position()
			h, err := r.ReadByte()
			if err != nil {
				return err
			}
			if h >= storageHasherCount {
				return fmt.Errorf("%w: unknown storage hasher tag %d at offset %d", scale.ErrFormat, h, hOff)
			}
			e.Hashers[i] = StorageHasher(h)
		}
		if e.Key, err = r.Compact(); err != nil {
			return err
		}
		if e.Value, err = r.Compact(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown storage entry tag %d at offset %d", scale.ErrFormat, tag, tagOff)
	}

	if e.Fallback, err = r.SliceBytes(); err != nil {
		return err
	}
	e.Docs, err = decodeTextVec(r)
	return err
}

func decodeConstants(r *scale.Reader) ([]Constant, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	out := make([]Constant, count)
	for i := range out {
		if out[i].Name, err = r.Text(); err != nil {
			return nil, err
		}
		if out[i].Type, err = r.Compact(); err != nil {
			return nil, err
		}
		if out[i].Value, err = r.SliceBytes(); err != nil {
			return nil, err
		}
		if out[i].Docs, err = decodeTextVec(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeOptionTypeID(r *scale.Reader) (bool, uint64, error) {
	present, err := r.Option()
	if err != nil {
		return false, 0, err
	}
	if !present {
		return false, 0, nil
	}
	id, err := r.Compact()
	if err != nil {
		return false, 0, err
	}
	return true, id, nil
}
