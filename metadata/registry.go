package metadata

import (
	"fmt"
	"strings"

	"github.com/wireforge/go-subwire/scale"
)

// TypeDefKind discriminates the shape of a registry type. The values are the
// wire tags.
type TypeDefKind uint8

const (
	KindComposite TypeDefKind = iota
	KindVariant
	KindSequence
	KindArray
	KindTuple
	KindPrimitive
	KindCompact
	KindBitSequence
)

// String names the kind for diagnostics.
func (k TypeDefKind) String() string {
	switch k {
	case KindComposite:
		return "composite"
	case KindVariant:
		return "variant"
	case KindSequence:
		return "sequence"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindPrimitive:
		return "primitive"
	case KindCompact:
		return "compact"
	case KindBitSequence:
		return "bitsequence"
	default:
		return fmt.Sprintf("kind-%d", uint8(k))
	}
}

// Primitive is the wire tag of a primitive type.
type Primitive uint8

const (
	PrimBool Primitive = iota
	PrimChar
	PrimStr
	PrimU8
	PrimU16
	PrimU32
	PrimU64
	PrimU128
	PrimU256
	PrimI8
	PrimI16
	PrimI32
	PrimI64
	PrimI128
	PrimI256
)

const primitiveCount = 15

var primitiveNames = [primitiveCount]string{
	"bool", "char", "str",
	"u8", "u16", "u32", "u64", "u128", "u256",
	"i8", "i16", "i32", "i64", "i128", "i256",
}

// String names the primitive for diagnostics.
func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("primitive-%d", uint8(p))
}

// Field is a named or positional member of a composite or variant type.
// Absent names decode as empty strings.
type Field struct {
	Name     string
	Type     uint64
	TypeName string
	Docs     []string
}

// Variant is one arm of a variant type. For a pallet's calls type, Index is
// the call index on the wire.
type Variant struct {
	Name   string
	Fields []Field
	Index  uint8
	Docs   []string
}

// TypeParam is a generic parameter of a registry type.
type TypeParam struct {
	Name    string
	HasType bool
	Type    uint64
}

// TypeDef is the tagged definition of a registry type. Kind selects which of
// the remaining fields are meaningful.
type TypeDef struct {
	Kind      TypeDefKind
	Fields    []Field   // Composite
	Variants  []Variant // Variant
	Elem      uint64    // Sequence, Array, Compact
	Len       uint32    // Array
	Tuple     []uint64  // Tuple
	Primitive Primitive // Primitive
	BitStore  uint64    // BitSequence
	BitOrder  uint64    // BitSequence
}

// Type is one entry of the portable type registry.
type Type struct {
	ID     uint64
	Path   []string
	Params []TypeParam
	Def    TypeDef
	Docs   []string
}

// Name joins the type path for diagnostics; anonymous types render by id.
func (t *Type) Name() string {
	if len(t.Path) == 0 {
		return fmt.Sprintf("type-%d", t.ID)
	}
	return strings.Join(t.Path, "::")
}

// Registry is the flat, id-indexed arena of portable types. Types reference
// each other only by id, so cyclic type graphs need no special handling:
// lookups resolve lazily at the point of use.
type Registry struct {
	types map[uint64]*Type
	order []uint64
}

func newRegistry(capacity int) *Registry {
	return &Registry{
		types: make(map[uint64]*Type, capacity),
		order: make([]uint64, 0, capacity),
	}
}

func (reg *Registry) add(t *Type) {
	if _, ok := reg.types[t.ID]; !ok {
		reg.order = append(reg.order, t.ID)
	}
	reg.types[t.ID] = t
}

// Type resolves an id, failing with ErrResolution for ids the registry never
// declared.
func (reg *Registry) Type(id uint64) (*Type, error) {
	t, ok := reg.types[id]
	if !ok {
		return nil, fmt.Errorf("%w: type id %d", scale.ErrResolution, id)
	}
	return t, nil
}

// Has reports whether an id is declared.
func (reg *Registry) Has(id uint64) bool {
	_, ok := reg.types[id]
	return ok
}

// Len returns the number of declared types.
func (reg *Registry) Len() int {
	return len(reg.order)
}

// TypeIDs returns the ids in declaration order.
func (reg *Registry) TypeIDs() []uint64 {
	out := make([]uint64, len(reg.order))
	copy(out, reg.order)
	return out
}

// decodeRegistry reads the portable type vector.
func decodeRegistry(r *scale.Reader) (*Registry, error) {
	count, err := r.Count()
	if err != nil {
		return nil, fmt.Errorf("type registry length: %w", err)
	}
	reg := newRegistry(count)
	for i := 0; i < count; i++ {
		t, err := decodePortableType(r)
		if err != nil {
			return nil, fmt.Errorf("type entry %d of %d: %w", i, count, err)
		}
		reg.add(t)
	}
	return reg, nil
}

// decodePortableType reads one registry entry: compact id, path, params,
// definition, docs.
func decodePortableType(r *scale.Reader) (*Type, error) {
	id, err := r.Compact()
	if err != nil {
		return nil, err
	}
	t := &Type{ID: id}
	if t.Path, err = decodeTextVec(r); err != nil {
		return nil, err
	}
	if t.Params, err = decodeTypeParams(r); err != nil {
		return nil, err
	}
	if t.Def, err = decodeTypeDef(r); err != nil {
		return nil, fmt.Errorf("type %d (%s): %w", id, t.Name(), err)
	}
	if t.Docs, err = decodeTextVec(r); err != nil {
		return nil, err
	}
	return t, nil
}

func decodeTypeParams(r *scale.Reader) ([]TypeParam, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	out := make([]TypeParam, count)
	for i := range out {
		if out[i].Name, err = r.Text(); err != nil {
			return nil, err
		}
		present, err := r.Option()
		if err != nil {
			return nil, err
		}
		if present {
			out[i].HasType = true
			if out[i].Type, err = r.Compact(); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func decodeTypeDef(r *scale.Reader) (TypeDef, error) {
	var def TypeDef
	off := r.Position()
	tag, err := r.ReadByte()
	if err != nil {
		return def, err
	}
	def.Kind = TypeDefKind(tag)
	switch def.Kind {
	case KindComposite:
		def.Fields, err = decodeFields(r)
	case KindVariant:
		def.Variants, err = decodeVariants(r)
	case KindSequence:
		def.Elem, err = r.Compact()
	case KindArray:
		if def.Len, err = r.U32(); err != nil {
			return def, err
		}
		def.Elem, err = r.Compact()
	case KindTuple:
		def.Tuple, err = decodeCompactVec(r)
	case KindPrimitive:
		primOff := r.Position()
		var p byte
		if p, err = r.ReadByte(); err != nil {
			return def, err
		}
		if p >= primitiveCount {
			return def, fmt.Errorf("%w: unknown primitive tag %d at offset %d", scale.ErrFormat, p, primOff)
		}
		def.Primitive = Primitive(p)
	case KindCompact:
		def.Elem, err = r.Compact()
	case KindBitSequence:
		if def.BitStore, err = r.Compact(); err != nil {
			return def, err
		}
		def.BitOrder, err = r.Compact()
	default:
		return def, fmt.Errorf("%w: unknown type definition tag %d at offset %d", scale.ErrFormat, tag, off)
	}
	return def, err
}

func decodeFields(r *scale.Reader) ([]Field, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	out := make([]Field, count)
	for i := range out {
		if out[i].Name, err = decodeOptionText(r); err != nil {
			return nil, err
		}
		if out[i].Type, err = r.Compact(); err != nil {
			return nil, err
		}
		if out[i].TypeName, err = decodeOptionText(r); err != nil {
			return nil, err
		}
		if out[i].Docs, err = decodeTextVec(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeVariants(r *scale.Reader) ([]Variant, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	out := make([]Variant, count)
	for i := range out {
		if out[i].Name, err = r.Text(); err != nil {
			return nil, err
		}
		if out[i].Fields, err = decodeFields(r); err != nil {
			return nil, err
		}
		if out[i].Index, err = r.U8(); err != nil {
			return nil, err
		}
		if out[i].Docs, err = decodeTextVec(r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeTextVec(r *scale.Reader) ([]string, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	out := make([]string, count)
	for i := range out {
		if out[i], err = r.Text(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeCompactVec(r *scale.Reader) ([]uint64, error) {
	count, err := r.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	out := make([]uint64, count)
	for i := range out {
		if out[i], err = r.Compact(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeOptionText(r *scale.Reader) (string, error) {
	present, err := r.Option()
	if err != nil {
		return "", err
	}
	if !present {
		return "", nil
	}
	return r.Text()
}
