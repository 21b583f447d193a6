package wave

import (
	"strings"
)

// Kind identifies the shape of a Type or Value.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindS8
	KindS16
	KindS32
	KindS64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
	KindChar
	KindString
	KindList
	KindRecord
	KindTuple
	KindVariant
	KindEnum
	KindOption
	KindResult
	KindFlags
	KindResource
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindS8:       "s8",
	KindS16:      "s16",
	KindS32:      "s32",
	KindS64:      "s64",
	KindU8:       "u8",
	KindU16:      "u16",
	KindU32:      "u32",
	KindU64:      "u64",
	KindF32:      "f32",
	KindF64:      "f64",
	KindChar:     "char",
	KindString:   "string",
	KindList:     "list",
	KindRecord:   "record",
	KindTuple:    "tuple",
	KindVariant:  "variant",
	KindEnum:     "enum",
	KindOption:   "option",
	KindResult:   "result",
	KindFlags:    "flags",
	KindResource: "resource",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Type describes the schema a Value is encoded and parsed against.
// Types are immutable once built.
type Type struct {
	elem   *Type
	ok     *Type
	err    *Type
	name   string
	fields []Field
	types  []*Type
	cases  []Case
	labels []string
	kind   Kind
}

// Field is a named record field.
type Field struct {
	Type *Type
	Name string
}

// Case is a variant case; Type is nil for cases without payload.
type Case struct {
	Type *Type
	Name string
}

// Primitive types.
var (
	BoolType   = &Type{kind: KindBool}
	S8Type     = &Type{kind: KindS8}
	S16Type    = &Type{kind: KindS16}
	S32Type    = &Type{kind: KindS32}
	S64Type    = &Type{kind: KindS64}
	U8Type     = &Type{kind: KindU8}
	U16Type    = &Type{kind: KindU16}
	U32Type    = &Type{kind: KindU32}
	U64Type    = &Type{kind: KindU64}
	F32Type    = &Type{kind: KindF32}
	F64Type    = &Type{kind: KindF64}
	CharType   = &Type{kind: KindChar}
	StringType = &Type{kind: KindString}
)

// ListOf returns a list type.
func ListOf(elem *Type) *Type {
	return &Type{kind: KindList, elem: elem}
}

// OptionOf returns an option type.
func OptionOf(elem *Type) *Type {
	return &Type{kind: KindOption, elem: elem}
}

// ResultOf returns a result type. Either side may be nil.
func ResultOf(ok, err *Type) *Type {
	return &Type{kind: KindResult, ok: ok, err: err}
}

// TupleOf returns a tuple type.
func TupleOf(types ...*Type) *Type {
	return &Type{kind: KindTuple, types: types}
}

// RecordOf returns a record type with fields in declared order.
func RecordOf(name string, fields ...Field) *Type {
	return &Type{kind: KindRecord, name: name, fields: fields}
}

// VariantOf returns a variant type with cases in declared order.
func VariantOf(name string, cases ...Case) *Type {
	return &Type{kind: KindVariant, name: name, cases: cases}
}

// EnumOf returns an enum type.
func EnumOf(name string, labels ...string) *Type {
	return &Type{kind: KindEnum, name: name, labels: labels}
}

// FlagsOf returns a flags type with labels in declared (bit) order.
func FlagsOf(name string, labels ...string) *Type {
	return &Type{kind: KindFlags, name: name, labels: labels}
}

// ResourceOf returns an opaque handle type tagged with the resource name.
func ResourceOf(name string) *Type {
	return &Type{kind: KindResource, name: name}
}

func (t *Type) Kind() Kind { return t.kind }
func (t *Type) Name() string { return t.name }
func (t *Type) Elem() *Type { return t.elem }
func (t *Type) OK() *Type { return t.ok }
func (t *Type) Err() *Type { return t.err }
func (t *Type) Fields() []Field { return t.fields }
func (t *Type) Types() []*Type { return t.types }
func (t *Type) Cases() []Case { return t.cases }
func (t *Type) Labels() []string { return t.labels }

// Field returns the field with the given name.
func (t *Type) Field(name string) (Field, bool) {
	for _, f := range t.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Case returns the variant case with the given name.
func (t *Type) Case(name string) (Case, bool) {
	for _, c := range t.cases {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}

// LabelIndex returns the position of an enum or flags label, or -1.
func (t *Type) LabelIndex(label string) int {
	for i, l := range t.labels {
		if l == label {
			return i
		}
	}
	return -1
}

// String renders the type in WIT syntax. Named types render as their name.
func (t *Type) String() string {
	if t == nil {
		return "_"
	}
	switch t.kind {
	case KindList:
		return "list<" + t.elem.String() + ">"
	case KindOption:
		return "option<" + t.elem.String() + ">"
	case KindResult:
		switch {
		case t.ok == nil && t.err == nil:
			return "result"
		case t.err == nil:
			return "result<" + t.ok.String() + ">"
		default:
			return "result<" + t.ok.String() + ", " + t.err.String() + ">"
		}
	case KindTuple:
		parts := make([]string, len(t.types))
		for i, e := range t.types {
			parts[i] = e.String()
		}
		return "tuple<" + strings.Join(parts, ", ") + ">"
	case KindRecord, KindVariant, KindEnum, KindFlags:
		if t.name != "" {
			return t.name
		}
		return t.kind.String()
	case KindResource:
		return "own<" + t.name + ">"
	}
	return t.kind.String()
}
