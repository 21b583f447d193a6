package wave

import (
	"github.com/wippyai/wasm-proxy/errors"
)

// Value is a dynamically typed component value.
type Value interface {
	Kind() Kind
}

type (
	Bool   bool
	S8     int8
	S16    int16
	S32    int32
	S64    int64
	U8     uint8
	U16    uint16
	U32    uint32
	U64    uint64
	F32    float32
	F64    float64
	Char   rune
	String string
)

func (Bool) Kind() Kind { return KindBool }
func (S8) Kind() Kind { return KindS8 }
func (S16) Kind() Kind { return KindS16 }
func (S32) Kind() Kind { return KindS32 }
func (S64) Kind() Kind { return KindS64 }
func (U8) Kind() Kind { return KindU8 }
func (U16) Kind() Kind { return KindU16 }
func (U32) Kind() Kind { return KindU32 }
func (U64) Kind() Kind { return KindU64 }
func (F32) Kind() Kind { return KindF32 }
func (F64) Kind() Kind { return KindF64 }
func (Char) Kind() Kind { return KindChar }
func (String) Kind() Kind { return KindString }

// List is a homogeneous sequence.
type List struct {
	Elems []Value
}

func (List) Kind() Kind { return KindList }

// Tuple is a fixed-arity heterogeneous sequence.
type Tuple struct {
	Elems []Value
}

func (Tuple) Kind() Kind { return KindTuple }

// FieldValue is one named record field.
type FieldValue struct {
	Value Value
	Name  string
}

// Record holds fields in declared order.
type Record struct {
	Fields []FieldValue
}

func (Record) Kind() Kind { return KindRecord }

// Get returns the named field value.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Variant is a tagged case with an optional payload.
type Variant struct {
	Payload Value
	Case    string
}

func (Variant) Kind() Kind { return KindVariant }

// Enum is a payload-free case.
type Enum struct {
	Case string
}

func (Enum) Kind() Kind { return KindEnum }

// Option holds Some(Value) or none when Value is nil.
type Option struct {
	Value Value
}

func (Option) Kind() Kind { return KindOption }

// Some reports whether the option is set.
func (o Option) Some() bool { return o.Value != nil }

// Result is ok or err with an optional payload.
type Result struct {
	Payload Value
	IsErr   bool
}

func (Result) Kind() Kind { return KindResult }

// Flags lists the set labels in declared order.
type Flags struct {
	Labels []string
}

func (Flags) Kind() Kind { return KindFlags }

// Has reports whether label is set.
func (f Flags) Has(label string) bool {
	for _, l := range f.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Handle is a resource handle as observed at the boundary.
type Handle struct {
	ID       uint32
	Borrowed bool
}

func (Handle) Kind() Kind { return KindResource }

// NewFlags builds a Flags value for t with labels normalized to declared order.
func NewFlags(t *Type, set ...string) (Flags, error) {
	seen := make([]bool, len(t.labels))
	for _, s := range set {
		i := t.LabelIndex(s)
		if i < 0 {
			return Flags{}, errors.UnknownCase(nil, t.String(), s)
		}
		seen[i] = true
	}
	var labels []string
	for i, ok := range seen {
		if ok {
			labels = append(labels, t.labels[i])
		}
	}
	return Flags{Labels: labels}, nil
}

// NewVariant checks the case against t before building the value.
func NewVariant(t *Type, name string, payload Value) (Variant, error) {
	c, ok := t.Case(name)
	if !ok {
		return Variant{}, errors.UnknownCase(nil, t.String(), name)
	}
	if (c.Type == nil) != (payload == nil) {
		return Variant{}, errors.SchemaMismatch(errors.PhaseValue, []string{name}, t.String(), "payload presence does not match case")
	}
	return Variant{Case: name, Payload: payload}, nil
}

// NewEnum checks the label against t before building the value.
func NewEnum(t *Type, name string) (Enum, error) {
	if t.LabelIndex(name) < 0 {
		return Enum{}, errors.UnknownCase(nil, t.String(), name)
	}
	return Enum{Case: name}, nil
}

// NewRecord pairs positional values with the fields of t.
func NewRecord(t *Type, values ...Value) (Record, error) {
	if len(values) != len(t.fields) {
		return Record{}, errors.SchemaMismatch(errors.PhaseValue, nil, t.String(), "field count does not match")
	}
	fields := make([]FieldValue, len(values))
	for i, v := range values {
		fields[i] = FieldValue{Name: t.fields[i].Name, Value: v}
	}
	return Record{Fields: fields}, nil
}
