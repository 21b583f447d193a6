package catalog

import (
	"path"
	"strconv"
	"strings"
)

// TypeRef is the shape of a type reference in the bindings.
type TypeRef interface {
	isTypeRef()
	// Key is a canonical rendering of the shape. Equal keys mean the same
	// Go type.
	Key() string
}

// Prim is a Go primitive type.
type Prim string

// Primitive types as they appear in the bindings.
const (
	Bool    Prim = "bool"
	Uint8   Prim = "uint8"
	Uint16  Prim = "uint16"
	Uint32  Prim = "uint32"
	Uint64  Prim = "uint64"
	Int8    Prim = "int8"
	Int16   Prim = "int16"
	Int32   Prim = "int32"
	Int64   Prim = "int64"
	Float32 Prim = "float32"
	Float64 Prim = "float64"
	Rune    Prim = "rune"
	String  Prim = "string"
)

var prims = map[string]Prim{
	"bool": Bool, "uint8": Uint8, "byte": Uint8, "uint16": Uint16, "uint32": Uint32,
	"uint64": Uint64, "int8": Int8, "int16": Int16, "int32": Int32, "int64": Int64,
	"float32": Float32, "float64": Float64, "rune": Rune, "string": String,
}

// WIT returns the WIT name of the primitive.
func (p Prim) WIT() string {
	switch p {
	case Uint8:
		return "u8"
	case Uint16:
		return "u16"
	case Uint32:
		return "u32"
	case Uint64:
		return "u64"
	case Int8:
		return "s8"
	case Int16:
		return "s16"
	case Int32:
		return "s32"
	case Int64:
		return "s64"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case Rune:
		return "char"
	}
	return string(p)
}

// Named refers to a type declared in a binding package.
type Named struct {
	// Pkg is the binding directory relative to the root: "wasi/io/streams".
	Pkg  string
	Name string
	// Borrow is set on resource handles passed as borrow<T>.
	Borrow bool
}

// List is cm.List[T], or []T when Slice is set.
type List struct {
	Elem  TypeRef
	Slice bool
}

// Option is cm.Option[T].
type Option struct {
	Elem TypeRef
}

// Result is cm.Result[Shape, OK, Err]. OK and Err are nil when absent.
// Shape is nil for cm.BoolResult, which has neither.
type Result struct {
	Shape TypeRef
	OK    TypeRef
	Err   TypeRef
}

// Tuple is cm.TupleN[...].
type Tuple struct {
	Elems []TypeRef
}

// Rep is the cm.Rep an exported resource receives for borrowed handles.
type Rep struct {
	Pkg      string
	Resource string
}

func (Prim) isTypeRef()   {}
func (Named) isTypeRef()  {}
func (List) isTypeRef()   {}
func (Option) isTypeRef() {}
func (Result) isTypeRef() {}
func (Tuple) isTypeRef()  {}
func (Rep) isTypeRef()    {}

func (p Prim) Key() string { return string(p) }

func (n Named) Key() string {
	k := n.Pkg + "." + n.Name
	if n.Borrow {
		return "borrow<" + k + ">"
	}
	return k
}

func (l List) Key() string {
	if l.Slice {
		return "[]" + l.Elem.Key()
	}
	return "list<" + l.Elem.Key() + ">"
}

func (o Option) Key() string { return "option<" + o.Elem.Key() + ">" }

func (r Result) Key() string {
	if r.Shape == nil {
		return "result"
	}
	return "result<" + keyOrUnit(r.Shape) + ", " + keyOrUnit(r.OK) + ", " + keyOrUnit(r.Err) + ">"
}

func (t Tuple) Key() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.Key()
	}
	return "tuple<" + strings.Join(parts, ", ") + ">"
}

func (r Rep) Key() string { return "rep<" + r.Pkg + "." + r.Resource + ">" }

func keyOrUnit(t TypeRef) string {
	if t == nil {
		return "_"
	}
	return t.Key()
}

// GoString renders t in Go syntax, qualifying named types with the last
// segment of their package directory.
func GoString(t TypeRef) string {
	switch t := t.(type) {
	case nil:
		return "struct{}"
	case Prim:
		return string(t)
	case Named:
		return PackageName(t.Pkg) + "." + t.Name
	case List:
		if t.Slice {
			return "[]" + GoString(t.Elem)
		}
		return "cm.List[" + GoString(t.Elem) + "]"
	case Option:
		return "cm.Option[" + GoString(t.Elem) + "]"
	case Result:
		if t.Shape == nil {
			return "cm.BoolResult"
		}
		return "cm.Result[" + GoString(t.Shape) + ", " + GoString(t.OK) + ", " + GoString(t.Err) + "]"
	case Tuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = GoString(e)
		}
		if len(parts) == 2 {
			return "cm.Tuple[" + strings.Join(parts, ", ") + "]"
		}
		return "cm.Tuple" + strconv.Itoa(len(parts)) + "[" + strings.Join(parts, ", ") + "]"
	case Rep:
		return "cm.Rep"
	}
	return "?"
}

// PackageName is the Go package name wit-bindgen-go derives from a
// directory: the last segment without dashes.
func PackageName(dir string) string {
	return strings.ReplaceAll(path.Base(dir), "-", "")
}

// TupleName is the cm type name of a tuple with n elements.
func TupleName(n int) string {
	if n == 2 {
		return "Tuple"
	}
	return "Tuple" + strconv.Itoa(n)
}

// TypeKind classifies a declared type.
type TypeKind uint8

const (
	// KindResource is a handle type declared as cm.Resource.
	KindResource TypeKind = iota + 1
	// KindStruct is a record.
	KindStruct
	// KindEnum is a variant (cm.Variant) or a payload-free enum.
	KindEnum
	// KindFlag is a bit set of labels.
	KindFlag
	// KindDefined is a defined type over another shape, e.g. type Size uint64.
	KindDefined
)

func (k TypeKind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindFlag:
		return "flag"
	case KindDefined:
		return "defined"
	default:
		return "unknown"
	}
}

// TypeDef is a cataloged type declaration.
type TypeDef struct {
	// Under is the underlying shape of a defined type and the integer type
	// of enums and flags.
	Under   TypeRef
	Pkg     string
	Name    string
	WitName string
	Fields  []Field
	Cases   []Case
	Flags   []Label
	Kind    TypeKind
	// Variant is set on enums backed by cm.Variant.
	Variant bool
	// Exported is set on resources implemented by this bindings tree.
	Exported bool
}

// Ref returns a reference to d.
func (d *TypeDef) Ref() Named {
	return Named{Pkg: d.Pkg, Name: d.Name}
}

// Field is a record field.
type Field struct {
	Type    TypeRef
	Name    string
	WitName string
}

// Case is a variant or enum case. Name is the Go identifier generated code
// uses: the enum constant, or the variant accessor method whose
// constructor is the type name followed by Name.
type Case struct {
	Payload TypeRef
	Name    string
	WitName string
}

// Label is one flag.
type Label struct {
	Name    string
	WitName string
}

// Walk calls fn for t and every type nested in it.
func Walk(t TypeRef, fn func(TypeRef)) {
	if t == nil {
		return
	}
	fn(t)
	switch t := t.(type) {
	case List:
		Walk(t.Elem, fn)
	case Option:
		Walk(t.Elem, fn)
	case Result:
		Walk(t.Shape, fn)
		Walk(t.OK, fn)
		Walk(t.Err, fn)
	case Tuple:
		for _, e := range t.Elems {
			Walk(e, fn)
		}
	}
}

// mapRef rebuilds t bottom-up through fn.
func mapRef(t TypeRef, fn func(TypeRef) TypeRef) TypeRef {
	switch v := t.(type) {
	case nil:
		return nil
	case List:
		v.Elem = mapRef(v.Elem, fn)
		return fn(v)
	case Option:
		v.Elem = mapRef(v.Elem, fn)
		return fn(v)
	case Result:
		v.Shape = mapRef(v.Shape, fn)
		v.OK = mapRef(v.OK, fn)
		v.Err = mapRef(v.Err, fn)
		return fn(v)
	case Tuple:
		elems := make([]TypeRef, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = mapRef(e, fn)
		}
		v.Elems = elems
		return fn(v)
	}
	return fn(t)
}
