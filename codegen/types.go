package codegen

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"

	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/errors"
)

// Helper families. The family is the prefix of every helper name.
type helperKind string

const (
	kindType      helperKind = "valueType"
	kindTo        helperKind = "toValue"
	kindFrom      helperKind = "fromValue"
	kindArbitrary helperKind = "arbitrary"
	kindDialog    helperKind = "dialog"
	kindProxy     helperKind = "proxy"
)

// helper returns the name of the helper of kind for t, queueing its
// declaration on first use.
func (g *Generator) helper(kind helperKind, t catalog.TypeRef, decl func(name string) jen.Code) string {
	key := string(kind) + " " + t.Key()
	if name, ok := g.helpers[key]; ok {
		return name
	}
	name := g.unique(string(kind) + suffix(t))
	g.helpers[key] = name
	g.queue = append(g.queue, func() {
		g.decls = append(g.decls, decl(name))
	})
	return name
}

func (g *Generator) unique(name string) string {
	out := name
	for i := 2; g.taken[out]; i++ {
		out = name + strconv.Itoa(i)
	}
	g.taken[out] = true
	return out
}

// suffix names a type for helper identifiers: U32, WasiIoStreamsOutputStream,
// BorrowDocsCounterApiCounter, ListOfString, ResultOfUnitOrString.
func suffix(t catalog.TypeRef) string {
	switch t := t.(type) {
	case nil:
		return "Unit"
	case catalog.Prim:
		return strcase.ToCamel(t.WIT())
	case catalog.Named:
		s := dirCamel(t.Pkg) + t.Name
		if t.Borrow {
			return "Borrow" + s
		}
		return s
	case catalog.List:
		if t.Slice {
			return "SliceOf" + suffix(t.Elem)
		}
		return "ListOf" + suffix(t.Elem)
	case catalog.Option:
		return "OptionOf" + suffix(t.Elem)
	case catalog.Result:
		if t.Shape == nil {
			return "BoolResult"
		}
		return "ResultOf" + suffix(t.OK) + "Or" + suffix(t.Err)
	case catalog.Tuple:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = suffix(e)
		}
		return "TupleOf" + strings.Join(parts, "And")
	case catalog.Rep:
		return "Rep" + dirCamel(t.Pkg) + t.Resource
	}
	return "Value"
}

func dirCamel(dir string) string {
	return strcase.ToCamel(strings.ReplaceAll(dir, "/", "-"))
}

// goType renders the Go type of t.
func (g *Generator) goType(t catalog.TypeRef) *jen.Statement {
	switch t := t.(type) {
	case nil:
		return jen.Struct()
	case catalog.Prim:
		return jen.Id(string(t))
	case catalog.Named:
		return g.qual(t.Pkg, t.Name)
	case catalog.List:
		if t.Slice {
			return jen.Index().Add(g.goType(t.Elem))
		}
		return jen.Qual(cmPath, "List").Types(g.goType(t.Elem))
	case catalog.Option:
		return jen.Qual(cmPath, "Option").Types(g.goType(t.Elem))
	case catalog.Result:
		if t.Shape == nil {
			return jen.Qual(cmPath, "BoolResult")
		}
		return jen.Qual(cmPath, "Result").Types(g.goType(t.Shape), g.goType(t.OK), g.goType(t.Err))
	case catalog.Tuple:
		elems := make([]jen.Code, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = g.goType(e)
		}
		return jen.Qual(cmPath, catalog.TupleName(len(t.Elems))).Types(elems...)
	case catalog.Rep:
		return jen.Qual(cmPath, "Rep")
	}
	g.fail(errors.New(errors.PhaseGenerate, errors.KindUnsupportedItem).
		GoType(catalog.GoString(t)).
		Detail("no Go rendering for %T", t).
		Build())
	return jen.Id("any")
}

// lookup resolves a named type. Unknown names fail generation and yield
// a stand-in so emission can continue.
func (g *Generator) lookup(n catalog.Named) *catalog.TypeDef {
	if d, ok := g.cat.Lookup(n); ok {
		return d
	}
	g.fail(errors.NotFound(errors.PhaseGenerate, "type", n.Pkg+"."+n.Name))
	return &catalog.TypeDef{Pkg: n.Pkg, Name: n.Name, WitName: n.Name, Kind: catalog.KindDefined, Under: catalog.Uint32}
}

// repDef resolves the resource a cm.Rep stands for.
func (g *Generator) repDef(r catalog.Rep) *catalog.TypeDef {
	return g.lookup(catalog.Named{Pkg: r.Pkg, Name: r.Resource})
}

// plain drops the borrow marker; helpers that do not care about
// ownership share one declaration.
func plain(t catalog.TypeRef) catalog.TypeRef {
	if n, ok := t.(catalog.Named); ok {
		n.Borrow = false
		return n
	}
	return t
}

var primWave = map[catalog.Prim]string{
	catalog.Bool:    "Bool",
	catalog.Int8:    "S8",
	catalog.Int16:   "S16",
	catalog.Int32:   "S32",
	catalog.Int64:   "S64",
	catalog.Uint8:   "U8",
	catalog.Uint16:  "U16",
	catalog.Uint32:  "U32",
	catalog.Uint64:  "U64",
	catalog.Float32: "F32",
	catalog.Float64: "F64",
	catalog.Rune:    "Char",
	catalog.String:  "String",
}

// valueType renders an expression of type *wave.Type describing t.
func (g *Generator) valueType(t catalog.TypeRef) *jen.Statement {
	switch t := t.(type) {
	case nil:
		return jen.Nil()
	case catalog.Prim:
		return jen.Qual(wavePath, primWave[t]+"Type")
	case catalog.List:
		return jen.Qual(wavePath, "ListOf").Call(g.valueType(t.Elem))
	case catalog.Option:
		return jen.Qual(wavePath, "OptionOf").Call(g.valueType(t.Elem))
	case catalog.Result:
		if t.Shape == nil {
			return jen.Qual(wavePath, "ResultOf").Call(jen.Nil(), jen.Nil())
		}
		return jen.Qual(wavePath, "ResultOf").Call(g.valueType(t.OK), g.valueType(t.Err))
	case catalog.Tuple:
		elems := make([]jen.Code, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = g.valueType(e)
		}
		return jen.Qual(wavePath, "TupleOf").Call(elems...)
	case catalog.Rep:
		return jen.Qual(wavePath, "ResourceOf").Call(jen.Lit(g.repDef(t).WitName))
	case catalog.Named:
		return jen.Id(g.helper(kindType, plain(t), func(name string) jen.Code {
			return jen.Func().Id(name).Params().Op("*").Qual(wavePath, "Type").Block(
				jen.Return(g.namedValueType(g.lookup(t))),
			)
		})).Call()
	}
	return jen.Nil()
}

func (g *Generator) namedValueType(d *catalog.TypeDef) *jen.Statement {
	switch d.Kind {
	case catalog.KindResource:
		return jen.Qual(wavePath, "ResourceOf").Call(jen.Lit(d.WitName))
	case catalog.KindStruct:
		args := []jen.Code{jen.Lit(d.WitName)}
		for _, f := range d.Fields {
			args = append(args, jen.Qual(wavePath, "Field").Values(
				jen.Id("Name").Op(":").Lit(f.WitName),
				jen.Id("Type").Op(":").Add(g.valueType(f.Type)),
			))
		}
		return jen.Qual(wavePath, "RecordOf").Call(args...)
	case catalog.KindEnum:
		args := []jen.Code{jen.Lit(d.WitName)}
		if !d.Variant {
			for _, c := range d.Cases {
				args = append(args, jen.Lit(c.WitName))
			}
			return jen.Qual(wavePath, "EnumOf").Call(args...)
		}
		for _, c := range d.Cases {
			fields := []jen.Code{jen.Id("Name").Op(":").Lit(c.WitName)}
			if c.Payload != nil {
				fields = append(fields, jen.Id("Type").Op(":").Add(g.valueType(c.Payload)))
			}
			args = append(args, jen.Qual(wavePath, "Case").Values(fields...))
		}
		return jen.Qual(wavePath, "VariantOf").Call(args...)
	case catalog.KindFlag:
		args := []jen.Code{jen.Lit(d.WitName)}
		for _, l := range d.Flags {
			args = append(args, jen.Lit(l.WitName))
		}
		return jen.Qual(wavePath, "FlagsOf").Call(args...)
	}
	return g.valueType(d.Under)
}

// needsHelper reports whether values of t cannot be converted inline.
func needsHelper(t catalog.TypeRef) bool {
	_, prim := t.(catalog.Prim)
	return !prim && t != nil
}

// crossesBoundary reports whether t mentions a named type or a cm.Rep,
// the only shapes that differ across the boundary.
func crossesBoundary(t catalog.TypeRef) bool {
	found := false
	catalog.Walk(t, func(t catalog.TypeRef) {
		switch t.(type) {
		case catalog.Named, catalog.Rep:
			found = true
		}
	})
	return found
}
