package codegen

import (
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/catalog"
)

// toValue renders an expression of type wave.Value for x of type t.
func (g *Generator) toValue(t catalog.TypeRef, x jen.Code) *jen.Statement {
	switch t := t.(type) {
	case nil:
		return jen.Nil()
	case catalog.Prim:
		return jen.Qual(wavePath, primWave[t]).Call(x)
	}
	name := g.helper(kindTo, t, func(name string) jen.Code {
		return jen.Func().Id(name).Params(jen.Id("x").Add(g.goType(t))).Qual(wavePath, "Value").
			Block(g.toValueBody(t)...)
	})
	return jen.Id(name).Call(x)
}

func (g *Generator) toValueBody(t catalog.TypeRef) []jen.Code {
	x := func() *jen.Statement { return jen.Id("x") }
	switch t := t.(type) {
	case catalog.List:
		var body []jen.Code
		src := "x"
		if !t.Slice {
			src = "src"
			body = append(body, jen.Id(src).Op(":=").Add(x()).Dot("Slice").Call())
		}
		return append(body,
			jen.Id("elems").Op(":=").Make(jen.Index().Qual(wavePath, "Value"), jen.Lit(0), jen.Len(jen.Id(src))),
			jen.For(jen.List(jen.Id("_"), jen.Id("e")).Op(":=").Range().Id(src)).Block(
				jen.Id("elems").Op("=").Append(jen.Id("elems"), g.toValue(t.Elem, jen.Id("e"))),
			),
			jen.Return(jen.Qual(wavePath, "List").Values(jen.Id("Elems").Op(":").Id("elems"))),
		)
	case catalog.Option:
		return []jen.Code{
			jen.If(jen.Id("v").Op(":=").Add(x()).Dot("Some").Call(), jen.Id("v").Op("!=").Nil()).Block(
				jen.Return(jen.Qual(wavePath, "Option").Values(
					jen.Id("Value").Op(":").Add(g.toValue(t.Elem, jen.Op("*").Id("v"))),
				)),
			),
			jen.Return(jen.Qual(wavePath, "Option").Values()),
		}
	case catalog.Result:
		if t.Shape == nil {
			return []jen.Code{jen.Return(jen.Qual(wavePath, "Result").Values(
				jen.Id("IsErr").Op(":").Bool().Call(x()),
			))}
		}
		errFields := []jen.Code{jen.Id("IsErr").Op(":").True()}
		if t.Err != nil {
			errFields = append(errFields, jen.Id("Payload").Op(":").Add(g.toValue(t.Err, jen.Op("*").Add(x()).Dot("Err").Call())))
		}
		var okFields []jen.Code
		if t.OK != nil {
			okFields = append(okFields, jen.Id("Payload").Op(":").Add(g.toValue(t.OK, jen.Op("*").Add(x()).Dot("OK").Call())))
		}
		return []jen.Code{
			jen.If(x().Dot("IsErr").Call()).Block(
				jen.Return(jen.Qual(wavePath, "Result").Values(errFields...)),
			),
			jen.Return(jen.Qual(wavePath, "Result").Values(okFields...)),
		}
	case catalog.Tuple:
		elems := make([]jen.Code, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = g.toValue(e, x().Dot(tupleField(i)))
		}
		return []jen.Code{jen.Return(jen.Qual(wavePath, "Tuple").Values(
			jen.Id("Elems").Op(":").Index().Qual(wavePath, "Value").Values(elems...),
		))}
	case catalog.Rep:
		return []jen.Code{jen.Return(handle(g.repID(x()), true))}
	case catalog.Named:
		return g.toValueNamed(t, g.lookup(t))
	}
	return []jen.Code{jen.Return(jen.Nil())}
}

func (g *Generator) toValueNamed(n catalog.Named, d *catalog.TypeDef) []jen.Code {
	x := func() *jen.Statement { return jen.Id("x") }
	switch d.Kind {
	case catalog.KindResource:
		return []jen.Code{jen.Return(handle(g.resourceID(d, x()), n.Borrow))}
	case catalog.KindStruct:
		fields := make([]jen.Code, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = jen.Values(
				jen.Id("Name").Op(":").Lit(f.WitName),
				jen.Id("Value").Op(":").Add(g.toValue(f.Type, x().Dot(f.Name))),
			)
		}
		return []jen.Code{jen.Return(jen.Qual(wavePath, "Record").Values(
			jen.Id("Fields").Op(":").Index().Qual(wavePath, "FieldValue").Values(fields...),
		))}
	case catalog.KindEnum:
		if !d.Variant {
			cases := make([]jen.Code, len(d.Cases))
			for i, c := range d.Cases {
				cases[i] = jen.Case(g.qual(d.Pkg, c.Name)).Block(
					jen.Return(jen.Qual(wavePath, "Enum").Values(jen.Id("Case").Op(":").Lit(c.WitName))),
				)
			}
			return []jen.Code{
				jen.Switch(x()).Block(cases...),
				jen.Panic(jen.Qual(guestPath, "UnknownTag").Call(jen.Lit(d.WitName), jen.Uint64().Call(x()))),
			}
		}
		cases := make([]jen.Code, len(d.Cases))
		for i, c := range d.Cases {
			fields := []jen.Code{jen.Id("Case").Op(":").Lit(c.WitName)}
			if c.Payload != nil {
				fields = append(fields, jen.Id("Payload").Op(":").Add(g.toValue(c.Payload, jen.Op("*").Add(x()).Dot(c.Name).Call())))
			}
			cases[i] = jen.Case(jen.Lit(i)).Block(jen.Return(jen.Qual(wavePath, "Variant").Values(fields...)))
		}
		return []jen.Code{
			jen.Switch(x().Dot("Tag").Call()).Block(cases...),
			jen.Panic(jen.Qual(guestPath, "UnknownTag").Call(jen.Lit(d.WitName), jen.Uint64().Call(x().Dot("Tag").Call()))),
		}
	case catalog.KindFlag:
		body := []jen.Code{jen.Var().Id("labels").Index().String()}
		for _, l := range d.Flags {
			body = append(body, jen.If(x().Op("&").Add(g.qual(d.Pkg, l.Name)).Op("!=").Lit(0)).Block(
				jen.Id("labels").Op("=").Append(jen.Id("labels"), jen.Lit(l.WitName)),
			))
		}
		return append(body, jen.Return(jen.Qual(wavePath, "Flags").Values(jen.Id("Labels").Op(":").Id("labels"))))
	}
	return []jen.Code{jen.Return(g.toValue(d.Under, g.goType(d.Under).Call(x())))}
}

func handle(id jen.Code, borrowed bool) *jen.Statement {
	return jen.Qual(wavePath, "Handle").Values(
		jen.Id("ID").Op(":").Add(id),
		jen.Id("Borrowed").Op(":").Lit(borrowed),
	)
}

func tupleField(i int) string {
	return "F" + strconv.Itoa(i)
}

// resourceID renders the id a handle x of resource d is logged under.
// Imported handles are their own id when recording; mocking halves log
// the recorded id a mock accessor minted them for. Exported handles go
// through the box table in record mode and the mock table otherwise.
func (g *Generator) resourceID(d *catalog.TypeDef, x *jen.Statement) jen.Code {
	if !d.Exported {
		if g.opts.Mode == proxy.Record {
			return jen.Uint32().Call(x)
		}
		return g.use(varMocks).Dot("HandleID").Call(jen.Uint32().Call(x))
	}
	return g.repID(x.Dot("ResourceRep").Call())
}

// repID maps the rep of an exported resource to its logged id.
func (g *Generator) repID(rep jen.Code) jen.Code {
	if g.opts.Mode == proxy.Record {
		return g.use(varBoxes).Dot("Get").Call(jen.Uint32().Call(rep))
	}
	return g.use(varMocks).Dot("ID").Call(jen.Uint32().Call(rep))
}

// fromValue renders an expression of type t decoded from the wave.Value v.
func (g *Generator) fromValue(t catalog.TypeRef, v jen.Code) *jen.Statement {
	if p, ok := t.(catalog.Prim); ok {
		return jen.Id(string(p)).Call(jen.Add(v).Assert(jen.Qual(wavePath, primWave[p])))
	}
	name := g.helper(kindFrom, t, func(name string) jen.Code {
		return jen.Func().Id(name).Params(jen.Id("v").Qual(wavePath, "Value")).Add(g.goType(t)).
			Block(g.fromValueBody(t)...)
	})
	return jen.Id(name).Call(v)
}

func (g *Generator) fromValueBody(t catalog.TypeRef) []jen.Code {
	v := func() *jen.Statement { return jen.Id("v") }
	switch t := t.(type) {
	case catalog.List:
		out := jen.Id("out")
		if !t.Slice {
			out = jen.Qual(cmPath, "ToList").Call(jen.Id("out"))
		}
		return []jen.Code{
			jen.Id("l").Op(":=").Add(v()).Assert(jen.Qual(wavePath, "List")),
			jen.Id("out").Op(":=").Make(jen.Index().Add(g.goType(t.Elem)), jen.Len(jen.Id("l").Dot("Elems"))),
			jen.For(jen.List(jen.Id("i"), jen.Id("e")).Op(":=").Range().Id("l").Dot("Elems")).Block(
				jen.Id("out").Index(jen.Id("i")).Op("=").Add(g.fromValue(t.Elem, jen.Id("e"))),
			),
			jen.Return(out),
		}
	case catalog.Option:
		return []jen.Code{
			jen.Id("o").Op(":=").Add(v()).Assert(jen.Qual(wavePath, "Option")),
			jen.If(jen.Op("!").Id("o").Dot("Some").Call()).Block(
				jen.Return(jen.Qual(cmPath, "None").Types(g.goType(t.Elem)).Call()),
			),
			jen.Return(jen.Qual(cmPath, "Some").Types(g.goType(t.Elem)).Call(g.fromValue(t.Elem, jen.Id("o").Dot("Value")))),
		}
	case catalog.Result:
		if t.Shape == nil {
			return []jen.Code{jen.Return(jen.Qual(cmPath, "BoolResult").Call(
				jen.Add(v()).Assert(jen.Qual(wavePath, "Result")).Dot("IsErr"),
			))}
		}
		payload := func(side catalog.TypeRef) jen.Code {
			if side == nil {
				return jen.Struct().Values()
			}
			return g.fromValue(side, jen.Id("r").Dot("Payload"))
		}
		return []jen.Code{
			jen.Id("r").Op(":=").Add(v()).Assert(jen.Qual(wavePath, "Result")),
			jen.If(jen.Id("r").Dot("IsErr")).Block(
				jen.Return(jen.Qual(cmPath, "Err").Types(g.goType(t)).Call(payload(t.Err))),
			),
			jen.Return(jen.Qual(cmPath, "OK").Types(g.goType(t)).Call(payload(t.OK))),
		}
	case catalog.Tuple:
		fields := make([]jen.Code, len(t.Elems))
		for i, e := range t.Elems {
			fields[i] = jen.Id(tupleField(i)).Op(":").Add(g.fromValue(e, jen.Id("t").Dot("Elems").Index(jen.Lit(i))))
		}
		return []jen.Code{
			jen.Id("t").Op(":=").Add(v()).Assert(jen.Qual(wavePath, "Tuple")),
			jen.Return(g.goType(t).Values(fields...)),
		}
	case catalog.Rep:
		return []jen.Code{jen.Return(jen.Qual(cmPath, "Rep").Call(
			g.use(varMocks).Dot("New").Call(jen.Add(v()).Assert(jen.Qual(wavePath, "Handle")).Dot("ID")),
		))}
	case catalog.Named:
		return g.fromValueNamed(t, g.lookup(t))
	}
	return []jen.Code{jen.Panic(jen.Lit("unsupported type"))}
}

func (g *Generator) fromValueNamed(n catalog.Named, d *catalog.TypeDef) []jen.Code {
	v := func() *jen.Statement { return jen.Id("v") }
	switch d.Kind {
	case catalog.KindResource:
		return g.mockResource(n, d, jen.Add(v()).Assert(jen.Qual(wavePath, "Handle")).Dot("ID"))
	case catalog.KindStruct:
		body := []jen.Code{
			jen.Id("r").Op(":=").Add(v()).Assert(jen.Qual(wavePath, "Record")),
			jen.Var().Id("out").Add(g.qual(d.Pkg, d.Name)),
		}
		for _, f := range d.Fields {
			body = append(body, jen.If(
				jen.List(jen.Id("f"), jen.Id("ok")).Op(":=").Id("r").Dot("Get").Call(jen.Lit(f.WitName)),
				jen.Id("ok"),
			).Block(
				jen.Id("out").Dot(f.Name).Op("=").Add(g.fromValue(f.Type, jen.Id("f"))),
			))
		}
		return append(body, jen.Return(jen.Id("out")))
	case catalog.KindEnum:
		if !d.Variant {
			cases := make([]jen.Code, len(d.Cases))
			for i, c := range d.Cases {
				cases[i] = jen.Case(jen.Lit(c.WitName)).Block(jen.Return(g.qual(d.Pkg, c.Name)))
			}
			return []jen.Code{
				jen.Id("e").Op(":=").Add(v()).Assert(jen.Qual(wavePath, "Enum")),
				jen.Switch(jen.Id("e").Dot("Case")).Block(cases...),
				jen.Panic(jen.Qual(guestPath, "UnknownCase").Call(jen.Lit(d.WitName), jen.Id("e").Dot("Case"))),
			}
		}
		cases := make([]jen.Code, len(d.Cases))
		for i, c := range d.Cases {
			var args []jen.Code
			if c.Payload != nil {
				args = append(args, g.fromValue(c.Payload, jen.Id("x").Dot("Payload")))
			}
			cases[i] = jen.Case(jen.Lit(c.WitName)).Block(jen.Return(g.qual(d.Pkg, d.Name+c.Name).Call(args...)))
		}
		return []jen.Code{
			jen.Id("x").Op(":=").Add(v()).Assert(jen.Qual(wavePath, "Variant")),
			jen.Switch(jen.Id("x").Dot("Case")).Block(cases...),
			jen.Panic(jen.Qual(guestPath, "UnknownCase").Call(jen.Lit(d.WitName), jen.Id("x").Dot("Case"))),
		}
	case catalog.KindFlag:
		cases := make([]jen.Code, 0, len(d.Flags)+1)
		for _, l := range d.Flags {
			cases = append(cases, jen.Case(jen.Lit(l.WitName)).Block(
				jen.Id("out").Op("|=").Add(g.qual(d.Pkg, l.Name)),
			))
		}
		cases = append(cases, jen.Default().Block(
			jen.Panic(jen.Qual(guestPath, "UnknownCase").Call(jen.Lit(d.WitName), jen.Id("l"))),
		))
		return []jen.Code{
			jen.Var().Id("out").Add(g.qual(d.Pkg, d.Name)),
			jen.For(jen.List(jen.Id("_"), jen.Id("l")).Op(":=").Range().Add(v()).Assert(jen.Qual(wavePath, "Flags")).Dot("Labels")).Block(
				jen.Switch(jen.Id("l")).Block(cases...),
			),
			jen.Return(jen.Id("out")),
		}
	}
	return []jen.Code{jen.Return(g.qual(d.Pkg, d.Name).Call(g.fromValue(d.Under, v())))}
}

// mockResource renders statements returning a handle of resource n for
// the recorded or generated id. Resources this half implements get a
// fresh mock rep. Imported resources come from the mock accessor of the
// conversion interface when there is one and are aliased to the id they
// stand for; borrowed ones are dropped when the current call completes.
func (g *Generator) mockResource(n catalog.Named, d *catalog.TypeDef, id jen.Code) []jen.Code {
	if d.Exported {
		return []jen.Code{jen.Return(g.qual(d.Pkg, d.Name+"ResourceNew").Call(
			jen.Qual(cmPath, "Rep").Call(g.use(varMocks).Dot("New").Call(id)),
		))}
	}
	dir, f := g.mockAccessor(d)
	if f == nil {
		return []jen.Code{jen.Return(g.qual(d.Pkg, d.Name).Call(id))}
	}
	handle := jen.Uint32().Call(jen.Id("r"))
	body := []jen.Code{
		jen.Id("id").Op(":=").Add(id),
		jen.Id("r").Op(":=").Add(g.qual(dir, f.Name)).Call(jen.Id("id")),
		g.use(varMocks).Dot("Alias").Call(handle, jen.Id("id")),
	}
	if n.Borrow {
		body = append(body, g.use(varScope).Dot("Track").Call(jen.Func().Params().Block(
			g.use(varMocks).Dot("Unalias").Call(handle),
			jen.Id("r").Dot("ResourceDrop").Call(),
		)))
	}
	return append(body, jen.Return(jen.Id("r")))
}

// mockPrefix starts the WIT name of every mock accessor.
const mockPrefix = "get-mock-"

// mockAccessor finds the imported conversion function that mints a mock
// handle of d.
func (g *Generator) mockAccessor(d *catalog.TypeDef) (string, *catalog.Function) {
	dir, funcs := g.conversions(false)
	for _, f := range funcs {
		if !strings.HasPrefix(f.WitName, mockPrefix) || len(f.Params) != 1 {
			continue
		}
		if n, ok := f.Result.(catalog.Named); ok && n.Pkg == d.Pkg && n.Name == d.Name {
			return dir, f
		}
	}
	return "", nil
}
