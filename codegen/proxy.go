package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/errors"
)

// counterpart maps t to the type it has on the other side of the
// boundary. Borrowed reps become borrowed handles.
func (g *Generator) counterpart(t catalog.TypeRef) catalog.TypeRef {
	switch v := t.(type) {
	case nil, catalog.Prim:
		return t
	case catalog.Named:
		o := g.other(g.lookup(v))
		return catalog.Named{Pkg: o.Pkg, Name: o.Name, Borrow: v.Borrow}
	case catalog.Rep:
		o := g.other(g.repDef(v))
		return catalog.Named{Pkg: o.Pkg, Name: o.Name, Borrow: true}
	case catalog.List:
		v.Elem = g.counterpart(v.Elem)
		return v
	case catalog.Option:
		v.Elem = g.counterpart(v.Elem)
		return v
	case catalog.Result:
		v.Shape = g.counterpart(v.Shape)
		v.OK = g.counterpart(v.OK)
		v.Err = g.counterpart(v.Err)
		return v
	case catalog.Tuple:
		elems := make([]catalog.TypeRef, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = g.counterpart(e)
		}
		v.Elems = elems
		return v
	}
	return t
}

func (g *Generator) other(d *catalog.TypeDef) *catalog.TypeDef {
	o, err := g.cat.Counterpart(d)
	if err != nil {
		g.fail(err)
		return d
	}
	return o
}

// proxy renders x of type t converted to its counterpart type.
func (g *Generator) proxy(t catalog.TypeRef, x jen.Code) *jen.Statement {
	if !crossesBoundary(t) {
		return jen.Add(x)
	}
	name := g.helper(kindProxy, t, func(name string) jen.Code {
		return jen.Func().Id(name).Params(jen.Id("x").Add(g.goType(t))).Add(g.goType(g.counterpart(t))).
			Block(g.proxyBody(t)...)
	})
	return jen.Id(name).Call(x)
}

func (g *Generator) proxyBody(t catalog.TypeRef) []jen.Code {
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
			jen.Id("out").Op(":=").Make(jen.Index().Add(g.goType(g.counterpart(t.Elem))), jen.Len(jen.Id(src))),
			jen.For(jen.List(jen.Id("i"), jen.Id("e")).Op(":=").Range().Id(src)).Block(
				jen.Id("out").Index(jen.Id("i")).Op("=").Add(g.proxy(t.Elem, jen.Id("e"))),
			),
			jen.Return(listOf(t, jen.Id("out"))),
		)
	case catalog.Option:
		elem := g.goType(g.counterpart(t.Elem))
		return []jen.Code{
			jen.If(jen.Id("v").Op(":=").Add(x()).Dot("Some").Call(), jen.Id("v").Op("!=").Nil()).Block(
				jen.Return(jen.Qual(cmPath, "Some").Types(elem).Call(g.proxy(t.Elem, jen.Op("*").Id("v")))),
			),
			jen.Return(jen.Qual(cmPath, "None").Types(g.goType(g.counterpart(t.Elem))).Call()),
		}
	case catalog.Result:
		dst := g.goType(g.counterpart(t))
		payload := func(side catalog.TypeRef, accessor string) jen.Code {
			if side == nil {
				return jen.Struct().Values()
			}
			return g.proxy(side, jen.Op("*").Add(x()).Dot(accessor).Call())
		}
		return []jen.Code{
			jen.If(x().Dot("IsErr").Call()).Block(
				jen.Return(jen.Qual(cmPath, "Err").Types(dst).Call(payload(t.Err, "Err"))),
			),
			jen.Return(jen.Qual(cmPath, "OK").Types(g.goType(g.counterpart(t))).Call(payload(t.OK, "OK"))),
		}
	case catalog.Tuple:
		fields := make([]jen.Code, len(t.Elems))
		for i, e := range t.Elems {
			fields[i] = jen.Id(tupleField(i)).Op(":").Add(g.proxy(e, x().Dot(tupleField(i))))
		}
		return []jen.Code{jen.Return(g.goType(g.counterpart(t)).Values(fields...))}
	case catalog.Rep:
		o := g.other(g.repDef(t))
		return []jen.Code{jen.Return(g.qual(o.Pkg, o.Name).Call(
			g.use(varBoxes).Dot("Get").Call(jen.Uint32().Call(x())),
		))}
	case catalog.Named:
		return g.proxyNamed(t, g.lookup(t))
	}
	return []jen.Code{jen.Panic(jen.Lit("unsupported type"))}
}

func (g *Generator) proxyNamed(n catalog.Named, d *catalog.TypeDef) []jen.Code {
	x := func() *jen.Statement { return jen.Id("x") }
	o := g.other(d)
	dst := func(name string) *jen.Statement { return g.qual(o.Pkg, name) }
	switch d.Kind {
	case catalog.KindResource:
		return g.proxyResource(n, d, o)
	case catalog.KindStruct:
		fields := make([]jen.Code, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = jen.Id(f.Name).Op(":").Add(g.proxy(f.Type, x().Dot(f.Name)))
		}
		return []jen.Code{jen.Return(dst(o.Name).Values(fields...))}
	case catalog.KindEnum:
		if !d.Variant {
			return []jen.Code{jen.Return(dst(o.Name).Call(x()))}
		}
		cases := make([]jen.Code, len(d.Cases))
		for i, c := range d.Cases {
			var args []jen.Code
			if c.Payload != nil {
				args = append(args, g.proxy(c.Payload, jen.Op("*").Add(x()).Dot(c.Name).Call()))
			}
			cases[i] = jen.Case(jen.Lit(i)).Block(jen.Return(dst(o.Name + c.Name).Call(args...)))
		}
		return []jen.Code{
			jen.Switch(x().Dot("Tag").Call()).Block(cases...),
			jen.Panic(jen.Qual(guestPath, "UnknownTag").Call(jen.Lit(d.WitName), jen.Uint64().Call(x().Dot("Tag").Call()))),
		}
	case catalog.KindFlag:
		return []jen.Code{jen.Return(dst(o.Name).Call(x()))}
	}
	return []jen.Code{jen.Return(dst(o.Name).Call(g.proxy(d.Under, g.goType(d.Under).Call(x()))))}
}

// proxyResource moves a handle across the boundary.
//
//	imported to exported  box the handle and mint an exported handle
//	exported to imported  unbox; an owned handle is taken out and dropped
//	imported to imported  call the conversion import
func (g *Generator) proxyResource(n catalog.Named, d, o *catalog.TypeDef) []jen.Code {
	x := func() *jen.Statement { return jen.Id("x") }
	switch {
	case !d.Exported && o.Exported:
		return []jen.Code{jen.Return(g.qual(o.Pkg, o.Name+"ResourceNew").Call(
			jen.Qual(cmPath, "Rep").Call(g.use(varBoxes).Dot("Insert").Call(jen.Uint32().Call(x()))),
		))}
	case d.Exported && !o.Exported:
		rep := jen.Uint32().Call(x().Dot("ResourceRep").Call())
		if n.Borrow {
			return []jen.Code{jen.Return(g.qual(o.Pkg, o.Name).Call(g.use(varBoxes).Dot("Get").Call(rep)))}
		}
		return []jen.Code{
			jen.List(jen.Id("h"), jen.Id("_")).Op(":=").Add(g.use(varBoxes)).Dot("Take").Call(rep),
			x().Dot("ResourceDrop").Call(),
			jen.Return(g.qual(o.Pkg, o.Name).Call(jen.Id("h"))),
		}
	case !d.Exported && !o.Exported:
		dir, f := g.conversion(d, o)
		if f == nil {
			g.fail(errors.NotFound(errors.PhaseGenerate, "conversion", d.Pkg+"."+d.Name))
			return []jen.Code{jen.Panic(jen.Lit("no conversion"))}
		}
		return []jen.Code{jen.Return(g.qual(dir, f.Name).Call(x()))}
	}
	g.fail(errors.New(errors.PhaseGenerate, errors.KindUnsupportedItem).
		Path(d.Pkg, d.Name).
		WitType(d.WitName).
		Detail("resource exported on both sides").
		Build())
	return []jen.Code{jen.Panic(jen.Lit("unsupported"))}
}

// conversion finds the imported conversion function from d to o.
func (g *Generator) conversion(d, o *catalog.TypeDef) (string, *catalog.Function) {
	dir, funcs := g.conversions(false)
	for _, f := range funcs {
		if len(f.Params) != 1 {
			continue
		}
		in, ok := plain(f.Params[0].Type).(catalog.Named)
		if !ok || in.Pkg != d.Pkg || in.Name != d.Name {
			continue
		}
		if out, ok := f.Result.(catalog.Named); ok && out.Pkg == o.Pkg && out.Name == o.Name {
			return dir, f
		}
	}
	return "", nil
}
