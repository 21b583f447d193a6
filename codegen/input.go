package codegen

import (
	"github.com/dave/jennifer/jen"

	"github.com/wippyai/wasm-proxy/catalog"
)

var primArbitrary = map[catalog.Prim]string{
	catalog.Bool:    "Bool",
	catalog.Int8:    "Int8",
	catalog.Int16:   "Int16",
	catalog.Int32:   "Int32",
	catalog.Int64:   "Int64",
	catalog.Uint8:   "Uint8",
	catalog.Uint16:  "Uint16",
	catalog.Uint32:  "Uint32",
	catalog.Uint64:  "Uint64",
	catalog.Float32: "Float32",
	catalog.Float64: "Float64",
	catalog.Rune:    "Char",
	catalog.String:  "Text",
}

// arbitrary renders an expression drawing a value of type t from the
// *arbitrary.Unstructured u.
func (g *Generator) arbitrary(t catalog.TypeRef, u jen.Code) *jen.Statement {
	if p, ok := t.(catalog.Prim); ok {
		return jen.Add(u).Dot(primArbitrary[p]).Call()
	}
	name := g.helper(kindArbitrary, t, func(name string) jen.Code {
		return jen.Func().Id(name).Params(jen.Id("u").Op("*").Qual(arbitraryPath, "Unstructured")).Add(g.goType(t)).
			Block(g.arbitraryBody(t)...)
	})
	return jen.Id(name).Call(u)
}

func (g *Generator) arbitraryBody(t catalog.TypeRef) []jen.Code {
	u := func() *jen.Statement { return jen.Id("u") }
	switch t := t.(type) {
	case catalog.List:
		return []jen.Code{
			jen.Id("out").Op(":=").Make(jen.Index().Add(g.goType(t.Elem)), u().Dot("Length").Call()),
			jen.For(jen.Id("i").Op(":=").Range().Id("out")).Block(
				jen.Id("out").Index(jen.Id("i")).Op("=").Add(g.arbitrary(t.Elem, u())),
			),
			jen.Return(listOf(t, jen.Id("out"))),
		}
	case catalog.Option:
		return []jen.Code{
			jen.If(u().Dot("Bool").Call()).Block(
				jen.Return(jen.Qual(cmPath, "Some").Types(g.goType(t.Elem)).Call(g.arbitrary(t.Elem, u()))),
			),
			jen.Return(jen.Qual(cmPath, "None").Types(g.goType(t.Elem)).Call()),
		}
	case catalog.Result:
		if t.Shape == nil {
			return []jen.Code{jen.Return(jen.Qual(cmPath, "BoolResult").Call(u().Dot("Bool").Call()))}
		}
		return g.chooseResult(t, u().Dot("Bool").Call(), func(side catalog.TypeRef) jen.Code {
			return g.arbitrary(side, u())
		})
	case catalog.Tuple:
		fields := make([]jen.Code, len(t.Elems))
		for i, e := range t.Elems {
			fields[i] = jen.Id(tupleField(i)).Op(":").Add(g.arbitrary(e, u()))
		}
		return []jen.Code{jen.Return(g.goType(t).Values(fields...))}
	case catalog.Rep:
		return []jen.Code{jen.Return(jen.Qual(cmPath, "Rep").Call(g.use(varMocks).Dot("New").Call(u().Dot("Uint32").Call())))}
	case catalog.Named:
		d := g.lookup(t)
		switch d.Kind {
		case catalog.KindResource:
			return g.mockResource(t, d, u().Dot("Uint32").Call())
		case catalog.KindStruct:
			fields := make([]jen.Code, len(d.Fields))
			for i, f := range d.Fields {
				fields[i] = jen.Id(f.Name).Op(":").Add(g.arbitrary(f.Type, u()))
			}
			return []jen.Code{jen.Return(g.qual(d.Pkg, d.Name).Values(fields...))}
		case catalog.KindEnum:
			last := jen.Lit(len(d.Cases) - 1)
			if !d.Variant {
				return []jen.Code{jen.Return(g.qual(d.Pkg, d.Name).Call(u().Dot("IntInRange").Call(jen.Lit(0), last)))}
			}
			return g.chooseCase(d, u().Dot("IntInRange").Call(jen.Lit(0), last), func(c catalog.TypeRef) jen.Code {
				return g.arbitrary(c, u())
			})
		case catalog.KindFlag:
			body := []jen.Code{jen.Var().Id("out").Add(g.qual(d.Pkg, d.Name))}
			for _, l := range d.Flags {
				body = append(body, jen.If(u().Dot("Bool").Call()).Block(
					jen.Id("out").Op("|=").Add(g.qual(d.Pkg, l.Name)),
				))
			}
			return append(body, jen.Return(jen.Id("out")))
		}
		return []jen.Code{jen.Return(g.qual(d.Pkg, d.Name).Call(g.arbitrary(d.Under, u())))}
	}
	return []jen.Code{jen.Panic(jen.Lit("unsupported type"))}
}

// chooseResult renders an err/ok branch on cond with payloads from gen.
func (g *Generator) chooseResult(t catalog.Result, cond jen.Code, gen func(catalog.TypeRef) jen.Code) []jen.Code {
	payload := func(side catalog.TypeRef) jen.Code {
		if side == nil {
			return jen.Struct().Values()
		}
		return gen(side)
	}
	return []jen.Code{
		jen.If(cond).Block(
			jen.Return(jen.Qual(cmPath, "Err").Types(g.goType(t)).Call(payload(t.Err))),
		),
		jen.Return(jen.Qual(cmPath, "OK").Types(g.goType(t)).Call(payload(t.OK))),
	}
}

// chooseCase renders a switch over the case index idx of variant d.
func (g *Generator) chooseCase(d *catalog.TypeDef, idx jen.Code, gen func(catalog.TypeRef) jen.Code) []jen.Code {
	cases := make([]jen.Code, len(d.Cases))
	for i, c := range d.Cases {
		var args []jen.Code
		if c.Payload != nil {
			args = append(args, gen(c.Payload))
		}
		cases[i] = jen.Case(jen.Lit(i)).Block(jen.Return(g.qual(d.Pkg, d.Name+c.Name).Call(args...)))
	}
	return []jen.Code{
		jen.Id("i").Op(":=").Add(idx),
		jen.Switch(jen.Id("i")).Block(cases...),
		jen.Panic(jen.Qual(guestPath, "UnknownTag").Call(jen.Lit(d.WitName), jen.Uint64().Call(jen.Id("i")))),
	}
}

func listOf(t catalog.List, out jen.Code) jen.Code {
	if t.Slice {
		return out
	}
	return jen.Qual(cmPath, "ToList").Call(out)
}

// dialog renders an expression reading a value of type t at nesting
// depth dep from the dialog interface.
func (g *Generator) dialog(t catalog.TypeRef, dep jen.Code) *jen.Statement {
	if p, ok := t.(catalog.Prim); ok {
		read := g.controlFunc(dialogIface, "read-"+p.WIT()).Call(dep)
		return g.fromValue(p, jen.Qual(wavePath, "MustParse").Call(g.valueType(p), read))
	}
	name := g.helper(kindDialog, t, func(name string) jen.Code {
		return jen.Func().Id(name).Params(jen.Id("dep").Uint32()).Add(g.goType(t)).
			Block(g.dialogBody(t)...)
	})
	return jen.Id(name).Call(dep)
}

// choice renders a ReadSelect call over labels at depth dep.
func (g *Generator) choice(prompt string, labels []string, dep jen.Code) *jen.Statement {
	opts := make([]jen.Code, len(labels))
	for i, l := range labels {
		opts[i] = jen.Lit(l)
	}
	return g.controlFunc(dialogIface, "read-select").Call(
		jen.Lit(prompt),
		jen.Qual(cmPath, "ToList").Call(jen.Index().String().Values(opts...)),
		dep,
	)
}

func (g *Generator) dialogBody(t catalog.TypeRef) []jen.Code {
	dep := func() *jen.Statement { return jen.Id("dep") }
	next := func() *jen.Statement { return jen.Id("dep").Op("+").Lit(1) }
	say := func(s jen.Code) jen.Code {
		return g.controlFunc(dialogIface, "print").Call(s)
	}
	switch t := t.(type) {
	case catalog.List:
		n := g.controlFunc(dialogIface, "read-u32").Call(dep())
		return []jen.Code{
			jen.Id("out").Op(":=").Make(jen.Index().Add(g.goType(t.Elem)), jen.Qual(guestPath, "Length").Call(n)),
			jen.For(jen.Id("i").Op(":=").Range().Id("out")).Block(
				jen.Id("out").Index(jen.Id("i")).Op("=").Add(g.dialog(t.Elem, next())),
			),
			jen.Return(listOf(t, jen.Id("out"))),
		}
	case catalog.Option:
		return []jen.Code{
			jen.If(g.choice("option", []string{"none", "some"}, dep()).Op("==").Lit(1)).Block(
				jen.Return(jen.Qual(cmPath, "Some").Types(g.goType(t.Elem)).Call(g.dialog(t.Elem, next()))),
			),
			jen.Return(jen.Qual(cmPath, "None").Types(g.goType(t.Elem)).Call()),
		}
	case catalog.Result:
		cond := g.choice("result", []string{"ok", "err"}, dep()).Op("==").Lit(1)
		if t.Shape == nil {
			return []jen.Code{jen.Return(jen.Qual(cmPath, "BoolResult").Call(cond))}
		}
		return g.chooseResult(t, cond, func(side catalog.TypeRef) jen.Code {
			return g.dialog(side, next())
		})
	case catalog.Tuple:
		fields := make([]jen.Code, len(t.Elems))
		for i, e := range t.Elems {
			fields[i] = jen.Id(tupleField(i)).Op(":").Add(g.dialog(e, next()))
		}
		return []jen.Code{jen.Return(g.goType(t).Values(fields...))}
	case catalog.Rep:
		return []jen.Code{jen.Return(jen.Qual(cmPath, "Rep").Call(g.use(varMocks).Dot("New").Call(g.dialog(catalog.Uint32, dep()))))}
	case catalog.Named:
		d := g.lookup(t)
		switch d.Kind {
		case catalog.KindResource:
			return g.mockResource(t, d, g.dialog(catalog.Uint32, dep()))
		case catalog.KindStruct:
			body := []jen.Code{jen.Var().Id("out").Add(g.qual(d.Pkg, d.Name))}
			for _, f := range d.Fields {
				body = append(body,
					say(jen.Qual(guestPath, "Field").Call(dep(), jen.Lit(f.WitName))),
					jen.Id("out").Dot(f.Name).Op("=").Add(g.dialog(f.Type, next())),
				)
			}
			return append(body, jen.Return(jen.Id("out")))
		case catalog.KindEnum:
			labels := make([]string, len(d.Cases))
			for i, c := range d.Cases {
				labels[i] = c.WitName
			}
			pick := g.choice(d.WitName, labels, dep())
			if d.Variant {
				return g.chooseCase(d, pick, func(c catalog.TypeRef) jen.Code {
					return g.dialog(c, next())
				})
			}
			cases := make([]jen.Code, len(d.Cases))
			for i, c := range d.Cases {
				cases[i] = jen.Case(jen.Lit(i)).Block(jen.Return(g.qual(d.Pkg, c.Name)))
			}
			return []jen.Code{
				jen.Id("i").Op(":=").Add(pick),
				jen.Switch(jen.Id("i")).Block(cases...),
				jen.Panic(jen.Qual(guestPath, "UnknownTag").Call(jen.Lit(d.WitName), jen.Uint64().Call(jen.Id("i")))),
			}
		case catalog.KindFlag:
			body := []jen.Code{jen.Var().Id("out").Add(g.qual(d.Pkg, d.Name))}
			for _, l := range d.Flags {
				body = append(body,
					say(jen.Qual(guestPath, "Field").Call(dep(), jen.Lit(l.WitName))),
					jen.If(g.dialog(catalog.Bool, next())).Block(
						jen.Id("out").Op("|=").Add(g.qual(d.Pkg, l.Name)),
					),
				)
			}
			return append(body, jen.Return(jen.Id("out")))
		}
		return []jen.Code{jen.Return(g.qual(d.Pkg, d.Name).Call(g.dialog(d.Under, dep())))}
	}
	return []jen.Code{jen.Panic(jen.Lit("unsupported type"))}
}
