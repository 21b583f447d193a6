package codegen

import (
	"strconv"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/errors"
)

// record wraps every selected export around its counterpart import and
// logs arguments and results as seen on the inner side.
func (g *Generator) record() {
	isExport := g.opts.Side == Exports
	for _, e := range g.targets(true) {
		for _, f := range e.Funcs {
			g.recordWrapper(e, f, isExport)
		}
	}
	if g.opts.Side == Imports {
		g.recordConversions()
	}
}

func (g *Generator) recordWrapper(e *catalog.Entry, f *catalog.Function, isExport bool) {
	inner, _, err := g.cat.ProxyPath(e.Path)
	if err != nil {
		g.fail(err)
		return
	}
	params, result := g.signature(f)
	if f.Kind == catalog.Destructor {
		g.init(g.exportsField(e, f).Op("=").Add(funcLit(params, nil, g.recordDestructor(e)...)))
		return
	}
	cf, ok := g.cat.FindFunction(inner, e.Resource, f.WitName)
	if !ok {
		g.fail(errors.New(errors.PhaseGenerate, errors.KindNotFound).
			Path(inner...).
			Detail("no counterpart for %s", g.funcName(e, f)).
			Build())
		return
	}
	if len(cf.Params) != len(f.Params) || (cf.Result == nil) != (f.Result == nil) {
		g.fail(errors.SchemaMismatch(errors.PhaseGenerate, inner, f.WitName,
			"counterpart signature "+cf.String()+" does not match "+f.String()))
		return
	}

	name := g.funcName(e, f)
	var (
		body []jen.Code
		vals []jen.Code
		args []jen.Code
	)
	if f.Self != nil {
		body = append(body, jen.Id("hself").Op(":=").Add(g.proxy(f.Self.Type, jen.Id("self"))))
		vals = append(vals, g.toValue(g.counterpart(f.Self.Type), jen.Id("hself")))
	}
	for i, p := range f.Params {
		h := "h" + strconv.Itoa(i)
		body = append(body, jen.Id(h).Op(":=").Add(g.proxy(p.Type, jen.Id(paramName(i)))))
		vals = append(vals, g.toValue(g.counterpart(p.Type), jen.Id(h)))
		args = append(args, jen.Id(h))
	}
	body = append(body, g.controlFunc(recordIface, "record-args").Call(
		jen.Qual(guestPath, "Name").Call(jen.Lit(name)),
		jen.Qual(guestPath, "Texts").Call(vals...),
		jen.Lit(isExport),
	))

	var call *jen.Statement
	if cf.Kind == catalog.Method {
		if f.Self == nil {
			g.fail(errors.SchemaMismatch(errors.PhaseGenerate, inner, f.WitName, "method counterpart of a non-method"))
			return
		}
		call = jen.Id("hself").Dot(cf.Name).Call(args...)
	} else {
		call = g.qual(dirOf(inner), cf.Name).Call(args...)
	}

	recordRet := func(v jen.Code) jen.Code {
		return g.controlFunc(recordIface, "record-ret").Call(
			jen.Qual(guestPath, "Name").Call(jen.Lit(name)),
			jen.Qual(guestPath, "Text").Call(v),
			jen.Lit(isExport),
		)
	}
	if f.Result == nil {
		body = append(body, call, recordRet(jen.Nil()))
	} else {
		body = append(body,
			jen.Id("ret").Op(":=").Add(call),
			recordRet(g.toValue(cf.Result, jen.Id("ret"))),
			jen.Return(g.proxy(cf.Result, jen.Id("ret"))),
		)
	}
	g.init(g.exportsField(e, f).Op("=").Add(funcLit(params, result, body...)))
}

// recordDestructor releases the inner handle boxed under the rep.
func (g *Generator) recordDestructor(e *catalog.Entry) []jen.Code {
	o := g.other(g.repDef(catalog.Rep{Pkg: dirOf(e.Path), Resource: e.Resource}))
	return []jen.Code{
		jen.If(
			jen.List(jen.Id("h"), jen.Id("ok")).Op(":=").Add(g.use(varBoxes)).Dot("Take").Call(jen.Uint32().Call(jen.Id("self"))),
			jen.Id("ok"),
		).Block(
			g.qual(o.Pkg, o.Name).Call(jen.Id("h")).Dot("ResourceDrop").Call(),
		),
	}
}

// recordConversions implements the conversion exports of the imports
// half: each moves one handle between the host and the wrapped type.
func (g *Generator) recordConversions() {
	dir, funcs := g.conversions(true)
	for _, f := range funcs {
		if len(f.Params) != 1 || f.Result == nil {
			g.fail(errors.UnsupportedItem(errors.PhaseGenerate, f.String(), "conversion function"))
			return
		}
		params, result := g.signature(f)
		g.init(g.qual(dir, "Exports").Dot(f.Name).Op("=").Add(funcLit(params, result,
			jen.Return(g.proxy(f.Params[0].Type, jen.Id(paramName(0)))),
		)))
		Logger().Debug("conversion", zap.String("func", f.WitName))
	}
}
