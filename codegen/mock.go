package codegen

import (
	"strings"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/guest"
)

// mockImports answers every selected import of the component without
// reaching the host.
func (g *Generator) mockImports() {
	for _, e := range g.targets(true) {
		for _, f := range e.Funcs {
			g.mockImport(e, f)
		}
	}
	g.mockConversions()
}

func (g *Generator) mockImport(e *catalog.Entry, f *catalog.Function) {
	params, result := g.signature(f)
	if f.Kind == catalog.Destructor {
		g.init(g.exportsField(e, f).Op("=").Add(funcLit(params, nil,
			g.use(varMocks).Dot("Drop").Call(jen.Uint32().Call(jen.Id("self"))),
		)))
		return
	}

	name := g.funcName(e, f)
	var vals []jen.Code
	if f.Self != nil {
		vals = append(vals, g.toValue(f.Self.Type, jen.Id("self")))
	}
	for i, p := range f.Params {
		vals = append(vals, g.toValue(p.Type, jen.Id(paramName(i))))
	}
	exit := guest.IsExit(name)

	var body []jen.Code
	switch g.opts.Mode {
	case proxy.Replay:
		replayed := g.controlFunc(replayIface, "replay-import").Call(
			jen.Qual(guestPath, "Name").Call(jen.Lit(name)),
			jen.Qual(cmPath, "Some").Call(jen.Id("args")),
		)
		body = append(body, jen.Id("args").Op(":=").Qual(guestPath, "Texts").Call(vals...))
		if f.Result != nil && !exit {
			body = append(body, jen.Id("ret").Op(":=").Add(replayed))
		} else {
			body = append(body, replayed)
		}
		if exit {
			body = append(body, jen.Qual(guestPath, "Exit").Call(jen.Id("args")))
		}
		if f.Result != nil {
			if exit {
				body = append(body, jen.Return())
			} else {
				body = append(body, jen.Return(g.fromValue(f.Result,
					jen.Qual(guestPath, "Ret").Call(g.valueType(f.Result), jen.Lit(name), jen.Id("ret")))))
			}
		}

	case proxy.Dialog:
		if f.Result == nil {
			// nothing to ask for; only an exit has an effect
			if exit {
				body = append(body, jen.Qual(guestPath, "Exit").Call(jen.Qual(guestPath, "Texts").Call(vals...)))
			}
			break
		}
		body = g.shownImport(name, vals, exit)
		body = append(body, jen.Return(g.dialog(f.Result, jen.Lit(0))))

	case proxy.Fuzz:
		body = g.shownImport(name, vals, exit)
		if f.Result == nil {
			body = append(body, g.show(jen.Qual(guestPath, "Returned").Call(jen.Nil())))
			break
		}
		body = append(body,
			jen.Id("u").Op(":=").Qual(guestPath, "ImportSeed").Call(jen.Lit(name), jen.Id("vals").Op("...")),
			jen.Id("ret").Op(":=").Add(g.arbitrary(f.Result, jen.Id("u"))),
			g.show(jen.Qual(guestPath, "Returned").Call(g.toValue(f.Result, jen.Id("ret")))),
			jen.Return(jen.Id("ret")),
		)
	}
	g.init(g.exportsField(e, f).Op("=").Add(funcLit(params, result, body...)))
}

// shownImport renders the prologue of a fuzz or dialog import: its
// arguments as vals, the call printed and the guest exited for an exit
// import.
func (g *Generator) shownImport(name string, vals []jen.Code, exit bool) []jen.Code {
	body := []jen.Code{
		jen.Id("vals").Op(":=").Index().Qual(wavePath, "Value").Values(vals...),
		g.show(jen.Qual(guestPath, "Call").Call(jen.Lit("import"), jen.Lit(name), jen.Id("vals").Op("..."))),
	}
	if exit {
		body = append(body, jen.Qual(guestPath, "Exit").Call(jen.Qual(guestPath, "Texts").Call(jen.Id("vals").Op("..."))))
	}
	return body
}

// show prints v through the print function of the mode's utility
// interface.
func (g *Generator) show(v jen.Code) jen.Code {
	if g.opts.Mode == proxy.Dialog {
		return g.controlFunc(dialogIface, "print").Call(v)
	}
	return g.controlFunc(debugIface, "print").Call(v)
}

// mockConversions implements the mock accessors the exports half uses to
// mint handles of resources this half serves.
func (g *Generator) mockConversions() {
	dir, funcs := g.conversions(true)
	for _, f := range funcs {
		n, ok := f.Result.(catalog.Named)
		if !strings.HasPrefix(f.WitName, mockPrefix) || !ok || len(f.Params) != 1 {
			Logger().Warn("skipping conversion", zap.String("func", f.WitName))
			continue
		}
		params, result := g.signature(f)
		g.init(g.qual(dir, "Exports").Dot(f.Name).Op("=").Add(funcLit(params, result,
			g.mockResource(n, g.lookup(n), jen.Id(paramName(0)))...,
		)))
	}
}
