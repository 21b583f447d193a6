package codegen

import (
	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/catalog"
)

// target is one function the exports half can call on the component.
type target struct {
	entry *catalog.Entry
	fn    *catalog.Function
	name  string
}

// mockExports assigns the start-replay export, which drives the
// component's exports until the trace, the rounds or the user run out.
func (g *Generator) mockExports() {
	var all []target
	for _, e := range g.targets(false) {
		for _, f := range e.Funcs {
			if f.Kind == catalog.Destructor {
				continue
			}
			all = append(all, target{entry: e, fn: f, name: g.funcName(e, f)})
		}
	}

	var body []jen.Code
	switch g.opts.Mode {
	case proxy.Replay:
		body = g.replayDriver(all)
	case proxy.Fuzz:
		body = g.fuzzDriver(g.drivable(all))
	case proxy.Dialog:
		body = g.dialogDriver(g.drivable(all))
	}
	start := g.qual(g.control(startReplayIface), "Exports").Dot("Start")
	g.init(start.Op("=").Func().Params().Block(body...))
}

// drivable drops the functions the exports half cannot call with made-up
// arguments: methods, and anything taking a handle it cannot mint.
func (g *Generator) drivable(all []target) []target {
	var out []target
	for _, t := range all {
		if t.fn.Self != nil || t.fn.Kind == catalog.Method {
			Logger().Debug("not driving method", zap.String("func", t.name))
			continue
		}
		ok := true
		for _, p := range t.fn.Params {
			catalog.Walk(p.Type, func(ref catalog.TypeRef) {
				switch ref := ref.(type) {
				case catalog.Rep:
					ok = false
				case catalog.Named:
					d := g.lookup(ref)
					if d.Kind != catalog.KindResource || d.Exported {
						return
					}
					if _, f := g.mockAccessor(d); f == nil {
						ok = false
					}
				}
			})
		}
		if !ok {
			Logger().Info("not driving function without mockable arguments", zap.String("func", t.name))
			continue
		}
		out = append(out, t)
	}
	return out
}

// invoke renders the call of t with arguments p0, p1 and so on, the
// receiver being self.
func (g *Generator) invoke(t target) *jen.Statement {
	args := make([]jen.Code, len(t.fn.Params))
	for i := range t.fn.Params {
		args[i] = jen.Id(paramName(i))
	}
	if t.fn.Kind == catalog.Method {
		return jen.Id("self").Dot(t.fn.Name).Call(args...)
	}
	return g.qual(dirOf(t.entry.Path), t.fn.Name).Call(args...)
}

// values renders the arguments of t as wave values, receiver first.
func (g *Generator) values(t target) []jen.Code {
	var vals []jen.Code
	if t.fn.Self != nil {
		vals = append(vals, g.toValue(t.fn.Self.Type, jen.Id("self")))
	}
	for i, p := range t.fn.Params {
		vals = append(vals, g.toValue(p.Type, jen.Id(paramName(i))))
	}
	return vals
}

// ownedResult reports whether t returns a handle the driver owns and
// must drop after the call.
func (g *Generator) ownedResult(t target) bool {
	n, ok := t.fn.Result.(catalog.Named)
	if !ok || n.Borrow {
		return false
	}
	d := g.lookup(n)
	return d.Kind == catalog.KindResource && !d.Exported
}

func (g *Generator) replayDriver(all []target) []jen.Code {
	cases := make([]jen.Code, 0, len(all)+1)
	needArgs := false
	for _, t := range all {
		if t.fn.Self != nil || len(t.fn.Params) > 0 {
			needArgs = true
		}
		var body []jen.Code
		i := 0
		arg := func(ref catalog.TypeRef) jen.Code {
			v := jen.Qual(guestPath, "Arg").Call(g.valueType(ref), jen.Id("name"), jen.Id("args"), jen.Lit(i))
			i++
			return g.fromValue(ref, v)
		}
		if t.fn.Self != nil {
			body = append(body, jen.Id("self").Op(":=").Add(arg(t.fn.Self.Type)))
		}
		for j, p := range t.fn.Params {
			body = append(body, jen.Id(paramName(j)).Op(":=").Add(arg(p.Type)))
		}
		assert := func(v jen.Code) jen.Code {
			return g.controlFunc(replayIface, "assert-export-ret").Call(
				jen.Qual(guestPath, "Name").Call(jen.Id("name")),
				jen.Qual(guestPath, "Text").Call(v),
			)
		}
		if t.fn.Result == nil {
			body = append(body, g.invoke(t), assert(jen.Nil()))
		} else {
			body = append(body,
				jen.Id("ret").Op(":=").Add(g.invoke(t)),
				assert(g.toValue(t.fn.Result, jen.Id("ret"))),
			)
		}
		cases = append(cases, jen.Case(jen.Lit(t.name)).Block(body...))
	}
	cases = append(cases, jen.Default().Block(
		jen.Panic(jen.Qual(guestPath, "UnknownFunction").Call(jen.Id("name"))),
	))

	unpack := jen.Id("name").Op(":=").Id("call").Dot("F0")
	if needArgs {
		unpack = jen.List(jen.Id("name"), jen.Id("args")).Op(":=").
			List(jen.Id("call").Dot("F0"), jen.Id("call").Dot("F1").Dot("Slice").Call())
	}
	return []jen.Code{
		jen.For().Block(
			jen.Id("next").Op(":=").Add(g.controlFunc(replayIface, "replay-export")).Call(),
			jen.Id("call").Op(":=").Id("next").Dot("Some").Call(),
			jen.If(jen.Id("call").Op("==").Nil()).Block(jen.Return()),
			unpack,
			g.use(varScope).Dot("With").Call(jen.Func().Params().Block(
				jen.Switch(jen.Id("name")).Block(cases...),
			)),
		),
	}
}

// driven renders one driven call: arguments from gen, the call printed
// through show, the result printed and owned handles released.
func (g *Generator) driven(t target, gen func(catalog.TypeRef) jen.Code, show func(jen.Code) jen.Code) []jen.Code {
	var body []jen.Code
	for i, p := range t.fn.Params {
		body = append(body, jen.Id(paramName(i)).Op(":=").Add(gen(p.Type)))
	}
	vals := g.values(t)
	body = append(body, show(jen.Qual(guestPath, "Call").Call(append([]jen.Code{jen.Lit("export"), jen.Lit(t.name)}, vals...)...)))
	if t.fn.Result == nil {
		return append(body, g.invoke(t), show(jen.Qual(guestPath, "Returned").Call(jen.Nil())))
	}
	body = append(body, jen.Id("ret").Op(":=").Add(g.invoke(t)))
	if g.ownedResult(t) {
		body = append(body, g.use(varScope).Dot("Track").Call(jen.Id("ret").Dot("ResourceDrop")))
	}
	return append(body, show(jen.Qual(guestPath, "Returned").Call(g.toValue(t.fn.Result, jen.Id("ret")))))
}

func (g *Generator) fuzzDriver(targets []target) []jen.Code {
	show := func(v jen.Code) jen.Code {
		return g.controlFunc(debugIface, "print").Call(v)
	}
	if len(targets) == 0 {
		return []jen.Code{show(jen.Lit("no exports to fuzz"))}
	}
	cases := make([]jen.Code, len(targets))
	for i, t := range targets {
		body := g.driven(t, func(ref catalog.TypeRef) jen.Code {
			return g.arbitrary(ref, jen.Id("u"))
		}, show)
		cases[i] = jen.Case(jen.Lit(i + 1)).Block(body...)
	}
	return []jen.Code{
		jen.Id("u").Op(":=").Qual(guestPath, "Seed").Call(g.controlFunc(debugIface, "get-random").Call()),
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Qual(guestPath, "FuzzRounds"), jen.Id("i").Op("++")).Block(
			g.use(varScope).Dot("With").Call(jen.Func().Params().Block(
				jen.Switch(jen.Id("u").Dot("IntInRange").Call(jen.Lit(1), jen.Lit(len(targets)))).Block(cases...),
			)),
		),
	}
}

// quit is the dialog option that ends the session before the rounds run
// out.
const quit = "quit"

func (g *Generator) dialogDriver(targets []target) []jen.Code {
	show := func(v jen.Code) jen.Code {
		return g.controlFunc(dialogIface, "print").Call(v)
	}
	names := make([]jen.Code, 0, len(targets)+1)
	cases := make([]jen.Code, 0, len(targets)+1)
	for i, t := range targets {
		names = append(names, jen.Lit(t.name))
		body := g.driven(t, func(ref catalog.TypeRef) jen.Code {
			return g.dialog(ref, jen.Lit(1))
		}, show)
		cases = append(cases, jen.Case(jen.Lit(i)).Block(body...))
	}
	names = append(names, jen.Lit(quit))
	cases = append(cases, jen.Default().Block(jen.Id("done").Op("=").True()))
	return []jen.Code{
		jen.Id("names").Op(":=").Qual(cmPath, "ToList").Call(jen.Index().String().Values(names...)),
		jen.Id("done").Op(":=").False(),
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Qual(guestPath, "FuzzRounds").Op("&&").Op("!").Id("done"), jen.Id("i").Op("++")).Block(
			g.use(varScope).Dot("With").Call(jen.Func().Params().Block(
				jen.Switch(g.controlFunc(dialogIface, "read-select").Call(jen.Lit("export"), jen.Id("names"), jen.Lit(0))).Block(cases...),
			)),
		),
	}
}
