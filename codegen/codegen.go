package codegen

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/errors"
)

const (
	guestPath     = "github.com/wippyai/wasm-proxy/guest"
	wavePath      = "github.com/wippyai/wasm-proxy/wave"
	arbitraryPath = "github.com/wippyai/wasm-proxy/arbitrary"
	cmPath        = "go.bytecodealliance.org/cm"
)

// Interfaces of the proxy: namespace the generated code talks to.
const (
	proxyNamespace   = "proxy:"
	recordIface      = "proxy:recorder/record"
	replayIface      = "proxy:recorder/replay"
	startReplayIface = "proxy:recorder/start-replay"
	debugIface       = "proxy:util/debug"
	dialogIface      = "proxy:util/dialog"
	conversionIface  = "proxy:conversion/conversion"
)

// FileName is the name of the generated source file.
const FileName = "main.go"

// Side selects the proxy half to generate.
type Side uint8

const (
	// Imports is the half that serves the component's imports.
	Imports Side = iota + 1
	// Exports is the half that serves the component's exports.
	Exports
)

func (s Side) String() string {
	switch s {
	case Imports:
		return "imports"
	case Exports:
		return "exports"
	default:
		return "unknown"
	}
}

// ParseSide parses "imports" or "exports".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "imports":
		return Imports, nil
	case "exports":
		return Exports, nil
	}
	return 0, errors.InvalidInput(errors.PhaseGenerate, "unknown side "+s+" (want imports or exports)")
}

// Options configures one generation run.
type Options struct {
	// Interfaces names the original world's imports (imports half) or
	// exports (exports half). Versions and the wrapped- prefix are
	// ignored. Empty selects every interface outside the proxy namespace.
	Interfaces []string
	Mode       proxy.Mode
	Side       Side
}

// File is a generated source file.
type File struct {
	Name   string
	Source []byte
}

// Bytes returns the file content.
func (f *File) Bytes() []byte {
	return f.Source
}

// Generator emits one proxy half. A Generator is single-use.
type Generator struct {
	cat     *catalog.Catalog
	file    *jen.File
	want    map[string]bool
	helpers map[string]string
	taken   map[string]bool
	uses    map[string]bool
	err     error
	opts    Options
	queue   []func()
	decls   []jen.Code
	inits   []jen.Code
}

// New returns a generator for cat.
func New(cat *catalog.Catalog, opts Options) *Generator {
	want := make(map[string]bool, len(opts.Interfaces))
	for _, name := range opts.Interfaces {
		want[catalog.Unwrap(name)] = true
	}
	return &Generator{
		cat:     cat,
		opts:    opts,
		want:    want,
		helpers: make(map[string]string),
		taken:   make(map[string]bool),
		uses:    make(map[string]bool),
	}
}

// Generate renders the half selected by the options.
func (g *Generator) Generate() (*File, error) {
	if g.file != nil {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "generator already used")
	}
	if g.opts.Side != Imports && g.opts.Side != Exports {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "side must be imports or exports")
	}
	if g.opts.Mode.String() == "unknown" {
		return nil, errors.InvalidInput(errors.PhaseGenerate, "mode not set")
	}
	g.file = jen.NewFile("main")
	g.file.HeaderComment("Code generated by wasm-proxy. DO NOT EDIT.")

	switch {
	case g.opts.Mode == proxy.Record:
		g.record()
	case g.opts.Side == Imports:
		g.mockImports()
	default:
		g.mockExports()
	}
	for len(g.queue) > 0 && g.err == nil {
		next := g.queue[0]
		g.queue = g.queue[1:]
		next()
	}
	if g.err != nil {
		return nil, g.err
	}

	g.assemble()
	var buf bytes.Buffer
	if err := g.file.Render(&buf); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindMalformed, err, "render")
	}
	src, err := imports.Process(FileName, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindMalformed, err, "format")
	}
	Logger().Debug("generated",
		zap.Stringer("mode", g.opts.Mode),
		zap.Stringer("side", g.opts.Side),
		zap.Int("helpers", len(g.helpers)),
		zap.Int("bytes", len(src)))
	return &File{Name: FileName, Source: src}, nil
}

// Generate is New followed by Generate.
func Generate(cat *catalog.Catalog, opts Options) (*File, error) {
	return New(cat, opts).Generate()
}

// assemble lays out the file: package state, init, main, then helpers
// in emission order.
func (g *Generator) assemble() {
	var vars []jen.Code
	if g.uses[varBoxes] {
		vars = append(vars, jen.Id(varBoxes).Op("=").Qual(guestPath, "NewBoxes").Call())
	}
	if g.uses[varMocks] {
		vars = append(vars, jen.Id(varMocks).Op("=").Qual(guestPath, "NewMocks").Call())
	}
	if g.uses[varScope] {
		vars = append(vars, jen.Id(varScope).Op("=").Qual(resourcePath, "NewScope").Call())
	}
	if len(vars) > 0 {
		g.file.Var().Defs(vars...)
	}
	g.file.Func().Id("init").Params().Block(g.inits...)
	g.file.Func().Id("main").Params().Block()
	for _, d := range g.decls {
		g.file.Add(d)
	}
}

const (
	varBoxes     = "boxes"
	varMocks     = "mocks"
	varScope     = "scope"
	resourcePath = "github.com/wippyai/wasm-proxy/resource"
)

func (g *Generator) use(name string) *jen.Statement {
	g.uses[name] = true
	return jen.Id(name)
}

// fail keeps the first error; emission continues with placeholders and
// Generate reports it.
func (g *Generator) fail(err error) {
	if g.err == nil && err != nil {
		g.err = err
	}
}

func (g *Generator) init(stmt jen.Code) {
	g.inits = append(g.inits, stmt)
}

// pkg returns the import path of a binding directory and registers its
// alias.
func (g *Generator) pkg(dir string) string {
	path := g.cat.PackagePath(dir)
	g.file.ImportAlias(path, importAlias(dir))
	return path
}

func (g *Generator) qual(dir, name string) *jen.Statement {
	return jen.Qual(g.pkg(dir), name)
}

// importAlias names a binding package after its whole directory, so
// host and wrapped packages never clash: "wrappedwasiiostreams".
func importAlias(dir string) string {
	return strings.ToLower(strcase.ToCamel(strings.ReplaceAll(dir, "/", "-")))
}

// control returns the directory of the proxy interface iface.
func (g *Generator) control(iface string) string {
	for _, m := range g.cat.Modules() {
		if !m.World && catalog.Unwrap(m.WitName) == iface {
			return m.Dir
		}
	}
	g.fail(errors.NotFound(errors.PhaseGenerate, "interface", iface))
	return strings.TrimPrefix(iface, proxyNamespace)
}

// controlFunc qualifies the Go name of a function of a proxy interface.
func (g *Generator) controlFunc(iface, wit string) *jen.Statement {
	dir := g.control(iface)
	path := strings.Split(dir, "/")
	name := strcase.ToCamel(wit)
	if f, ok := g.cat.FindFunction(path, "", wit); ok {
		name = f.Name
	} else if g.err == nil {
		g.fail(errors.NotFound(errors.PhaseGenerate, "function", iface+"."+wit))
	}
	return g.qual(dir, name)
}

// selected reports whether the interface of a module path is one the
// options ask for.
func (g *Generator) selected(path []string) bool {
	iface := g.cat.InterfaceName(path)
	if strings.HasPrefix(iface, proxyNamespace) {
		return false
	}
	if len(g.want) == 0 {
		return true
	}
	return g.want[iface]
}

// targets returns the function groups to wrap: the exported side for
// imports halves and record mode, the imported side for mocked exports
// halves.
func (g *Generator) targets(exported bool) []*catalog.Entry {
	var out []*catalog.Entry
	for _, e := range g.cat.Functions() {
		isExport := len(e.Path) > 0 && e.Path[0] == catalog.ExportsSegment
		if isExport != exported || !g.selected(e.Path) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// conversions returns the functions of the conversion interface on the
// given side.
func (g *Generator) conversions(exported bool) (dir string, funcs []*catalog.Function) {
	for _, m := range g.cat.Modules() {
		if catalog.Unwrap(m.WitName) != conversionIface {
			continue
		}
		path := m.Path()
		if exported {
			path = m.ExportPath()
		}
		for _, e := range g.cat.Functions() {
			if e.Resource == "" && slices.Equal(e.Path, path) {
				return m.Dir, e.Funcs
			}
		}
		return m.Dir, nil
	}
	return "", nil
}

// funcName is the trace name of f.
func (g *Generator) funcName(e *catalog.Entry, f *catalog.Function) string {
	return g.cat.FuncName(e.Path, e.Resource, f)
}

// dir returns the binding directory of a module path.
func dirOf(path []string) string {
	if len(path) > 0 && path[0] == catalog.ExportsSegment {
		path = path[1:]
	}
	return strings.Join(path, "/")
}

// exportsField is the Exports variable field a wrapper is assigned to.
func (g *Generator) exportsField(e *catalog.Entry, f *catalog.Function) *jen.Statement {
	s := g.qual(dirOf(e.Path), "Exports")
	if e.Resource != "" {
		s = s.Dot(e.Resource)
	}
	return s.Dot(f.Name)
}

// signature builds the parameter list and result of a wrapper for f.
// The receiver is named self and parameters p0, p1 and so on.
func (g *Generator) signature(f *catalog.Function) (params []jen.Code, result jen.Code) {
	if f.Self != nil {
		params = append(params, jen.Id("self").Add(g.goType(f.Self.Type)))
	}
	for i, p := range f.Params {
		params = append(params, jen.Id(paramName(i)).Add(g.goType(p.Type)))
	}
	if f.Result != nil {
		result = jen.Id("result").Add(g.goType(f.Result))
	}
	return params, result
}

func paramName(i int) string {
	return "p" + strconv.Itoa(i)
}

// funcLit renders func(params) (result) { body }.
func funcLit(params []jen.Code, result jen.Code, body ...jen.Code) *jen.Statement {
	s := jen.Func().Params(params...)
	if result != nil {
		s = s.Params(result)
	}
	return s.Block(body...)
}
