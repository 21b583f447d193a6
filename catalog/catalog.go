package catalog

import (
	"strings"

	"github.com/wippyai/wasm-proxy/errors"
)

// ExportsSegment leads the module path of everything a bindings tree
// implements rather than imports.
const ExportsSegment = "exports"

// WrappedPrefix marks the namespace of a renamed package.
const WrappedPrefix = "wrapped-"

// Module is one binding package.
type Module struct {
	// Dir is the slash-separated directory relative to the bindings root.
	Dir     string
	Package string
	// WitName is the interface or world the package represents:
	// "wasi:io/streams@0.2.0".
	WitName string
	// World is set on world packages, which hold only glue.
	World bool
	// Imported is set when the package declares imported functions or
	// resources, or only types.
	Imported bool
	// Exported is set when the package declares an Exports variable.
	Exported bool
}

// Path returns the module path of the package's imported side.
func (m *Module) Path() []string {
	return strings.Split(m.Dir, "/")
}

// ExportPath returns the module path of the package's exported side.
func (m *Module) ExportPath() []string {
	return append([]string{ExportsSegment}, m.Path()...)
}

// Entry groups the functions of one module path and resource.
type Entry struct {
	Path     []string
	Resource string
	Funcs    []*Function
}

type funcKey struct {
	path     string
	resource string
}

// Catalog indexes the functions and types of a wit-bindgen-go output
// tree. It is built once and read-only afterwards.
type Catalog struct {
	modules    map[string]*Module
	moduleDirs []string
	funcs      map[funcKey]*Entry
	funcOrder  []funcKey
	types      map[string][]*TypeDef
	typeOrder  []*TypeDef
	known      map[string]bool
	aliases    map[string]TypeRef
	paths      [][]string
	importPath string
}

func newCatalog(importPath string) *Catalog {
	return &Catalog{
		modules:    make(map[string]*Module),
		funcs:      make(map[funcKey]*Entry),
		types:      make(map[string][]*TypeDef),
		known:      make(map[string]bool),
		aliases:    make(map[string]TypeRef),
		importPath: importPath,
	}
}

// ImportPath is the Go import path of the bindings root.
func (c *Catalog) ImportPath() string {
	return c.importPath
}

// PackagePath is the Go import path of a binding directory.
func (c *Catalog) PackagePath(dir string) string {
	return c.importPath + "/" + dir
}

func joinPath(path []string) string {
	return strings.Join(path, "/")
}

func (c *Catalog) addModule(m *Module) {
	c.modules[m.Dir] = m
	c.moduleDirs = append(c.moduleDirs, m.Dir)
}

func (c *Catalog) markKnown(path []string) {
	k := joinPath(path)
	if c.known[k] {
		return
	}
	c.known[k] = true
	c.paths = append(c.paths, path)
}

func (c *Catalog) addFunc(path []string, resource string, f *Function) {
	k := funcKey{path: joinPath(path), resource: resource}
	e, ok := c.funcs[k]
	if !ok {
		e = &Entry{Path: path, Resource: resource}
		c.funcs[k] = e
		c.funcOrder = append(c.funcOrder, k)
	}
	e.Funcs = append(e.Funcs, f)
}

func (c *Catalog) addType(d *TypeDef) {
	c.types[d.Pkg] = append(c.types[d.Pkg], d)
	c.typeOrder = append(c.typeOrder, d)
}

// Module returns the package at dir.
func (c *Catalog) Module(dir string) (*Module, bool) {
	m, ok := c.modules[dir]
	return m, ok
}

// Modules returns every package in traversal order.
func (c *Catalog) Modules() []*Module {
	out := make([]*Module, 0, len(c.moduleDirs))
	for _, d := range c.moduleDirs {
		out = append(out, c.modules[d])
	}
	return out
}

// FindFunction returns the first function at path and resource whose Go
// or WIT name is name.
func (c *Catalog) FindFunction(path []string, resource, name string) (*Function, bool) {
	e, ok := c.funcs[funcKey{path: joinPath(path), resource: resource}]
	if !ok {
		return nil, false
	}
	for _, f := range e.Funcs {
		if f.Name == name || f.WitName == name {
			return f, true
		}
	}
	return nil, false
}

// HasTypeDef reports whether the package at path declares name. A leading
// exports segment is ignored since both sides share one package.
func (c *Catalog) HasTypeDef(path []string, name string) bool {
	_, ok := c.TypeDef(joinPath(stripExports(path)), name)
	return ok
}

// TypeDef returns the type declared as name in the package at dir.
func (c *Catalog) TypeDef(dir, name string) (*TypeDef, bool) {
	for _, d := range c.types[dir] {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// Lookup resolves a named reference.
func (c *Catalog) Lookup(n Named) (*TypeDef, bool) {
	return c.TypeDef(n.Pkg, n.Name)
}

// TypeByWitName returns the type of package dir with the given WIT name.
func (c *Catalog) TypeByWitName(dir, wit string) (*TypeDef, bool) {
	for _, d := range c.types[dir] {
		if d.WitName == wit {
			return d, true
		}
	}
	return nil, false
}

// Known reports whether path is a module path of the catalog.
func (c *Catalog) Known(path []string) bool {
	return c.known[joinPath(path)]
}

// ModulePaths returns every known module path in discovery order.
func (c *Catalog) ModulePaths() [][]string {
	out := make([][]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// Functions returns every function group in discovery order.
func (c *Catalog) Functions() []*Entry {
	out := make([]*Entry, 0, len(c.funcOrder))
	for _, k := range c.funcOrder {
		out = append(out, c.funcs[k])
	}
	return out
}

// Types returns every cataloged type in discovery order.
func (c *Catalog) Types() []*TypeDef {
	out := make([]*TypeDef, len(c.typeOrder))
	copy(out, c.typeOrder)
	return out
}

// TypePath is the module path of the side a type's package belongs to:
// export-only packages answer with their exports path.
func (c *Catalog) TypePath(dir string) []string {
	m, ok := c.modules[dir]
	if ok && m.Exported && !m.Imported {
		return m.ExportPath()
	}
	return strings.Split(dir, "/")
}

// InterfaceName returns the WIT interface of the module at path, without
// the exports segment, the wrapped- prefix or the version. Paths of
// packages without a recorded name fall back to "ns:pkg/iface".
func (c *Catalog) InterfaceName(path []string) string {
	path = stripExports(path)
	if m, ok := c.modules[joinPath(path)]; ok && m.WitName != "" {
		return Unwrap(m.WitName)
	}
	if len(path) < 2 {
		return strings.TrimPrefix(joinPath(path), WrappedPrefix)
	}
	return strings.TrimPrefix(path[0], WrappedPrefix) + ":" + path[1] + "/" + joinPath(path[2:])
}

// FuncName is the canonical name of a function as it appears in traces:
// "ns:pkg/iface[.resource].func".
func (c *Catalog) FuncName(path []string, resource string, f *Function) string {
	res := ""
	if resource != "" {
		if d, ok := c.TypeDef(joinPath(stripExports(path)), resource); ok {
			res = d.WitName
		}
	}
	return WitFuncName(c.InterfaceName(path), res, f)
}

// WitFuncName joins an interface name, an optional resource WIT name and
// the function's WIT name. Constructors are named "constructor".
func WitFuncName(iface, resource string, f *Function) string {
	fn := f.WitName
	if f.Kind == Constructor {
		fn = "constructor"
	}
	if resource == "" {
		return iface + "." + fn
	}
	return iface + "." + resource + "." + fn
}

// Unwrap strips the wrapped- prefix and the version from a qualified
// interface name.
func Unwrap(name string) string {
	name = strings.TrimPrefix(name, WrappedPrefix)
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return name
}

func stripExports(path []string) []string {
	if len(path) > 0 && path[0] == ExportsSegment {
		return path[1:]
	}
	return path
}

// toggleWrapped adds or removes the wrapped- prefix of the first segment.
func toggleWrapped(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	out := make([]string, len(path))
	copy(out, path)
	if s, ok := strings.CutPrefix(out[0], WrappedPrefix); ok {
		out[0] = s
	} else {
		out[0] = WrappedPrefix + out[0]
	}
	return out
}

// ProxyPath maps a module path to its counterpart on the other side of the
// boundary and reports whether the counterpart is on the exports side.
//
// An exports path drops the exports segment and toggles the wrapped-
// prefix. Any other path toggles the prefix and prefers the exports side
// when it is known. The result is always a known path; anything else is an
// unknown_path error.
func (c *Catalog) ProxyPath(path []string) ([]string, bool, error) {
	if len(path) == 0 {
		return nil, false, errors.UnknownPath(path)
	}
	if path[0] == ExportsSegment {
		out := toggleWrapped(path[1:])
		if !c.Known(out) {
			return nil, false, errors.UnknownPath(path)
		}
		return out, false, nil
	}
	toggled := toggleWrapped(path)
	if exp := append([]string{ExportsSegment}, toggled...); c.Known(exp) {
		return exp, true, nil
	}
	if !c.Known(toggled) {
		return nil, false, errors.UnknownPath(path)
	}
	return toggled, false, nil
}

// Counterpart resolves the type corresponding to d across the boundary.
func (c *Catalog) Counterpart(d *TypeDef) (*TypeDef, error) {
	path, _, err := c.ProxyPath(c.TypePath(d.Pkg))
	if err != nil {
		return nil, err
	}
	other, ok := c.TypeDef(joinPath(stripExports(path)), d.Name)
	if !ok {
		return nil, errors.New(errors.PhaseCatalog, errors.KindNotFound).
			Path(path...).
			Detail("no counterpart for %s.%s", d.Pkg, d.Name).
			Build()
	}
	return other, nil
}
