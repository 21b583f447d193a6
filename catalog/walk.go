package catalog

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/internal/witname"
)

// CMPath is the import path of the component model runtime package.
const CMPath = "go.bytecodealliance.org/cm"

// Options controls Build.
type Options struct {
	// ImportPath is the Go import path of the bindings root. Imports of
	// binding packages are resolved relative to it.
	ImportPath string
}

// Build walks the wit-bindgen-go output under root in lexical order and
// catalogs every package. The cm runtime, internal, testdata and hidden
// directories are skipped.
func Build(root string, opts Options) (*Catalog, error) {
	dirs, err := packageDirs(root)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCatalog, errors.KindNotFound, err, "walk "+root)
	}

	c := newCatalog(opts.ImportPath)
	fset := token.NewFileSet()
	for _, dir := range dirs {
		if err := c.loadPackage(fset, root, dir); err != nil {
			return nil, err
		}
	}
	c.resolveAliases()

	Logger().Debug("catalog built",
		zap.String("root", root),
		zap.Int("modules", len(c.moduleDirs)),
		zap.Int("function_groups", len(c.funcOrder)),
		zap.Int("types", len(c.typeOrder)))
	return c, nil
}

func skipDir(name string) bool {
	return name == "cm" || name == "internal" || name == "testdata" ||
		strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")
}

func goFile(name string) bool {
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go")
}

// packageDirs lists the slash-separated directories under root that hold
// Go files.
func packageDirs(root string) ([]string, error) {
	var dirs []string
	seen := make(map[string]bool)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !goFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel != "." && !seen[rel] {
			seen[rel] = true
			dirs = append(dirs, rel)
		}
		return nil
	})
	return dirs, err
}

// pkgState accumulates one package while its files are traversed.
type pkgState struct {
	c         *Catalog
	mod       *Module
	path      []string
	imports   map[string]string
	resources map[string]*TypeDef
	variants  map[string]*TypeDef
	ints      map[string]*TypeDef
	consts    map[string][]string
	shifts    map[string]bool
	tables    map[string][]string
	cases     map[string][]Case
	exported  map[string]bool
	hasImport bool
}

func (c *Catalog) loadPackage(fset *token.FileSet, root, dir string) error {
	entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(dir)))
	if err != nil {
		return errors.Wrap(errors.PhaseCatalog, errors.KindNotFound, err, "read "+dir)
	}
	var files []*ast.File
	for _, e := range entries {
		if e.IsDir() || !goFile(e.Name()) {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(root, filepath.FromSlash(dir), e.Name()), nil, parser.ParseComments)
		if err != nil {
			return errors.Malformed(errors.PhaseCatalog, "binding source "+dir+"/"+e.Name(), err)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		return nil
	}

	s := &pkgState{
		c:         c,
		mod:       &Module{Dir: dir, Package: files[0].Name.Name},
		path:      strings.Split(dir, "/"),
		resources: make(map[string]*TypeDef),
		variants:  make(map[string]*TypeDef),
		ints:      make(map[string]*TypeDef),
		consts:    make(map[string][]string),
		shifts:    make(map[string]bool),
		tables:    make(map[string][]string),
		cases:     make(map[string][]Case),
		exported:  make(map[string]bool),
	}
	for _, f := range files {
		if f.Doc == nil {
			continue
		}
		if kind, name := docQualified(f.Doc.Text()); name != "" {
			s.mod.WitName = name
			s.mod.World = kind == "world"
		}
	}
	c.addModule(s.mod)

	for _, f := range files {
		s.useImports(f)
		if err := s.declarations(f); err != nil {
			return err
		}
	}
	for _, f := range files {
		s.useImports(f)
		if err := s.functions(f); err != nil {
			return err
		}
	}
	s.finish()
	return nil
}

func (s *pkgState) useImports(f *ast.File) {
	s.imports = make(map[string]string, len(f.Imports))
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := PackageName(p)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		switch {
		case p == CMPath || strings.HasSuffix(p, "/cm"):
			s.imports[name] = CMPath
		case s.c.importPath != "" && strings.HasPrefix(p, s.c.importPath+"/"):
			s.imports[name] = strings.TrimPrefix(p, s.c.importPath+"/")
		default:
			s.imports[name] = ""
		}
	}
}

func (s *pkgState) unsupported(name string, format string, args ...any) error {
	return errors.New(errors.PhaseCatalog, errors.KindUnsupportedItem).
		Path(s.mod.Dir, name).
		Detail(format, args...).
		Build()
}

// unsupportedType reports a type expression with no WIT counterpart.
func (s *pkgState) unsupportedType(e ast.Expr, format string, args ...any) error {
	return errors.New(errors.PhaseCatalog, errors.KindUnsupportedItem).
		Path(s.mod.Dir).
		GoType(types.ExprString(e)).
		Detail(format, args...).
		Build()
}

// declarations handles type, const and var declarations.
func (s *pkgState) declarations(f *ast.File) error {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		switch gd.Tok {
		case token.TYPE:
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				if err := s.typeSpec(ts, doc.Text()); err != nil {
					return err
				}
			}
		case token.CONST:
			s.constBlock(gd)
		case token.VAR:
			s.stringTables(gd)
		}
	}
	return nil
}

func (s *pkgState) typeSpec(ts *ast.TypeSpec, doc string) error {
	name := ts.Name.Name
	if !ast.IsExported(name) || ts.TypeParams != nil {
		return nil
	}
	if ts.Assign.IsValid() {
		target, err := s.ref(ts.Type)
		if err != nil {
			Logger().Debug("skipping alias", zap.String("pkg", s.mod.Dir), zap.String("name", name), zap.Error(err))
			return nil
		}
		s.c.addAlias(s.mod.Dir, name, target)
		return nil
	}

	_, wit := docItem(doc)
	if wit == "" {
		wit = witname.Kebab(name)
	}
	d := &TypeDef{Pkg: s.mod.Dir, Name: name, WitName: wit}

	switch t := ts.Type.(type) {
	case *ast.SelectorExpr:
		if s.isCM(t, "Resource") {
			d.Kind = KindResource
			s.resources[name] = d
			s.c.addType(d)
			return nil
		}
	case *ast.StructType:
		fields, err := s.fields(name, t)
		if err != nil {
			return err
		}
		d.Kind = KindStruct
		d.Fields = fields
		s.c.addType(d)
		return nil
	case *ast.IndexListExpr:
		if sel, ok := t.X.(*ast.SelectorExpr); ok && s.isCM(sel, "Variant") {
			d.Kind = KindEnum
			d.Variant = true
			s.variants[name] = d
			s.c.addType(d)
			return nil
		}
	case *ast.Ident:
		if p, ok := prims[t.Name]; ok && isInteger(p) {
			d.Under = p
			s.ints[name] = d
			s.c.addType(d)
			return nil
		}
	}

	under, err := s.ref(ts.Type)
	if err != nil {
		return err
	}
	d.Kind = KindDefined
	d.Under = under
	s.c.addType(d)
	return nil
}

func isInteger(p Prim) bool {
	switch p {
	case Uint8, Uint16, Uint32, Uint64, Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

func (s *pkgState) fields(owner string, st *ast.StructType) ([]Field, error) {
	var out []Field
	for _, fl := range st.Fields.List {
		if sel, ok := fl.Type.(*ast.SelectorExpr); ok && s.isCM(sel, "HostLayout") {
			continue
		}
		if len(fl.Names) == 0 {
			return nil, s.unsupported(owner, "embedded field")
		}
		t, err := s.ref(fl.Type)
		if err != nil {
			return nil, err
		}
		tag := ""
		if fl.Tag != nil {
			if v, err := strconv.Unquote(fl.Tag.Value); err == nil {
				tag, _, _ = strings.Cut(reflect.StructTag(v).Get("json"), ",")
			}
		}
		for _, n := range fl.Names {
			if n.Name == "_" {
				continue
			}
			wit := tag
			if wit == "" || wit == "-" || len(fl.Names) > 1 {
				wit = witname.Kebab(n.Name)
			}
			out = append(out, Field{Name: n.Name, WitName: wit, Type: t})
		}
	}
	return out, nil
}

// constBlock collects iota and 1 << iota constant runs per type.
func (s *pkgState) constBlock(gd *ast.GenDecl) {
	current := ""
	for _, spec := range gd.Specs {
		vs := spec.(*ast.ValueSpec)
		if vs.Type != nil {
			current = ""
			id, ok := vs.Type.(*ast.Ident)
			if !ok || len(vs.Values) != 1 {
				continue
			}
			switch {
			case isIota(vs.Values[0]):
				current = id.Name
			case isShiftIota(vs.Values[0]):
				current = id.Name
				s.shifts[id.Name] = true
			default:
				continue
			}
		} else if len(vs.Values) > 0 {
			current = ""
		}
		if current == "" {
			continue
		}
		for _, n := range vs.Names {
			s.consts[current] = append(s.consts[current], n.Name)
		}
	}
}

func isIota(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "iota"
}

func isShiftIota(e ast.Expr) bool {
	be, ok := e.(*ast.BinaryExpr)
	if !ok || be.Op != token.SHL {
		return false
	}
	lit, ok := be.X.(*ast.BasicLit)
	return ok && lit.Value == "1" && isIota(be.Y)
}

// stringTables collects the case name tables of variants and enums:
// _XStrings in current wit-bindgen-go, stringsX in older releases.
func (s *pkgState) stringTables(gd *ast.GenDecl) {
	for _, spec := range gd.Specs {
		vs := spec.(*ast.ValueSpec)
		if len(vs.Names) != 1 || len(vs.Values) != 1 {
			continue
		}
		name := vs.Names[0].Name
		var owner string
		switch {
		case strings.HasPrefix(name, "_") && strings.HasSuffix(name, "Strings"):
			owner = strings.TrimSuffix(strings.TrimPrefix(name, "_"), "Strings")
		case strings.HasPrefix(name, "strings"):
			owner = strings.TrimPrefix(name, "strings")
		default:
			continue
		}
		lit, ok := vs.Values[0].(*ast.CompositeLit)
		if !ok {
			continue
		}
		var labels []string
		for _, elt := range lit.Elts {
			bl, ok := elt.(*ast.BasicLit)
			if !ok || bl.Kind != token.STRING {
				continue
			}
			if v, err := strconv.Unquote(bl.Value); err == nil {
				labels = append(labels, v)
			}
		}
		s.tables[owner] = labels
	}
}

var helperMethods = map[string]bool{
	"ResourceDrop": true, "ResourceRep": true, "String": true, "Tag": true,
	"MarshalText": true, "UnmarshalText": true, "MarshalJSON": true, "UnmarshalJSON": true,
}

func hidden(doc string) bool {
	return strings.Contains(doc, "Deprecated:") || strings.Contains(doc, "wit:hidden")
}

// functions handles function declarations and the Exports variable.
func (s *pkgState) functions(f *ast.File) error {
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if err := s.funcDecl(d); err != nil {
				return err
			}
		case *ast.GenDecl:
			if d.Tok != token.VAR {
				continue
			}
			for _, spec := range d.Specs {
				vs := spec.(*ast.ValueSpec)
				if len(vs.Names) != 1 || vs.Names[0].Name != "Exports" {
					continue
				}
				st, ok := vs.Type.(*ast.StructType)
				if !ok {
					continue
				}
				if err := s.exports(st); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *pkgState) funcDecl(fd *ast.FuncDecl) error {
	name := fd.Name.Name
	doc := fd.Doc.Text()
	if !ast.IsExported(name) || hidden(doc) {
		return nil
	}
	if fd.Recv != nil && len(fd.Recv.List) == 1 {
		return s.method(fd, name, doc)
	}
	if s.mod.World || len(s.path) < 3 {
		return nil
	}

	if r, ok := strings.CutSuffix(name, "ResourceNew"); ok && s.resources[r] != nil {
		s.exported[r] = true
		return nil
	}
	if s.variantConstructor(fd, name) {
		return nil
	}

	kind, wit := docItem(doc)
	fn, err := s.funcType(name, fd.Type)
	if err != nil {
		return err
	}
	fn.Name = name
	fn.WitName = wit
	fn.Signature = witSignature(doc)

	resource := ""
	switch {
	case kind == "constructor" || (kind == "" && s.constructorOf(fd, name) != ""):
		resource = s.constructorOf(fd, name)
		if resource == "" {
			resource = strings.TrimPrefix(name, "New")
		}
		fn.Kind = Constructor
		fn.WitName = "constructor"
	case kind == "static function":
		resource = s.resourcePrefix(name)
		fn.Kind = Static
	default:
		fn.Kind = Free
	}
	if fn.Kind == Static && resource == "" {
		fn.Kind = Free
	}
	if fn.WitName == "" {
		fn.WitName = witname.Kebab(strings.TrimPrefix(name, resource))
	}
	applySignature(fn)
	s.hasImport = true
	s.c.addFunc(s.path, resource, fn)
	return nil
}

// constructorOf returns R when name is New<R> and returns the local
// resource R.
func (s *pkgState) constructorOf(fd *ast.FuncDecl, name string) string {
	r, ok := strings.CutPrefix(name, "New")
	if !ok || s.resources[r] == nil || fd.Type.Results == nil || len(fd.Type.Results.List) != 1 {
		return ""
	}
	if id, ok := fd.Type.Results.List[0].Type.(*ast.Ident); ok && id.Name == r {
		return r
	}
	return ""
}

// resourcePrefix returns the longest local resource name prefixing name.
func (s *pkgState) resourcePrefix(name string) string {
	best := ""
	for r := range s.resources {
		if strings.HasPrefix(name, r) && len(r) > len(best) {
			best = r
		}
	}
	return best
}

// variantConstructor reports whether fd builds a case of a local variant.
func (s *pkgState) variantConstructor(fd *ast.FuncDecl, name string) bool {
	if fd.Type.Results == nil || len(fd.Type.Results.List) != 1 {
		return false
	}
	id, ok := fd.Type.Results.List[0].Type.(*ast.Ident)
	if !ok || s.variants[id.Name] == nil {
		return false
	}
	return strings.HasPrefix(name, id.Name)
}

func recvType(fd *ast.FuncDecl) (string, bool) {
	switch t := fd.Recv.List[0].Type.(type) {
	case *ast.Ident:
		return t.Name, false
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return id.Name, true
		}
	}
	return "", false
}

func (s *pkgState) method(fd *ast.FuncDecl, name, doc string) error {
	recv, pointer := recvType(fd)
	if helperMethods[name] {
		return nil
	}

	if s.variants[recv] != nil {
		if !pointer || fd.Type.Results == nil || len(fd.Type.Results.List) != 1 {
			return nil
		}
		c := Case{Name: name}
		if m := reCase.FindStringSubmatch(doc); m != nil {
			c.WitName = m[1]
		}
		if star, ok := fd.Type.Results.List[0].Type.(*ast.StarExpr); ok {
			payload, err := s.ref(star.X)
			if err != nil {
				return err
			}
			c.Payload = payload
		}
		s.cases[recv] = append(s.cases[recv], c)
		return nil
	}

	if s.resources[recv] == nil {
		return nil
	}
	kind, wit := docItem(doc)
	if kind != "" && kind != "method" {
		return nil
	}
	fn, err := s.funcType(name, fd.Type)
	if err != nil {
		return err
	}
	self := "self"
	if names := fd.Recv.List[0].Names; len(names) == 1 {
		self = names[0].Name
	}
	fn.Self = &Param{
		Name:     self,
		WitName:  "self",
		Type:     Named{Pkg: s.mod.Dir, Name: recv, Borrow: true},
		Borrowed: true,
	}
	fn.Name = name
	fn.WitName = wit
	if fn.WitName == "" {
		fn.WitName = witname.Kebab(name)
	}
	fn.Kind = Method
	fn.Signature = witSignature(doc)
	applySignature(fn)
	s.hasImport = true
	s.c.addFunc(s.path, recv, fn)
	return nil
}

// exports catalogs the fields of var Exports.
func (s *pkgState) exports(st *ast.StructType) error {
	s.mod.Exported = true
	path := s.mod.ExportPath()
	for _, fl := range st.Fields.List {
		for _, n := range fl.Names {
			switch t := fl.Type.(type) {
			case *ast.FuncType:
				fn, err := s.exportFunc(n.Name, "", t, fl.Doc.Text())
				if err != nil {
					return err
				}
				if fn != nil {
					s.c.addFunc(path, "", fn)
				}
			case *ast.StructType:
				resource := n.Name
				s.exported[resource] = true
				for _, rf := range t.Fields.List {
					ft, ok := rf.Type.(*ast.FuncType)
					if !ok {
						continue
					}
					for _, rn := range rf.Names {
						fn, err := s.exportFunc(rn.Name, resource, ft, rf.Doc.Text())
						if err != nil {
							return err
						}
						if fn != nil {
							s.c.addFunc(path, resource, fn)
						}
					}
				}
			}
		}
	}
	return nil
}

func (s *pkgState) exportFunc(name, resource string, ft *ast.FuncType, doc string) (*Function, error) {
	if hidden(doc) {
		return nil, nil
	}
	fn, err := s.funcType(name, ft)
	if err != nil {
		return nil, err
	}
	kind, wit := docItem(doc)
	fn.Name = name
	fn.WitName = wit
	fn.Export = true
	fn.Signature = witSignature(doc)

	switch {
	case resource == "":
		fn.Kind = Free
	case name == "Constructor" || kind == "constructor":
		fn.Kind = Constructor
		fn.WitName = "constructor"
	case name == "Destructor" || kind == "destructor":
		fn.Kind = Destructor
		fn.WitName = "destructor"
	case len(fn.Params) > 0 && fn.Params[0].Name == "self":
		fn.Kind = Method
	default:
		fn.Kind = Static
	}
	if fn.Kind == Method || fn.Kind == Destructor {
		if len(fn.Params) == 0 {
			return nil, s.unsupported(resource+"."+name, "method without receiver")
		}
		self := fn.Params[0]
		self.WitName = "self"
		self.Type = Rep{Pkg: s.mod.Dir, Resource: resource}
		self.Borrowed = true
		fn.Self = &self
		fn.Params = fn.Params[1:]
	}
	if fn.WitName == "" {
		fn.WitName = witname.Kebab(name)
	}
	applySignature(fn)
	return fn, nil
}

// funcType converts parameters and the single optional result.
func (s *pkgState) funcType(name string, ft *ast.FuncType) (*Function, error) {
	fn := &Function{}
	if ft.Params != nil {
		for i, fl := range ft.Params.List {
			t, err := s.ref(fl.Type)
			if err != nil {
				return nil, err
			}
			if len(fl.Names) == 0 {
				fn.Params = append(fn.Params, Param{Name: "p" + strconv.Itoa(i), Type: t})
				continue
			}
			for _, n := range fl.Names {
				fn.Params = append(fn.Params, Param{Name: n.Name, Type: t})
			}
		}
	}
	if ft.Results != nil {
		if ft.Results.NumFields() > 1 {
			return nil, s.unsupported(name, "more than one result")
		}
		if len(ft.Results.List) == 1 {
			t, err := s.ref(ft.Results.List[0].Type)
			if err != nil {
				return nil, err
			}
			fn.Result = t
		}
	}
	return fn, nil
}

func (s *pkgState) isCM(sel *ast.SelectorExpr, name string) bool {
	id, ok := sel.X.(*ast.Ident)
	return ok && s.imports[id.Name] == CMPath && sel.Sel.Name == name
}

// ref converts a type expression. An empty struct yields nil, which marks
// an absent result side.
func (s *pkgState) ref(e ast.Expr) (TypeRef, error) {
	switch t := e.(type) {
	case *ast.Ident:
		if p, ok := prims[t.Name]; ok {
			return p, nil
		}
		if !ast.IsExported(t.Name) {
			return nil, s.unsupportedType(t, "unexported type")
		}
		return Named{Pkg: s.mod.Dir, Name: t.Name}, nil
	case *ast.SelectorExpr:
		id, ok := t.X.(*ast.Ident)
		if !ok {
			break
		}
		dir, ok := s.imports[id.Name]
		switch {
		case !ok || dir == "":
			return nil, s.unsupportedType(t, "type outside the bindings")
		case dir == CMPath:
			switch t.Sel.Name {
			case "Rep":
				return Rep{Pkg: s.mod.Dir}, nil
			case "BoolResult":
				return Result{}, nil
			}
			return nil, s.unsupportedType(t, "unsupported runtime type")
		}
		return Named{Pkg: dir, Name: t.Sel.Name}, nil
	case *ast.IndexExpr:
		return s.generic(t.X, []ast.Expr{t.Index})
	case *ast.IndexListExpr:
		return s.generic(t.X, t.Indices)
	case *ast.ArrayType:
		if t.Len != nil {
			return nil, s.unsupportedType(t, "fixed-size array")
		}
		elem, err := s.ref(t.Elt)
		if err != nil {
			return nil, err
		}
		return List{Elem: elem, Slice: true}, nil
	case *ast.StructType:
		if t.Fields.NumFields() == 0 {
			return nil, nil
		}
	}
	return nil, s.unsupportedType(e, "unsupported type expression %T", e)
}

func (s *pkgState) generic(base ast.Expr, args []ast.Expr) (TypeRef, error) {
	sel, ok := base.(*ast.SelectorExpr)
	if !ok {
		return nil, s.unsupportedType(base, "generic type outside cm")
	}
	id, ok := sel.X.(*ast.Ident)
	if !ok || s.imports[id.Name] != CMPath {
		return nil, s.unsupportedType(base, "generic type outside cm")
	}
	refs := make([]TypeRef, len(args))
	for i, a := range args {
		r, err := s.ref(a)
		if err != nil {
			return nil, err
		}
		refs[i] = r
	}
	name := sel.Sel.Name
	switch {
	case name == "List" && len(refs) == 1:
		return List{Elem: refs[0]}, nil
	case name == "Option" && len(refs) == 1:
		return Option{Elem: refs[0]}, nil
	case name == "Result" && len(refs) == 3:
		return Result{Shape: refs[0], OK: refs[1], Err: refs[2]}, nil
	case strings.HasPrefix(name, "Tuple") && len(refs) >= 2:
		return Tuple{Elems: refs}, nil
	}
	return nil, s.unsupportedType(base, "unsupported runtime type")
}

// finish classifies integer types, orders variant cases, marks exported
// resources and settles the resource of cm.Rep parameters.
func (s *pkgState) finish() {
	for name, d := range s.ints {
		labels := s.consts[name]
		switch {
		case len(labels) == 0:
			d.Kind = KindDefined
		case s.shifts[name]:
			d.Kind = KindFlag
			for _, l := range labels {
				d.Flags = append(d.Flags, Label{Name: l, WitName: witname.Kebab(strings.TrimPrefix(l, name))})
			}
		default:
			d.Kind = KindEnum
			table := s.tables[name]
			for i, l := range labels {
				wit := witname.Kebab(strings.TrimPrefix(l, name))
				if len(table) == len(labels) {
					wit = table[i]
				}
				d.Cases = append(d.Cases, Case{Name: l, WitName: wit})
			}
		}
	}

	for name, d := range s.variants {
		d.Cases = orderCases(s.cases[name], s.tables[name])
	}

	for name := range s.exported {
		if d := s.resources[name]; d != nil {
			d.Exported = true
		}
	}

	s.mod.Imported = s.hasImport || !s.mod.Exported
	if !s.mod.World {
		if s.mod.Imported {
			s.c.markKnown(s.mod.Path())
		}
		if s.mod.Exported {
			s.c.markKnown(s.mod.ExportPath())
		}
	}

	s.settleReps()
}

// orderCases puts accessor cases in the order of the strings table, which
// is the tag order. Cases without a documented name take the table entry
// at their declaration position.
func orderCases(cases []Case, table []string) []Case {
	for i := range cases {
		if cases[i].WitName == "" {
			if i < len(table) {
				cases[i].WitName = table[i]
			} else {
				cases[i].WitName = witname.Kebab(cases[i].Name)
			}
		}
	}
	if len(table) == 0 {
		return cases
	}
	index := make(map[string]int, len(table))
	for i, n := range table {
		index[n] = i
	}
	sort.SliceStable(cases, func(i, j int) bool {
		return index[cases[i].WitName] < index[cases[j].WitName]
	})
	return cases
}

// settleReps replaces WIT resource names recorded on cm.Rep parameters
// with the Go type name.
func (s *pkgState) settleReps() {
	for _, k := range s.c.funcOrder {
		if k.path != joinPath(s.mod.ExportPath()) {
			continue
		}
		for _, fn := range s.c.funcs[k].Funcs {
			for i := range fn.Params {
				rep, ok := fn.Params[i].Type.(Rep)
				if !ok {
					continue
				}
				wit, ok := strings.CutPrefix(rep.Resource, witRefPrefix)
				if !ok {
					continue
				}
				if d, found := s.c.TypeByWitName(s.mod.Dir, wit); found {
					rep.Resource = d.Name
				} else {
					Logger().Warn("borrowed resource not found",
						zap.String("pkg", s.mod.Dir), zap.String("func", fn.Name), zap.String("resource", wit))
					rep.Resource = ""
				}
				fn.Params[i].Type = rep
			}
		}
	}
}
