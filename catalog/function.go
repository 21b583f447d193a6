package catalog

import (
	"regexp"
	"strings"

	"github.com/wippyai/wasm-proxy/internal/witname"
)

// FuncKind says how a function relates to its resource.
type FuncKind uint8

const (
	// Free is a function outside any resource.
	Free FuncKind = iota + 1
	// Constructor creates a resource.
	Constructor
	// Method takes the resource as its receiver.
	Method
	// Static is a resource function without a receiver.
	Static
	// Destructor is called by the runtime when an exported resource is
	// dropped. It is cataloged but never wrapped.
	Destructor
)

func (k FuncKind) String() string {
	switch k {
	case Free:
		return "function"
	case Constructor:
		return "constructor"
	case Method:
		return "method"
	case Static:
		return "static"
	case Destructor:
		return "destructor"
	default:
		return "unknown"
	}
}

// Param is a function parameter or result.
type Param struct {
	Type     TypeRef
	Name     string
	WitName  string
	Borrowed bool
}

// Function is a cataloged function signature.
type Function struct {
	// Self is the receiver of methods: the imported handle, or the cm.Rep
	// of an exported resource.
	Self *Param
	// Result is nil for functions without a result.
	Result TypeRef
	// Name is the Go identifier: the method or function name of imports,
	// the field name of exports.
	Name    string
	WitName string
	// Signature is the WIT declaration from the doc comment, if any.
	Signature string
	Params    []Param
	Kind      FuncKind
	Export    bool
}

// String renders the Go signature.
func (f *Function) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	params := f.Params
	if f.Self != nil {
		params = append([]Param{*f.Self}, params...)
	}
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte(' ')
		b.WriteString(GoString(p.Type))
	}
	b.WriteByte(')')
	if f.Result != nil {
		b.WriteString(" (result ")
		b.WriteString(GoString(f.Result))
		b.WriteByte(')')
	}
	return b.String()
}

// Refs calls fn for every type referenced by the signature, receiver
// included.
func (f *Function) Refs(fn func(TypeRef)) {
	if f.Self != nil {
		Walk(f.Self.Type, fn)
	}
	for _, p := range f.Params {
		Walk(p.Type, fn)
	}
	Walk(f.Result, fn)
}

var (
	// represents the imported function "get-stdout".
	// represents the caller-defined, exported static function "merge".
	reDocItem = regexp.MustCompile(`represents the (?:imported |caller-defined, exported |exported )?` +
		`(function|method|static function|constructor|destructor|resource-drop|resource|record|variant|enum|flags|type alias|tuple|list|option|result|interface|world|type)` +
		`(?: for resource)? "([^"]+)"`)
	reCase = regexp.MustCompile(`variant case "([^"]+)"`)
)

// docItem extracts the item kind and WIT name from a wit-bindgen-go doc
// comment. The name has its "ns:pkg/iface#" qualifier removed.
func docItem(doc string) (kind, name string) {
	m := reDocItem.FindStringSubmatch(doc)
	if m == nil {
		return "", ""
	}
	name = m[2]
	if i := strings.LastIndexByte(name, '#'); i >= 0 {
		name = name[i+1:]
	}
	return m[1], name
}

// docQualified is docItem without stripping the qualifier; package docs
// carry the interface name this way.
func docQualified(doc string) (kind, name string) {
	m := reDocItem.FindStringSubmatch(doc)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

// witSignature returns the indented WIT declaration wit-bindgen-go places
// in doc comments: "get: func() -> u32" or "constructor(start: u32)".
func witSignature(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		if !strings.HasPrefix(line, "\t") {
			continue
		}
		line = strings.TrimSpace(line)
		if strings.Contains(line, "func(") || strings.HasPrefix(line, "constructor(") {
			return line
		}
	}
	return ""
}

// witParam is one parameter of a WIT signature.
type witParam struct {
	name   string
	typ    string
	borrow string
}

// witParams splits the parameter list of a WIT signature.
func witParams(sig string) []witParam {
	open := strings.IndexByte(sig, '(')
	if open < 0 {
		return nil
	}
	depth := 0
	var (
		out   []witParam
		start = open + 1
	)
	emit := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		name, typ, ok := strings.Cut(s, ":")
		if !ok {
			return
		}
		p := witParam{name: strings.TrimSpace(name), typ: strings.TrimSpace(typ)}
		if inner, ok := strings.CutPrefix(p.typ, "borrow<"); ok {
			p.borrow = strings.TrimSuffix(inner, ">")
		}
		out = append(out, p)
	}
	for i := open + 1; i < len(sig); i++ {
		switch sig[i] {
		case '<', '(':
			depth++
		case '>':
			depth--
		case ')':
			if depth == 0 {
				emit(sig[start:i])
				return out
			}
			depth--
		case ',':
			if depth == 0 {
				emit(sig[start:i])
				start = i + 1
			}
		}
	}
	return out
}

// applySignature copies WIT parameter names and borrow markers onto the Go
// parameters. Parameters are matched by position after the receiver.
func applySignature(f *Function) {
	wps := witParams(f.Signature)
	for i := range f.Params {
		p := &f.Params[i]
		if i < len(wps) {
			p.WitName = wps[i].name
			if wps[i].borrow != "" {
				p.Borrowed = true
				p.Type = markBorrow(p.Type, wps[i].borrow)
			}
		}
		if p.WitName == "" {
			p.WitName = witname.Kebab(p.Name)
		}
	}
}

// markBorrow flags a resource reference as borrowed. A cm.Rep keeps the WIT
// name of its resource until the package's types are known.
func markBorrow(t TypeRef, resource string) TypeRef {
	switch v := t.(type) {
	case Named:
		v.Borrow = true
		return v
	case Rep:
		if v.Resource == "" {
			v.Resource = witRefPrefix + resource
		}
		return v
	}
	return t
}

// witRefPrefix marks a Rep whose resource is still a WIT name.
const witRefPrefix = "wit:"
