package wave

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/wasm-proxy/errors"
)

// Parse decodes WAVE text against t.
func Parse(t *Type, s string) (Value, error) {
	p := &parser{src: s}
	v, err := p.value(t)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.fail("trailing input %q", p.src[p.pos:])
	}
	return v, nil
}

// MustParse is Parse for generated code, where a decode failure means the
// trace and the bindings disagree and nothing can be recovered.
func MustParse(t *Type, s string) Value {
	v, err := Parse(t, s)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	src  string
	path []string
	pos  int
}

func (p *parser) fail(msg string, args ...any) error {
	return errors.New(errors.PhaseValue, errors.KindMalformed).
		Path(p.path...).
		Detail("offset %d: "+msg, append([]any{p.pos}, args...)...).
		Build()
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) accept(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expect(c byte) error {
	if !p.accept(c) {
		return p.fail("expected %q", c)
	}
	return nil
}

func isLabelByte(c byte) bool {
	return c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// label reads an identifier, stripping a leading '%'.
func (p *parser) label() (string, error) {
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '%' {
		p.pos++
	}
	start := p.pos
	for p.pos < len(p.src) && isLabelByte(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		return "", p.fail("expected label")
	}
	return p.src[start:p.pos], nil
}

func (p *parser) number() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *parser) value(t *Type) (Value, error) {
	switch t.kind {
	case KindBool:
		l, err := p.label()
		if err != nil {
			return nil, err
		}
		switch l {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return nil, p.fail("invalid bool %q", l)
	case KindS8, KindS16, KindS32, KindS64:
		return p.signed(t.kind)
	case KindU8, KindU16, KindU32, KindU64:
		return p.unsigned(t.kind)
	case KindF32, KindF64:
		return p.float(t.kind)
	case KindChar:
		return p.char()
	case KindString:
		return p.string()
	case KindList:
		elems, err := p.seq('[', ']', func(int) *Type { return t.elem })
		if err != nil {
			return nil, err
		}
		return List{Elems: elems}, nil
	case KindTuple:
		elems, err := p.seq('(', ')', func(i int) *Type {
			if i < len(t.types) {
				return t.types[i]
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		if len(elems) != len(t.types) {
			return nil, errors.SchemaMismatch(errors.PhaseValue, p.path, t.String(), "tuple arity mismatch")
		}
		return Tuple{Elems: elems}, nil
	case KindRecord:
		return p.record(t)
	case KindVariant:
		return p.variant(t)
	case KindEnum:
		l, err := p.label()
		if err != nil {
			return nil, err
		}
		if t.LabelIndex(l) < 0 {
			return nil, errors.UnknownCase(p.path, t.String(), l)
		}
		return Enum{Case: l}, nil
	case KindOption:
		return p.option(t)
	case KindResult:
		return p.result(t)
	case KindFlags:
		return p.flags(t)
	case KindResource:
		return p.handle()
	}
	return nil, p.fail("unsupported type %s", t)
}

func (p *parser) signed(k Kind) (Value, error) {
	tok := p.number()
	bits := map[Kind]int{KindS8: 8, KindS16: 16, KindS32: 32, KindS64: 64}[k]
	n, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		return nil, p.fail("invalid %s %q", k, tok)
	}
	switch k {
	case KindS8:
		return S8(n), nil
	case KindS16:
		return S16(n), nil
	case KindS32:
		return S32(n), nil
	}
	return S64(n), nil
}

func (p *parser) unsigned(k Kind) (Value, error) {
	tok := p.number()
	bits := map[Kind]int{KindU8: 8, KindU16: 16, KindU32: 32, KindU64: 64}[k]
	n, err := strconv.ParseUint(tok, 10, bits)
	if err != nil {
		return nil, p.fail("invalid %s %q", k, tok)
	}
	switch k {
	case KindU8:
		return U8(n), nil
	case KindU16:
		return U16(n), nil
	case KindU32:
		return U32(n), nil
	}
	return U64(n), nil
}

func (p *parser) float(k Kind) (Value, error) {
	var f float64
	switch c := p.peek(); {
	case c == 'n' || c == 'i':
		l, _ := p.label()
		switch l {
		case "nan":
			f = math.NaN()
		case "inf":
			f = math.Inf(1)
		default:
			return nil, p.fail("invalid %s %q", k, l)
		}
	case c == '-' && strings.HasPrefix(p.src[p.pos:], "-inf"):
		p.pos += len("-inf")
		f = math.Inf(-1)
	default:
		tok := p.number()
		bits := 64
		if k == KindF32 {
			bits = 32
		}
		var err error
		f, err = strconv.ParseFloat(tok, bits)
		if err != nil {
			return nil, p.fail("invalid %s %q", k, tok)
		}
	}
	if k == KindF32 {
		return F32(f), nil
	}
	return F64(f), nil
}

func (p *parser) escape() (rune, error) {
	if p.pos >= len(p.src) {
		return 0, p.fail("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\\', '\'', '"':
		return rune(c), nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'u':
		if p.pos >= len(p.src) || p.src[p.pos] != '{' {
			return 0, p.fail("expected '{' after \\u")
		}
		end := strings.IndexByte(p.src[p.pos:], '}')
		if end < 0 {
			return 0, p.fail("unterminated unicode escape")
		}
		n, err := strconv.ParseUint(p.src[p.pos+1:p.pos+end], 16, 32)
		if err != nil || !utf8.ValidRune(rune(n)) {
			return 0, p.fail("invalid unicode escape")
		}
		p.pos += end + 1
		return rune(n), nil
	}
	return 0, p.fail("unknown escape \\%c", c)
}

func (p *parser) char() (Value, error) {
	if err := p.expect('\''); err != nil {
		return nil, err
	}
	if p.pos >= len(p.src) {
		return nil, p.fail("unterminated char")
	}
	var r rune
	if p.src[p.pos] == '\\' {
		p.pos++
		var err error
		if r, err = p.escape(); err != nil {
			return nil, err
		}
	} else {
		var size int
		r, size = utf8.DecodeRuneInString(p.src[p.pos:])
		p.pos += size
	}
	if p.pos >= len(p.src) || p.src[p.pos] != '\'' {
		return nil, p.fail("unterminated char")
	}
	p.pos++
	return Char(r), nil
}

func (p *parser) string() (Value, error) {
	if err := p.expect('"'); err != nil {
		return nil, err
	}
	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			return nil, p.fail("unterminated string")
		}
		c := p.src[p.pos]
		switch c {
		case '"':
			p.pos++
			return String(b.String()), nil
		case '\\':
			p.pos++
			r, err := p.escape()
			if err != nil {
				return nil, err
			}
			b.WriteRune(r)
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) seq(open, close byte, elem func(int) *Type) ([]Value, error) {
	if err := p.expect(open); err != nil {
		return nil, err
	}
	var out []Value
	for i := 0; ; i++ {
		if p.accept(close) {
			return out, nil
		}
		t := elem(i)
		if t == nil {
			return nil, p.fail("too many elements")
		}
		p.path = append(p.path, strconv.Itoa(i))
		v, err := p.value(t)
		p.path = p.path[:len(p.path)-1]
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if !p.accept(',') {
			if err := p.expect(close); err != nil {
				return nil, err
			}
			return out, nil
		}
	}
}

func (p *parser) record(t *Type) (Value, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	got := make(map[string]Value, len(t.fields))
	for !p.accept('}') {
		name, err := p.label()
		if err != nil {
			return nil, err
		}
		f, ok := t.Field(name)
		if !ok {
			return nil, errors.SchemaMismatch(errors.PhaseValue, p.path, t.String(), "unknown field "+strconv.Quote(name))
		}
		if _, dup := got[name]; dup {
			return nil, p.fail("duplicate field %q", name)
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		p.path = append(p.path, name)
		v, err := p.value(f.Type)
		p.path = p.path[:len(p.path)-1]
		if err != nil {
			return nil, err
		}
		got[name] = v
		if !p.accept(',') {
			if err := p.expect('}'); err != nil {
				return nil, err
			}
			break
		}
	}
	fields := make([]FieldValue, len(t.fields))
	for i, f := range t.fields {
		v, ok := got[f.Name]
		if !ok {
			if f.Type.kind != KindOption {
				return nil, errors.SchemaMismatch(errors.PhaseValue, p.path, t.String(), "missing field "+strconv.Quote(f.Name))
			}
			v = Option{}
		}
		fields[i] = FieldValue{Name: f.Name, Value: v}
	}
	return Record{Fields: fields}, nil
}

func (p *parser) payload(t *Type, name string) (Value, error) {
	if t == nil {
		if p.peek() == '(' {
			return nil, p.fail("case %q takes no payload", name)
		}
		return nil, nil
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	p.path = append(p.path, name)
	v, err := p.value(t)
	p.path = p.path[:len(p.path)-1]
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *parser) variant(t *Type) (Value, error) {
	name, err := p.label()
	if err != nil {
		return nil, err
	}
	c, ok := t.Case(name)
	if !ok {
		return nil, errors.UnknownCase(p.path, t.String(), name)
	}
	v, err := p.payload(c.Type, name)
	if err != nil {
		return nil, err
	}
	return Variant{Case: name, Payload: v}, nil
}

func (p *parser) option(t *Type) (Value, error) {
	name, err := p.label()
	if err != nil {
		return nil, err
	}
	switch name {
	case "none":
		return Option{}, nil
	case "some":
		v, err := p.payload(t.elem, name)
		if err != nil {
			return nil, err
		}
		return Option{Value: v}, nil
	}
	return nil, errors.UnknownCase(p.path, t.String(), name)
}

func (p *parser) result(t *Type) (Value, error) {
	name, err := p.label()
	if err != nil {
		return nil, err
	}
	var inner *Type
	switch name {
	case "ok":
		inner = t.ok
	case "err":
		inner = t.err
	default:
		return nil, errors.UnknownCase(p.path, t.String(), name)
	}
	v, err := p.payload(inner, name)
	if err != nil {
		return nil, err
	}
	return Result{IsErr: name == "err", Payload: v}, nil
}

func (p *parser) flags(t *Type) (Value, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	var set []string
	for !p.accept('}') {
		l, err := p.label()
		if err != nil {
			return nil, err
		}
		set = append(set, l)
		if !p.accept(',') {
			if err := p.expect('}'); err != nil {
				return nil, err
			}
			break
		}
	}
	f, err := NewFlags(t, set...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) handle() (Value, error) {
	if c := p.peek(); c >= '0' && c <= '9' {
		return p.handleID(false)
	}
	l, err := p.label()
	if err != nil {
		return nil, err
	}
	if l != "own" && l != "borrow" {
		return nil, p.fail("invalid handle %q", l)
	}
	if err := p.expect('('); err != nil {
		return nil, err
	}
	v, err := p.handleID(l == "borrow")
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *parser) handleID(borrowed bool) (Value, error) {
	tok := p.number()
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return nil, p.fail("invalid handle id %q", tok)
	}
	return Handle{ID: uint32(n), Borrowed: borrowed}, nil
}
