package wave

import (
	"math"
	"strconv"
	"strings"
)

var keywords = map[string]bool{
	"true":   true,
	"false":  true,
	"some":   true,
	"none":   true,
	"ok":     true,
	"err":    true,
	"inf":    true,
	"nan":    true,
	"own":    true,
	"borrow": true,
}

// ToString renders v in WAVE text form.
func ToString(v Value) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

// Equal reports whether two values have the same text form.
func Equal(a, b Value) bool {
	return ToString(a) == ToString(b)
}

func write(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case nil:
		b.WriteString("_")
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case S8:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case S16:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case S32:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case S64:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case U8:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case U16:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case U32:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case U64:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case F32:
		writeFloat(b, float64(v), 32)
	case F64:
		writeFloat(b, float64(v), 64)
	case Char:
		b.WriteByte('\'')
		writeEscaped(b, rune(v), '\'')
		b.WriteByte('\'')
	case String:
		b.WriteByte('"')
		for _, r := range string(v) {
			writeEscaped(b, r, '"')
		}
		b.WriteByte('"')
	case List:
		writeSeq(b, '[', ']', v.Elems)
	case Tuple:
		writeSeq(b, '(', ')', v.Elems)
	case Record:
		b.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLabel(b, f.Name)
			b.WriteString(": ")
			write(b, f.Value)
		}
		b.WriteByte('}')
	case Variant:
		writeLabel(b, v.Case)
		writePayload(b, v.Payload)
	case Enum:
		writeLabel(b, v.Case)
	case Option:
		if v.Value == nil {
			b.WriteString("none")
			return
		}
		b.WriteString("some")
		writePayload(b, v.Value)
	case Result:
		if v.IsErr {
			b.WriteString("err")
		} else {
			b.WriteString("ok")
		}
		writePayload(b, v.Payload)
	case Flags:
		b.WriteByte('{')
		for i, l := range v.Labels {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLabel(b, l)
		}
		b.WriteByte('}')
	case Handle:
		if v.Borrowed {
			b.WriteString("borrow(")
		} else {
			b.WriteString("own(")
		}
		b.WriteString(strconv.FormatUint(uint64(v.ID), 10))
		b.WriteByte(')')
	}
}

func writeSeq(b *strings.Builder, open, close byte, elems []Value) {
	b.WriteByte(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		write(b, e)
	}
	b.WriteByte(close)
}

func writePayload(b *strings.Builder, v Value) {
	if v == nil {
		return
	}
	b.WriteByte('(')
	write(b, v)
	b.WriteByte(')')
}

func writeLabel(b *strings.Builder, label string) {
	if keywords[label] {
		b.WriteByte('%')
	}
	b.WriteString(label)
}

func writeFloat(b *strings.Builder, f float64, bits int) {
	switch {
	case math.IsNaN(f):
		b.WriteString("nan")
	case math.IsInf(f, 1):
		b.WriteString("inf")
	case math.IsInf(f, -1):
		b.WriteString("-inf")
	default:
		b.WriteString(strconv.FormatFloat(f, 'g', -1, bits))
	}
}

func writeEscaped(b *strings.Builder, r rune, quote rune) {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\r':
		b.WriteString(`\r`)
	case quote:
		b.WriteByte('\\')
		b.WriteRune(r)
	default:
		if r < 0x20 || r == 0x7f {
			b.WriteString(`\u{`)
			b.WriteString(strconv.FormatInt(int64(r), 16))
			b.WriteByte('}')
			return
		}
		b.WriteRune(r)
	}
}
