package guest

import (
	"strconv"
	"strings"

	"go.bytecodealliance.org/cm"

	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/wave"
)

// Texts encodes vals for an args event.
func Texts(vals ...wave.Value) cm.List[string] {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = wave.ToString(v)
	}
	return cm.ToList(out)
}

// Text encodes v for a ret event; a nil v is a unit result.
func Text(v wave.Value) cm.Option[string] {
	if v == nil {
		return cm.None[string]()
	}
	return cm.Some(wave.ToString(v))
}

// Name wraps a function name for the control interfaces.
func Name(name string) cm.Option[string] {
	return cm.Some(name)
}

// Arg parses argument i of a replayed export call.
func Arg(t *wave.Type, name string, args []string, i int) wave.Value {
	if i >= len(args) {
		panic(errors.New(errors.PhaseReplay, errors.KindReplayMismatch).
			Path(name).
			Detail("trace has %d arguments, call needs %d", len(args), i+1).
			Build())
	}
	return wave.MustParse(t, args[i])
}

// Ret parses the recorded result of a replayed call.
func Ret(t *wave.Type, name string, ret cm.Option[string]) wave.Value {
	s := ret.Some()
	if s == nil {
		panic(errors.ReplayMismatch(name, "a result", "none"))
	}
	return wave.MustParse(t, *s)
}

// Call formats a call for the debug and dialog channels:
// "export: docs:counter/api.add(3, 4)".
func Call(side, name string, vals ...wave.Value) string {
	var b strings.Builder
	b.WriteString(side)
	b.WriteString(": ")
	b.WriteString(name)
	b.WriteByte('(')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(wave.ToString(v))
	}
	b.WriteByte(')')
	return b.String()
}

// Returned formats a result line; a nil v is a unit result.
func Returned(v wave.Value) string {
	if v == nil {
		return "ret: ()"
	}
	return "ret: " + wave.ToString(v)
}

// Field formats the label printed before a record field is read.
func Field(dep uint32, name string) string {
	return strings.Repeat("  ", int(dep)) + name + ":"
}

// Length parses the element count entered for a list.
func Length(s string) int {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		panic(errors.Malformed(errors.PhaseValue, "list length", err))
	}
	return int(n)
}

// UnknownCase is the panic value of a decode that met a case the bindings
// do not declare.
func UnknownCase(witType, label string) error {
	return errors.UnknownCase(nil, witType, label)
}

// UnknownTag is UnknownCase for a discriminant outside the declared cases.
func UnknownTag(witType string, tag uint64) error {
	return errors.UnknownCase(nil, witType, "#"+strconv.FormatUint(tag, 10))
}

// UnknownFunction is the panic value of a replay that met an export this
// proxy does not implement.
func UnknownFunction(name string) error {
	return errors.NotFound(errors.PhaseReplay, "export", name)
}
