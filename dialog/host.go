package dialog

import (
	"fmt"
	"unicode/utf8"

	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/wave"
)

// Namespace is the interface Host serves.
const Namespace = "proxy:util/dialog"

// Host answers the dialog imports of an instrumented component by asking
// a person through a Prompter.
type Host struct {
	p Prompter
}

// NewHost creates a host over p.
func NewHost(p Prompter) *Host {
	return &Host{p: p}
}

// Namespace returns the WIT interface the host implements.
func (h *Host) Namespace() string { return Namespace }

func (h *Host) Print(msg string) error {
	return h.p.Print(msg)
}

func (h *Host) ReadBool(dep uint32) (string, error) {
	i, err := h.p.Select("Select a bool", []string{"true", "false"}, int(dep))
	if err != nil {
		return "", err
	}
	return wave.ToString(wave.Bool(i == 0)), nil
}

func (h *Host) ReadU8(dep uint32) (string, error)  { return h.number(wave.U8Type, dep) }
func (h *Host) ReadU16(dep uint32) (string, error) { return h.number(wave.U16Type, dep) }
func (h *Host) ReadU32(dep uint32) (string, error) { return h.number(wave.U32Type, dep) }
func (h *Host) ReadU64(dep uint32) (string, error) { return h.number(wave.U64Type, dep) }
func (h *Host) ReadS8(dep uint32) (string, error)  { return h.number(wave.S8Type, dep) }
func (h *Host) ReadS16(dep uint32) (string, error) { return h.number(wave.S16Type, dep) }
func (h *Host) ReadS32(dep uint32) (string, error) { return h.number(wave.S32Type, dep) }
func (h *Host) ReadS64(dep uint32) (string, error) { return h.number(wave.S64Type, dep) }
func (h *Host) ReadF32(dep uint32) (string, error) { return h.number(wave.F32Type, dep) }
func (h *Host) ReadF64(dep uint32) (string, error) { return h.number(wave.F64Type, dep) }

// Kinds lists the value kinds Read accepts, in WIT spelling.
var Kinds = []string{"bool", "u8", "u16", "u32", "u64", "s8", "s16", "s32", "s64", "f32", "f64", "char", "string"}

// Read dispatches to the read function of the named kind.
func (h *Host) Read(kind string, dep uint32) (string, error) {
	reads := map[string]func(uint32) (string, error){
		"bool": h.ReadBool,
		"u8":   h.ReadU8, "u16": h.ReadU16, "u32": h.ReadU32, "u64": h.ReadU64,
		"s8": h.ReadS8, "s16": h.ReadS16, "s32": h.ReadS32, "s64": h.ReadS64,
		"f32": h.ReadF32, "f64": h.ReadF64,
		"char":   h.ReadChar,
		"string": h.ReadString,
	}
	read, ok := reads[kind]
	if !ok {
		return "", errors.InvalidInput(errors.PhaseDialog, "no prompt for "+kind)
	}
	return read(dep)
}

// ReadChar takes exactly one character, unquoted.
func (h *Host) ReadChar(dep uint32) (string, error) {
	s, err := h.p.Input("Enter a char", int(dep), func(s string) error {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("enter exactly one character")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	r, _ := utf8.DecodeRuneInString(s)
	return wave.ToString(wave.Char(r)), nil
}

// ReadString takes the line as typed, unquoted; empty is allowed.
func (h *Host) ReadString(dep uint32) (string, error) {
	s, err := h.p.Input("Enter a string", int(dep), func(string) error { return nil })
	if err != nil {
		return "", err
	}
	return wave.ToString(wave.String(s)), nil
}

// ReadSelect returns the index of the chosen option.
func (h *Host) ReadSelect(prompt string, options []string, dep uint32) (uint32, error) {
	i, err := h.p.Select(prompt, options, int(dep))
	if err != nil {
		return 0, err
	}
	return uint32(i), nil
}

func (h *Host) number(t *wave.Type, dep uint32) (string, error) {
	var v wave.Value
	_, err := h.p.Input("Enter a "+t.String(), int(dep), func(s string) error {
		var err error
		v, err = wave.Parse(t, s)
		return err
	})
	if err != nil {
		return "", err
	}
	return wave.ToString(v), nil
}
