package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wippyai/wasm-proxy/errors"
)

// EventKind tags a FuncCall.
type EventKind uint8

const (
	ExportArgs EventKind = iota + 1
	ExportRet
	ImportArgs
	ImportRet
)

var kindNames = map[EventKind]string{
	ExportArgs: "ExportArgs",
	ExportRet:  "ExportRet",
	ImportArgs: "ImportArgs",
	ImportRet:  "ImportRet",
}

func (k EventKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// IsExport reports whether the event belongs to the export channel.
func (k EventKind) IsExport() bool {
	return k == ExportArgs || k == ExportRet
}

// FuncCall is one boundary crossing. Args is set for *Args events, Ret for
// *Ret events. Method is always set for ExportArgs and optional elsewhere.
// Every string is WAVE text.
type FuncCall struct {
	Method *string
	Ret    *string
	Args   []string
	Kind   EventKind
}

// NewExportArgs creates an ExportArgs event.
func NewExportArgs(method string, args []string) FuncCall {
	return FuncCall{Kind: ExportArgs, Method: &method, Args: args}
}

// NewExportRet creates an ExportRet event.
func NewExportRet(method, ret *string) FuncCall {
	return FuncCall{Kind: ExportRet, Method: method, Ret: ret}
}

// NewImportArgs creates an ImportArgs event.
func NewImportArgs(method *string, args []string) FuncCall {
	return FuncCall{Kind: ImportArgs, Method: method, Args: args}
}

// NewImportRet creates an ImportRet event.
func NewImportRet(method, ret *string) FuncCall {
	return FuncCall{Kind: ImportRet, Method: method, Ret: ret}
}

// Some returns a pointer to s for optional fields.
func Some(s string) *string {
	return &s
}

// MethodName returns the method or "<unknown>".
func (c FuncCall) MethodName() string {
	if c.Method == nil {
		return "<unknown>"
	}
	return *c.Method
}

// String renders the event the way the console recorder prints it.
func (c FuncCall) String() string {
	switch c.Kind {
	case ExportArgs, ImportArgs:
		return c.MethodName() + "(" + strings.Join(c.Args, ", ") + ")"
	default:
		if c.Ret == nil {
			return "()"
		}
		return *c.Ret
	}
}

type argsBody struct {
	Method *string  `json:"method"`
	Args   []string `json:"args"`
}

type retBody struct {
	Method *string `json:"method"`
	Ret    *string `json:"ret"`
}

// MarshalJSON writes the externally tagged form:
// {"ExportArgs":{"method":"add","args":["3","4"]}}.
func (c FuncCall) MarshalJSON() ([]byte, error) {
	var body any
	switch c.Kind {
	case ExportArgs, ImportArgs:
		args := c.Args
		if args == nil {
			args = []string{}
		}
		body = argsBody{Method: c.Method, Args: args}
	case ExportRet, ImportRet:
		body = retBody{Method: c.Method, Ret: c.Ret}
	default:
		return nil, errors.InvalidInput(errors.PhaseTrace, "event has no kind")
	}
	return json.Marshal(map[string]any{c.Kind.String(): body})
}

// UnmarshalJSON reads the externally tagged form.
func (c *FuncCall) UnmarshalJSON(data []byte) error {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil {
		return err
	}
	if len(outer) != 1 {
		return errors.Malformed(errors.PhaseTrace, "event: expected exactly one tag", nil)
	}
	for tag, raw := range outer {
		var kind EventKind
		for k, name := range kindNames {
			if name == tag {
				kind = k
			}
		}
		if kind == 0 {
			return errors.Malformed(errors.PhaseTrace, "event tag "+tag, nil)
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		switch kind {
		case ExportArgs, ImportArgs:
			var b argsBody
			if err := dec.Decode(&b); err != nil {
				return err
			}
			if b.Args == nil {
				return errors.Malformed(errors.PhaseTrace, tag+": missing args", nil)
			}
			if kind == ExportArgs && b.Method == nil {
				return errors.Malformed(errors.PhaseTrace, tag+": missing method", nil)
			}
			*c = FuncCall{Kind: kind, Method: b.Method, Args: b.Args}
		default:
			var b retBody
			if err := dec.Decode(&b); err != nil {
				return err
			}
			*c = FuncCall{Kind: kind, Method: b.Method, Ret: b.Ret}
		}
	}
	return nil
}
