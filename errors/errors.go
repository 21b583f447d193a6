package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSynthesize Phase = "synthesize" // world and composition synthesis
	PhaseCatalog    Phase = "catalog"    // binding traversal
	PhaseGenerate   Phase = "generate"   // code emission
	PhaseValue      Phase = "value"      // typed value encode/decode
	PhaseTrace      Phase = "trace"      // trace load/store
	PhaseReplay     Phase = "replay"     // replay state machine
	PhaseTool       Phase = "tool"       // external tool invocation
	PhaseConfig     Phase = "config"     // configuration loading
	PhaseDialog     Phase = "dialog"     // terminal prompts
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedItem Kind = "unsupported_item"
	KindSchemaMismatch  Kind = "schema_mismatch"
	KindReplayMismatch  Kind = "replay_mismatch"
	KindUnknownPath     Kind = "unknown_path"
	KindMalformed       Kind = "malformed"
	KindToolFailed      Kind = "tool_failed"
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindExhausted       Kind = "exhausted"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	WitType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.WitType != "" {
		b.WriteString(": ")
		switch {
		case e.GoType != "" && e.WitType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", WIT type ")
			b.WriteString(e.WitType)
		case e.GoType != "":
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		default:
			b.WriteString("WIT type ")
			b.WriteString(e.WitType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.WitType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the item path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// WitType sets the WIT type name
func (b *Builder) WitType(t string) *Builder {
	b.err.WitType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedItem reports a world or binding item outside the supported subset.
func UnsupportedItem(phase Phase, name, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedItem,
		Path:   []string{name},
		Detail: fmt.Sprintf("%s is not an interface", what),
	}
}

// UnknownCase creates a schema mismatch error for variant, enum and flags labels
func UnknownCase(path []string, witType, label string) *Error {
	return &Error{
		Phase:   PhaseValue,
		Kind:    KindSchemaMismatch,
		Path:    path,
		WitType: witType,
		Detail:  fmt.Sprintf("unknown case %q", label),
		Value:   label,
	}
}

// SchemaMismatch creates a schema mismatch error
func SchemaMismatch(phase Phase, path []string, witType, detail string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindSchemaMismatch,
		Path:    path,
		WitType: witType,
		Detail:  detail,
	}
}

// ReplayMismatch reports a divergence between the trace and the live call
func ReplayMismatch(method, expected, actual string) *Error {
	return &Error{
		Phase:  PhaseReplay,
		Kind:   KindReplayMismatch,
		Path:   []string{method},
		Detail: fmt.Sprintf("expected %s, got %s", expected, actual),
	}
}

// UnknownPath creates an error for a module path missing from the catalog
func UnknownPath(path []string) *Error {
	return &Error{
		Phase:  PhaseCatalog,
		Kind:   KindUnknownPath,
		Path:   path,
		Detail: "module path not in catalog",
	}
}

// Malformed creates an error for unparsable input
func Malformed(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformed,
		Detail: fmt.Sprintf("malformed %s", what),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// ToolError is returned when an external executable fails.
// It carries the tool name and exit status so orchestrator output
// stays actionable without the core knowing about processes.
type ToolError struct {
	Cause    error
	Tool     string
	Args     []string
	Stderr   string
	ExitCode int
}

// NewToolError creates a tool failure error
func NewToolError(tool string, args []string, exitCode int, stderr string, cause error) *ToolError {
	return &ToolError{
		Tool:     tool,
		Args:     args,
		ExitCode: exitCode,
		Stderr:   strings.TrimSpace(stderr),
		Cause:    cause,
	}
}

func (e *ToolError) Error() string {
	var b strings.Builder
	b.WriteString("[tool] tool_failed: ")
	b.WriteString(e.Tool)
	if len(e.Args) > 0 {
		b.WriteByte(' ')
		b.WriteString(e.Args[0])
	}
	fmt.Fprintf(&b, " exited with status %d", e.ExitCode)
	if e.Stderr != "" {
		lines := strings.Split(e.Stderr, "\n")
		b.WriteString(": ")
		b.WriteString(lines[len(lines)-1])
	}
	if e.Cause != nil && e.ExitCode < 0 {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *ToolError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type
func (e *ToolError) Is(target error) bool {
	switch t := target.(type) {
	case *ToolError:
		return t.Tool == "" || t.Tool == e.Tool
	case *Error:
		return t.Phase == PhaseTool && t.Kind == KindToolFailed
	}
	return false
}
