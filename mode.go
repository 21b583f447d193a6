package proxy

import (
	"strings"

	"github.com/wippyai/wasm-proxy/errors"
)

// Mode selects the instrumentation strategy for one run.
type Mode uint8

const (
	// Record wraps every boundary call and logs it to a trace.
	Record Mode = iota + 1
	// Replay serves a recorded trace back to the component.
	Replay
	// Fuzz drives exports with arbitrary arguments and mocks every import.
	Fuzz
	// Dialog is Fuzz with values entered at a terminal.
	Dialog
)

// Modes lists every mode in declaration order.
var Modes = []Mode{Record, Replay, Fuzz, Dialog}

func (m Mode) String() string {
	switch m {
	case Record:
		return "record"
	case Replay:
		return "replay"
	case Fuzz:
		return "fuzz"
	case Dialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, errors.InvalidInput(errors.PhaseConfig, "unknown mode "+s+" (want record, replay, fuzz or dialog)")
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "mode" }

// UnmarshalText implements encoding.TextUnmarshaler for configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Mocked reports whether imports are answered by generated code instead of
// the host.
func (m Mode) Mocked() bool {
	return m == Replay || m == Fuzz || m == Dialog
}

// ControlImport is the interface the generated code calls to record,
// replay or obtain values.
func (m Mode) ControlImport() string {
	switch m {
	case Record:
		return "proxy:recorder/record@0.1.0"
	case Replay:
		return "proxy:recorder/replay@0.1.0"
	case Fuzz:
		return "proxy:util/debug"
	case Dialog:
		return "proxy:util/dialog"
	default:
		return ""
	}
}
