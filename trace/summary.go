package trace

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Summary counts events per kind and calls per method.
type Summary struct {
	Kinds   map[EventKind]int
	Exports map[string]int
	Imports map[string]int
	Total   int
	// Exited is set when the last event is an exit import.
	Exited bool
}

// Summarize builds a summary of events.
func Summarize(events []FuncCall) Summary {
	s := Summary{
		Kinds:   make(map[EventKind]int),
		Exports: make(map[string]int),
		Imports: make(map[string]int),
		Total:   len(events),
	}
	for _, ev := range events {
		s.Kinds[ev.Kind]++
		switch ev.Kind {
		case ExportArgs:
			s.Exports[ev.MethodName()]++
		case ImportArgs:
			s.Imports[ev.MethodName()]++
		}
	}
	if n := len(events); n > 0 {
		last := events[n-1]
		s.Exited = last.Kind == ImportArgs && last.Method != nil && strings.HasPrefix(*last.Method, ExitPrefix)
	}
	return s
}

// WriteTo prints the summary, methods sorted by name.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	p := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	if err := p("events: %d (export %d/%d, import %d/%d)\n", s.Total,
		s.Kinds[ExportArgs], s.Kinds[ExportRet], s.Kinds[ImportArgs], s.Kinds[ImportRet]); err != nil {
		return total, err
	}
	for _, section := range []struct {
		title string
		calls map[string]int
	}{{"exports", s.Exports}, {"imports", s.Imports}} {
		if len(section.calls) == 0 {
			continue
		}
		if err := p("%s:\n", section.title); err != nil {
			return total, err
		}
		names := make([]string, 0, len(section.calls))
		for name := range section.calls {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := p("  %-40s %d\n", name, section.calls[name]); err != nil {
				return total, err
			}
		}
	}
	if s.Exited {
		if err := p("ends with process exit\n"); err != nil {
			return total, err
		}
	}
	return total, nil
}
