package trace

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-proxy/errors"
)

const maxLine = 64 << 20

// Load reads newline-delimited events. Lines that do not decode to an event
// are skipped, so hand-edited or truncated traces still load. Only I/O
// failures are returned as errors.
func Load(r io.Reader) ([]FuncCall, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var events []FuncCall
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		var ev FuncCall
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			Logger().Debug("skipping trace line", zap.Int("line", line), zap.Error(err))
			continue
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseTrace, errors.KindMalformed, err, "read trace")
	}
	return events, nil
}

// LoadFile reads a trace file.
func LoadFile(path string) ([]FuncCall, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseTrace, errors.KindNotFound, err, "open trace "+path)
	}
	defer f.Close()
	return Load(f)
}

// Format writes one human-readable line per event.
func Format(w io.Writer, events []FuncCall) error {
	bw := bufio.NewWriter(w)
	for _, ev := range events {
		side := "import"
		if ev.Kind.IsExport() {
			side = "export"
		}
		var err error
		switch ev.Kind {
		case ExportArgs, ImportArgs:
			_, err = bw.WriteString(side + ": " + ev.String() + "\n")
		default:
			_, err = bw.WriteString(side + ": " + ev.MethodName() + " -> " + ev.String() + "\n")
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
