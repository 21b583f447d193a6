package trace

import (
	stderrors "errors"
	"strconv"
	"strings"
	"sync"

	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-proxy/errors"
)

// ExitPrefix marks imports that end the process. Their ImportArgs event is
// the last one in a trace; no ImportRet follows.
const ExitPrefix = "wasi:cli/exit"

// State is the replay position within the call protocol.
type State uint8

const (
	AwaitingExportCall State = iota
	Dispatching
	AwaitingImportReply
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingExportCall:
		return "awaiting-export-call"
	case Dispatching:
		return "dispatching"
	case AwaitingImportReply:
		return "awaiting-import-reply"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Call is an export invocation pulled from a trace.
type Call struct {
	Method string
	Args   []string
}

// Replayer is the host side of proxy:recorder/replay. It serves events from a
// loaded trace in order and checks the component against them.
type Replayer struct {
	events   []FuncCall
	pos      int
	state    State
	exitCode uint32
	mu       sync.Mutex
}

// NewReplayer creates a replayer over events.
func NewReplayer(events []FuncCall) *Replayer {
	return &Replayer{events: events}
}

// ReplayExport returns the next export call. ok is false once the trace has
// no more events or the process was terminated.
func (r *Replayer) ReplayExport() (call Call, ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Terminated {
		return Call{}, false, nil
	}
	ev, has := r.peek()
	if !has {
		r.state = AwaitingExportCall
		return Call{}, false, nil
	}
	if ev.Kind != ExportArgs {
		return Call{}, false, r.mismatch("replay-export", ExportArgs.String(), ev)
	}
	r.pos++
	r.state = Dispatching
	Logger().Debug("replay export", zap.String("call", ev.String()))
	return Call{Method: *ev.Method, Args: ev.Args}, true, nil
}

// AssertExportRet checks the return of the export just dispatched. The
// method is compared only when both sides carry one. If the trace has no
// ExportRet at this position the call is a no-op.
func (r *Replayer) AssertExportRet(method, ret *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev, has := r.peek()
	if !has || ev.Kind != ExportRet {
		return nil
	}
	r.pos++
	r.state = AwaitingExportCall

	if method != nil && ev.Method != nil && *method != *ev.Method {
		return errors.ReplayMismatch("assert-export-ret", *ev.Method, *method)
	}
	if !optEqual(ret, ev.Ret) {
		return errors.ReplayMismatch(ev.MethodName(), optString(ev.Ret), optString(ret))
	}
	return nil
}

// ReplayImport checks an outgoing import call against the trace and returns
// the recorded result. A nil args skips the argument check. For an exit
// import the replayer moves to Terminated and returns a *sys.ExitError
// carrying the recorded status.
func (r *Replayer) ReplayImport(method *string, args []string) (*string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Terminated {
		return nil, sys.NewExitError(r.exitCode)
	}

	ev, has := r.peek()
	if !has {
		return nil, errors.ReplayMismatch(optString(method), "end of trace", ImportArgs.String())
	}
	if ev.Kind != ImportArgs {
		return nil, r.mismatch(optString(method), ImportArgs.String(), ev)
	}
	r.pos++

	if method != nil && ev.Method != nil && *method != *ev.Method {
		return nil, errors.ReplayMismatch("replay-import", *ev.Method, *method)
	}
	if args != nil && !argsEqual(args, ev.Args) {
		return nil, errors.ReplayMismatch(ev.MethodName(),
			"("+strings.Join(ev.Args, ", ")+")", "("+strings.Join(args, ", ")+")")
	}

	name := ev.MethodName()
	if method != nil {
		name = *method
	}
	if strings.HasPrefix(name, ExitPrefix) {
		r.state = Terminated
		r.exitCode = exitStatus(ev.Args)
		Logger().Debug("replay reached exit", zap.String("method", name), zap.Uint32("code", r.exitCode))
		return nil, sys.NewExitError(r.exitCode)
	}

	reply, has := r.peek()
	if !has {
		r.state = AwaitingImportReply
		return nil, errors.ReplayMismatch(name, ImportRet.String(), "end of trace")
	}
	if reply.Kind != ImportRet {
		r.state = AwaitingImportReply
		return nil, r.mismatch(name, ImportRet.String(), reply)
	}
	r.pos++
	r.state = Dispatching
	return reply.Ret, nil
}

// Expected reports whether err is the exit produced by replaying an exit
// import, which ends a replay without failure.
func (r *Replayer) Expected(err error) bool {
	var exit *sys.ExitError
	if !stderrors.As(err, &exit) {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == Terminated && exit.ExitCode() == r.exitCode
}

// Drained reports whether every event has been consumed. A terminated
// replay counts as drained.
func (r *Replayer) Drained() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == Terminated || r.pos >= len(r.events)
}

// Remaining returns the number of unconsumed events.
func (r *Replayer) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events) - r.pos
}

// State returns the current protocol state.
func (r *Replayer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// ExitCode returns the recorded exit status once terminated.
func (r *Replayer) ExitCode() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exitCode
}

func (r *Replayer) peek() (FuncCall, bool) {
	if r.pos >= len(r.events) {
		return FuncCall{}, false
	}
	return r.events[r.pos], true
}

func (r *Replayer) mismatch(method, want string, got FuncCall) error {
	return errors.ReplayMismatch(method, want, got.Kind.String()+" "+got.String())
}

// exitStatus maps the recorded exit argument to a status code:
// "ok" is 0, "err" is 1, a bare integer is used as is.
func exitStatus(args []string) uint32 {
	if len(args) == 0 {
		return 0
	}
	arg := strings.TrimSpace(args[0])
	switch {
	case arg == "ok" || strings.HasPrefix(arg, "ok("):
		return 0
	case arg == "err" || strings.HasPrefix(arg, "err("):
		return 1
	}
	if n, err := strconv.ParseUint(arg, 10, 32); err == nil {
		return uint32(n)
	}
	return 1
}

func optEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func optString(s *string) string {
	if s == nil {
		return "none"
	}
	return *s
}

func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
