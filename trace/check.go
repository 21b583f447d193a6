package trace

import "github.com/wippyai/wasm-proxy/errors"

// Check drives a Replayer over events the way a replaying component does:
// each export is dispatched, the imports it made are answered in recorded
// order and its return is asserted. A non-nil rec receives every event the
// replay consumed, so it ends up holding the trace as replay sees it.
// Check returns the number of exports replayed. Reaching an exit import
// ends the check without error.
func Check(events []FuncCall, rec *Recorder) (int, error) {
	r := NewReplayer(events)
	exports := 0
	for {
		call, ok, err := r.ReplayExport()
		if err != nil {
			return exports, err
		}
		if !ok {
			break
		}
		exports++
		if rec != nil {
			method := call.Method
			rec.RecordArgs(&method, call.Args, true)
		}
		if err := checkCall(r, events, rec); err != nil {
			if r.Expected(err) {
				return exports, recErr(rec)
			}
			return exports, err
		}
	}
	if !r.Drained() {
		return exports, errors.New(errors.PhaseReplay, errors.KindReplayMismatch).
			Detail("%d events left after the last export", r.Remaining()).
			Build()
	}
	return exports, recErr(rec)
}

// checkCall answers the imports of the export just dispatched and asserts
// its return. A trace that ends or moves to the next export without a
// return leaves the assertion a no-op, as it is for a component.
func checkCall(r *Replayer, events []FuncCall, rec *Recorder) error {
	for {
		pos := len(events) - r.Remaining()
		if pos >= len(events) {
			return r.AssertExportRet(nil, nil)
		}
		ev := events[pos]
		switch ev.Kind {
		case ImportArgs:
			if rec != nil {
				rec.RecordArgs(ev.Method, ev.Args, false)
			}
			ret, err := r.ReplayImport(ev.Method, ev.Args)
			if err != nil {
				return err
			}
			if rec != nil {
				rec.RecordRet(ev.Method, ret, false)
			}
		case ExportRet:
			if err := r.AssertExportRet(ev.Method, ev.Ret); err != nil {
				return err
			}
			if rec != nil {
				rec.RecordRet(ev.Method, ev.Ret, true)
			}
			return nil
		case ExportArgs:
			return r.AssertExportRet(nil, nil)
		default:
			return errors.ReplayMismatch(ev.MethodName(), ImportArgs.String()+" or "+ExportRet.String(), ev.Kind.String())
		}
	}
}

func recErr(rec *Recorder) error {
	if rec == nil {
		return nil
	}
	return rec.Err()
}
