package trace

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-proxy/errors"
)

// Recorder is the host side of proxy:recorder/record. Each call appends one
// event to the sink. The first write failure is kept and reported by Err;
// later events are dropped.
type Recorder struct {
	sink Sink
	err  error
	mu   sync.Mutex
	n    int
}

// NewRecorder creates a recorder writing to sink.
func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

// RecordArgs records the arguments of a call crossing the boundary.
func (r *Recorder) RecordArgs(method *string, args []string, isExport bool) {
	if isExport {
		if method == nil {
			r.fail(errors.InvalidInput(errors.PhaseTrace, "export call recorded without a method"))
			return
		}
		r.write(NewExportArgs(*method, args))
		return
	}
	r.write(NewImportArgs(method, args))
}

// RecordRet records the return value of a call crossing the boundary.
func (r *Recorder) RecordRet(method, ret *string, isExport bool) {
	if isExport {
		r.write(NewExportRet(method, ret))
		return
	}
	r.write(NewImportRet(method, ret))
}

// Err returns the first error encountered while recording.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Count returns the number of events written.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Close closes the underlying sink.
func (r *Recorder) Close() error {
	if err := r.sink.Close(); err != nil {
		return err
	}
	return r.Err()
}

func (r *Recorder) write(ev FuncCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	if err := r.sink.Write(ev); err != nil {
		r.err = errors.Wrap(errors.PhaseTrace, errors.KindMalformed, err, "write event")
		Logger().Error("trace write failed", zap.Stringer("event", ev.Kind), zap.Error(err))
		return
	}
	r.n++
	Logger().Debug("recorded", zap.Stringer("kind", ev.Kind), zap.String("call", ev.String()))
}

func (r *Recorder) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}
