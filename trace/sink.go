package trace

import (
	"encoding/json"
	"io"
	"sync"
)

// Sink receives recorded events in order.
type Sink interface {
	Write(FuncCall) error
	Close() error
}

// StreamSink writes each event as one JSON line as soon as it is recorded,
// so a crashed run still leaves every event before the crash on disk.
type StreamSink struct {
	w  io.Writer
	mu sync.Mutex
}

// NewStreamSink creates a sink over w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

// Write encodes and flushes one event.
func (s *StreamSink) Write(ev FuncCall) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.w.Write(data); err != nil {
		return err
	}
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the writer if it implements io.Closer.
func (s *StreamSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// MemorySink keeps events in memory.
type MemorySink struct {
	events []FuncCall
	mu     sync.Mutex
}

// Write appends an event.
func (s *MemorySink) Write(ev FuncCall) error {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	return nil
}

// Close is a no-op.
func (s *MemorySink) Close() error { return nil }

// Events returns a copy of the recorded events.
func (s *MemorySink) Events() []FuncCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FuncCall, len(s.events))
	copy(out, s.events)
	return out
}
