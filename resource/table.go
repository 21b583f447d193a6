package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("resource table closed")

// Handle is an index into a Table. Handle 0 is reserved and always invalid.
type Handle uint32

// Dropper is implemented by values that release state when removed.
type Dropper interface {
	Drop()
}

// Table is an arena-of-indices: values live in a slice, handles are
// 1-based positions, and freed slots are reused through a free list.
type Table[T any] struct {
	entries  []entry[T]
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry[T any] struct {
	value       T
	borrowCount uint32
	valid       bool
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		entries:  make([]entry[T], 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Insert stores a value and returns its handle, or 0 once the table is closed.
func (t *Table[T]) Insert(value T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0
	}

	e := entry[T]{value: value, valid: true}

	if len(t.freeList) > 0 {
		handle := t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
		return handle
	}

	t.entries = append(t.entries, e)
	return Handle(len(t.entries))
}

func (t *Table[T]) lookup(handle Handle) *entry[T] {
	if handle == 0 || int(handle-1) >= len(t.entries) {
		return nil
	}
	e := &t.entries[handle-1]
	if !e.valid {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (t *Table[T]) Get(handle Handle) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if e := t.lookup(handle); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Remove frees the slot and returns the value. Values with outstanding
// borrows are not removed. A value implementing Dropper is dropped.
func (t *Table[T]) Remove(handle Handle) (T, bool) {
	var zero T

	t.mu.Lock()
	e := t.lookup(handle)
	if e == nil || e.borrowCount > 0 {
		t.mu.Unlock()
		return zero, false
	}
	value := e.value
	*e = entry[T]{}
	t.freeList = append(t.freeList, handle)
	t.mu.Unlock()

	if d, ok := any(value).(Dropper); ok {
		d.Drop()
	}
	return value, true
}

// Borrow increments the borrow count for a handle.
func (t *Table[T]) Borrow(handle Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.lookup(handle)
	if e == nil {
		return false
	}
	e.borrowCount++
	return true
}

// ReturnBorrow decrements the borrow count for a handle.
func (t *Table[T]) ReturnBorrow(handle Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := t.lookup(handle)
	if e == nil || e.borrowCount == 0 {
		return false
	}
	e.borrowCount--
	return true
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over live values in handle order until fn returns false.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid && !fn(Handle(i+1), e.value) {
			return
		}
	}
}

// Close drops every live value. Further inserts return 0.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	entries := t.entries
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, e := range entries {
		if !e.valid {
			continue
		}
		if d, ok := any(e.value).(Dropper); ok {
			d.Drop()
		}
	}
	return nil
}
