package resource

import "sync"

// Aliases maps a placeholder key to the handle id it stands in for.
//
// Decoding a recorded handle that has no live counterpart yields a
// placeholder. Binding the placeholder here lets a later encode of the same
// placeholder report the recorded id again, so decode then encode is the
// identity on the wire.
type Aliases struct {
	ids map[uint32]uint32
	mu  sync.Mutex
}

// NewAliases creates an empty side table.
func NewAliases() *Aliases {
	return &Aliases{ids: make(map[uint32]uint32)}
}

// Bind records that placeholder stands for recorded.
func (a *Aliases) Bind(placeholder, recorded uint32) {
	a.mu.Lock()
	a.ids[placeholder] = recorded
	a.mu.Unlock()
}

// Lookup returns the recorded id bound to key.
func (a *Aliases) Lookup(key uint32) (uint32, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id, ok := a.ids[key]
	return id, ok
}

// Encode returns the recorded id for key, or key itself when unbound.
func (a *Aliases) Encode(key uint32) uint32 {
	if id, ok := a.Lookup(key); ok {
		return id
	}
	return key
}

// Forget removes the binding for key.
func (a *Aliases) Forget(key uint32) {
	a.mu.Lock()
	delete(a.ids, key)
	a.mu.Unlock()
}

// Len returns the number of bindings.
func (a *Aliases) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.ids)
}
