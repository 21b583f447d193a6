package guest

import (
	"strconv"

	"github.com/wippyai/wasm-proxy/resource"
)

// Boxes maps the representation of a re-exported resource to the handle it
// wraps.
type Boxes struct {
	table *resource.Table[uint32]
}

// NewBoxes creates an empty box table.
func NewBoxes() *Boxes {
	return &Boxes{table: resource.NewTable[uint32]()}
}

// Insert boxes handle and returns the representation for resource-new.
func (b *Boxes) Insert(handle uint32) uint32 {
	return uint32(b.table.Insert(handle))
}

// Get returns the handle boxed under rep. An unknown rep means the
// component passed a handle this proxy never created.
func (b *Boxes) Get(rep uint32) uint32 {
	h, ok := b.table.Get(resource.Handle(rep))
	if !ok {
		panic("guest: unknown resource representation " + strconv.FormatUint(uint64(rep), 10))
	}
	return h
}

// Take removes the box under rep and returns the handle it held.
func (b *Boxes) Take(rep uint32) (uint32, bool) {
	return b.table.Remove(resource.Handle(rep))
}

// Len returns the number of live boxes.
func (b *Boxes) Len() int {
	return b.table.Len()
}

// Mocks allocates representations for fabricated resources and remembers
// the recorded handle id each one stands for.
type Mocks struct {
	table   *resource.Table[uint32]
	ids     *resource.Aliases
	handles *resource.Aliases
}

// NewMocks creates an empty mock table.
func NewMocks() *Mocks {
	return &Mocks{
		table:   resource.NewTable[uint32](),
		ids:     resource.NewAliases(),
		handles: resource.NewAliases(),
	}
}

// New allocates a representation standing for the recorded handle id.
func (m *Mocks) New(id uint32) uint32 {
	rep := uint32(m.table.Insert(id))
	m.ids.Bind(rep, id)
	return rep
}

// ID returns the recorded id behind rep. Representations this table did
// not allocate encode as themselves.
func (m *Mocks) ID(rep uint32) uint32 {
	return m.ids.Encode(rep)
}

// Drop releases rep once the component drops its handle.
func (m *Mocks) Drop(rep uint32) {
	m.table.Remove(resource.Handle(rep))
	m.ids.Forget(rep)
}

// Alias records that the imported handle a mock accessor returned stands
// for the recorded id.
func (m *Mocks) Alias(handle, id uint32) {
	m.handles.Bind(handle, id)
}

// HandleID returns the recorded id behind an imported handle. Handles
// that were never aliased encode as themselves.
func (m *Mocks) HandleID(handle uint32) uint32 {
	return m.handles.Encode(handle)
}

// Unalias forgets handle before it is dropped.
func (m *Mocks) Unalias(handle uint32) {
	m.handles.Forget(handle)
}

// Len returns the number of live mocks.
func (m *Mocks) Len() int {
	return m.table.Len()
}
