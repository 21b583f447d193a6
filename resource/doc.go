// Package resource provides the handle bookkeeping shared by generated
// instrumentation code.
//
// # Table
//
// Table is an arena-of-indices mapping small integer handles to Go values:
//
//	table := resource.NewTable[Mock]()
//
//	// Insert a value, get a handle
//	h := table.Insert(Mock{Handle: 42, Name: "counter"})
//
//	// Retrieve value by handle
//	m, ok := table.Get(h)
//
//	// Remove and get value (resource drop)
//	m, ok = table.Remove(h)
//
// Handles are 1-based; 0 is never issued. Freed slots are reused. Values with
// outstanding borrows cannot be removed. Exported resources use the handle as
// their rep, so no memory address ever crosses the boundary.
//
// # Aliases
//
// Aliases is the side table that remembers which recorded handle id a
// placeholder resource stands for:
//
//	aliases.Bind(uint32(h), 42)
//	aliases.Encode(uint32(h)) // 42
//
// # Scope
//
// Scope bounds transient allocations to one dispatched call or fuzz round:
//
//	scope.With(func() {
//		h := resource.Alloc(scope, table, mock)
//		call(h)
//	}) // h removed here
//
// All types are safe for concurrent use. Generated guests are single
// threaded, so the locks are uncontended there.
package resource
