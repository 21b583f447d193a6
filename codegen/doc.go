// Package codegen writes the Go source of one proxy half from a binding
// catalog.
//
// A proxy is built from two halves. The imports half sits between the
// instrumented component and the host: it exports the interfaces the
// component imports. The exports half sits between the host and the
// component: it exports what the component exports and drives the
// component's renamed exports. Each half is one main package whose init
// function assigns the wit-bindgen-go Exports variables.
//
// Generated code converts values to WAVE text through small helper
// functions named after the type they handle: toValueSnapshot,
// fromValueListOfString, arbitraryOptionOfU32 and so on. Helpers are
// emitted on first use.
//
//	Record  every export calls its counterpart import and logs both sides
//	Replay  imports answer from the trace, exports are driven from it
//	Fuzz    imports answer arbitrary values, exports get random calls
//	Dialog  like Fuzz, with values typed at a terminal
package codegen
