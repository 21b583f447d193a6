// Package wave holds component values in a dynamically typed form and their
// WAVE text encoding.
//
// Every value crossing an instrumented boundary is carried as text: the
// recorder logs it, the replayer compares it and the dialog front end returns
// it. Generated code converts between binding types and Value, then calls
// ToString or Parse.
//
// Encoding is schema free; parsing is type directed:
//
//	t := wave.RecordOf("point",
//		wave.Field{Name: "x", Type: wave.S32Type},
//		wave.Field{Name: "retry-count", Type: wave.U32Type},
//	)
//	v, err := wave.Parse(t, `{x: -1, retry-count: 3}`)
//	s := wave.ToString(v) // {x: -1, retry-count: 3}
//
// Resource handles render as own(N) or borrow(N). Flags always list set
// labels in declared order. A case, label or field that the type does not
// declare is a schema mismatch, never a silent default.
package wave
