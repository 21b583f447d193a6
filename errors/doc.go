// Package errors provides structured error types for the wasm-proxy tooling.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: item path, Go/WIT type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseValue, errors.KindSchemaMismatch).
//		Path("point", "x").
//		WitType("u32").
//		Detail("expected integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownCase(path, "shape", "frobnicate")
//	err := errors.ReplayMismatch("docs:adder/add.add", "7", "8")
//
// Schema and replay errors are fatal to the current run. ToolError labels
// external executable failures with the tool name and exit status.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
