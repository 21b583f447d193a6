// Package instrument drives the external toolchain that turns a compiled
// component into an instrumented one.
//
// A run decodes the component's WIT, synthesizes the proxy worlds next to
// it, generates and builds the imports and exports halves in parallel,
// and composes the halves, the original component and the utility
// components with wac.
package instrument
