// Package world synthesizes the WIT worlds that put a generated proxy
// between a component and its imports, and the WAC script that composes
// the pieces.
//
// Given a component world, Synthesize produces:
//
//	component.wit        package component:proxy with the worlds
//	                     "imports" and "tmp-exports"
//	exports.wit          world "exports", the boundary of the result
//	deps/conversion.wit  proxy:conversion, handle conversion per resource
//	deps/recorder.wit    proxy:recorder control interfaces
//	deps/util.wit        proxy:util debug and dialog interfaces
//
// In record mode every imported interface I is imported from the host and
// re-exported as wrapped-I, and deps/ also holds the wrapped packages. In
// the mocked modes (replay, fuzz, dialog) I is exported directly and the
// generated code answers every call itself.
//
// The conversion interface is always forwarded to the exports half.
// StaticLinks derives the composition from the worlds; ClassifyImports and
// ClassifyExports classify the imports of built binaries instead.
package world
