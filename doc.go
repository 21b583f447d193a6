// Package proxy instruments WebAssembly components so that every call
// crossing their import and export boundary can be recorded, replayed,
// fuzzed or driven by hand.
//
// The tool works from the component's WIT description. It synthesizes
// worlds that put a generated proxy between the component and its imports,
// generates Go bindings for those worlds, catalogs the bindings and emits
// the glue that records, replays or synthesizes every value.
//
// # Architecture Overview
//
//	proxy/               Root package with the Mode enum
//	├── iface/           Read-only view of a resolved WIT world
//	├── world/           Synthesized worlds, conversion interface, WAC script
//	├── catalog/         Type and function table built from Go bindings
//	├── codegen/         Generated glue for every mode
//	├── guest/           Runtime support imported by generated code
//	├── wave/            Typed values and their WAVE text form
//	├── resource/        Handle tables, alias side table, allocation scopes
//	├── arbitrary/       Byte-driven value synthesis
//	├── trace/           Call trace model, recorder and replayer
//	├── dialog/          Terminal prompts for dialog mode
//	├── instrument/      End-to-end orchestration over external tools
//	└── errors/          Structured error types
//
// # Modes
//
//   - record: host calls pass through and each crossing is logged
//   - replay: a recorded trace drives the exports and answers the imports
//   - fuzz: exports are called with arbitrary arguments for a fixed number
//     of rounds, imports return arbitrary values
//   - dialog: like fuzz, with every value entered at a terminal
//
// # Quick Start
//
//	proxy-component instrument app.wasm --mode record -o app.record.wasm
//	proxy-component trace trace.jsonl
//
// # Thread Safety
//
// Generation is a single pass with no shared state. The guest runtime
// tables are guarded by mutexes, so generated code stays correct if a host
// drives the component from more than one goroutine.
package proxy
