// Package guest is the runtime support linked into generated proxy
// components. It is compiled with TinyGo for wasm32 and only depends on the
// component model runtime and the value, resource and arbitrary packages.
//
// Generated code keeps two kinds of handle bookkeeping here. Boxes back the
// resources a record proxy re-exports: the representation of each exported
// handle indexes the handle it wraps. Mocks back the resources a replay,
// fuzz or dialog proxy fabricates: each representation remembers the handle
// id it stands in for, so encoding a mock reproduces the id it was decoded
// from.
package guest
