// Package iface adapts a resolved WIT graph to the narrow model the world
// synthesizer works from.
//
// Everything that touches go.bytecodealliance.org/wit lives here. Callers
// above this package see only Model, Item and Resource, which tests can
// build as literals.
package iface
