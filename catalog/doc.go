// Package catalog indexes the Go bindings wit-bindgen-go generates for a
// world, so code generators can look up every function and type by module
// path.
//
// A module path is the directory of a binding package split into segments:
// "wasi/io/streams" is ["wasi", "io", "streams"]. Functions a package
// implements through its Exports variable are keyed under a leading
// "exports" segment, so one package can contribute both an imported and an
// exported side.
//
// Classification, first match wins:
//
//	var Exports struct{...}      export functions; nested structs are
//	                             exported resources
//	method on local cm.Resource  imported method of that resource
//	top-level function           constructor (New<R>), static (<R><Name>)
//	                             or free function; <R>ResourceNew and
//	                             variant case constructors are skipped
//	type X cm.Resource           resource
//	type X struct{...}           struct, cm.HostLayout dropped
//	type X cm.Variant[...]       enum with payload cases
//	integer type + iota consts   enum
//	integer type + 1 << iota     flag
//	other defined types          defined over their underlying shape
//
// WIT names come from the doc comments wit-bindgen-go writes, with kebab
// case of the Go identifier as fallback. Type aliases are resolved after
// the traversal, so every reference names the declaring package.
//
// ProxyPath maps a module path to the corresponding path on the other side
// of the boundary (host and wrapped, import and export) and never returns
// a path the catalog does not know.
package catalog
