package iface

import "strings"

// Item is one import or export of a world.
type Item struct {
	// Name is the qualified world key, e.g. "wasi:cli/stdout@0.2.0", or the
	// bare key for items declared inline in the world.
	Name string
	// Interface is false for functions and types declared at world scope.
	Interface bool
}

// Resource is a resource type declared by an interface outside the
// world's own package.
type Resource struct {
	// Interface is "ns:pkg/iface@ver".
	Interface string
	// InterfaceNoVersion is "ns:pkg/iface".
	InterfaceNoVersion string
	Name               string
}

// Model is the read-only view of a resolved world used by the synthesizer.
type Model struct {
	// Package is the world's package, "ns:pkg[@ver]".
	Package   string
	World     string
	Imports   []Item
	Exports   []Item
	Resources []Resource
}

// ImportNames returns the names of imported interfaces.
func (m *Model) ImportNames() []string {
	return interfaceNames(m.Imports)
}

// ExportNames returns the names of exported interfaces.
func (m *Model) ExportNames() []string {
	return interfaceNames(m.Exports)
}

// Unversioned strips a trailing "@version" from a qualified name.
func Unversioned(name string) string {
	if i := strings.LastIndexByte(name, '@'); i >= 0 {
		return name[:i]
	}
	return name
}

func interfaceNames(items []Item) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		if it.Interface {
			names = append(names, it.Name)
		}
	}
	return names
}
