package iface

import (
	"path/filepath"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/wasm-proxy/errors"
)

// Load reads a resolved WIT graph and selects a world.
//
// Paths ending in .json are read as the output of
// `wasm-tools component wit --json`; anything else (a WIT directory, a
// .wit file or a component binary) is handed to wasm-tools through
// wit.LoadWIT. An empty world name selects the last world of the graph,
// which is the root world of a decoded component.
func Load(path, world string) (*wit.Resolve, *wit.World, error) {
	var (
		res *wit.Resolve
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		res, err = wit.LoadJSON(path)
	} else {
		res, err = wit.LoadWIT(path)
	}
	if err != nil {
		return nil, nil, errors.Wrap(errors.PhaseSynthesize, errors.KindMalformed, err, "load WIT from "+path)
	}

	w, err := SelectWorld(res, world)
	if err != nil {
		return nil, nil, err
	}
	return res, w, nil
}

// SelectWorld finds a world by name, or the last world when name is empty.
// A name may be bare ("imports") or qualified ("component:proxy/imports").
func SelectWorld(res *wit.Resolve, name string) (*wit.World, error) {
	if len(res.Worlds) == 0 {
		return nil, errors.NotFound(errors.PhaseSynthesize, "world", name)
	}
	if name == "" {
		return res.Worlds[len(res.Worlds)-1], nil
	}
	for _, w := range res.Worlds {
		if w.Name == name {
			return w, nil
		}
		if w.Package != nil && PackageName(w.Package, false)+"/"+w.Name == name {
			return w, nil
		}
	}
	return nil, errors.NotFound(errors.PhaseSynthesize, "world", name)
}

// FromWorld builds the Model of w.
func FromWorld(res *wit.Resolve, w *wit.World) *Model {
	m := &Model{World: w.Name}
	if w.Package != nil {
		m.Package = PackageName(w.Package, true)
	}

	for key, item := range w.Imports.All() {
		m.Imports = append(m.Imports, worldItem(key, item))
	}
	for key, item := range w.Exports.All() {
		m.Exports = append(m.Exports, worldItem(key, item))
	}

	for _, i := range res.Interfaces {
		if i.Name == nil || i.Package == nil || i.Package == w.Package {
			continue
		}
		qualified := InterfaceName(i, true)
		for name, td := range i.TypeDefs.All() {
			if _, ok := td.Kind.(*wit.Resource); !ok {
				continue
			}
			m.Resources = append(m.Resources, Resource{
				Interface:          qualified,
				InterfaceNoVersion: InterfaceName(i, false),
				Name:               name,
			})
		}
	}
	return m
}

// PackageName renders "ns:pkg", with "@ver" when versioned is set.
func PackageName(p *wit.Package, versioned bool) string {
	s := p.Name.Namespace + ":" + p.Name.Package
	if versioned && p.Name.Version != nil {
		s += "@" + p.Name.Version.String()
	}
	return s
}

// InterfaceName renders "ns:pkg/iface", with "@ver" when versioned is set.
// Anonymous interfaces render as the empty string.
func InterfaceName(i *wit.Interface, versioned bool) string {
	if i.Name == nil {
		return ""
	}
	if i.Package == nil {
		return *i.Name
	}
	s := i.Package.Name.Namespace + ":" + i.Package.Name.Package + "/" + *i.Name
	if versioned && i.Package.Name.Version != nil {
		s += "@" + i.Package.Name.Version.String()
	}
	return s
}

func worldItem(key string, item wit.WorldItem) Item {
	ref, ok := item.(*wit.InterfaceRef)
	if !ok {
		return Item{Name: key}
	}
	if name := InterfaceName(ref.Interface, true); name != "" {
		return Item{Name: name, Interface: true}
	}
	return Item{Name: key, Interface: true}
}
