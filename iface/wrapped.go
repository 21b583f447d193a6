package iface

import (
	"go.bytecodealliance.org/wit"
)

// WrappedPrefix is prepended to the namespace of re-exported packages.
const WrappedPrefix = "wrapped-"

// WrappedPackages prints every package other than the world's own with its
// namespace prefixed by WrappedPrefix. References between packages are
// renamed consistently. The result maps a file name such as
// "wrapped-cli.wit" to its WIT text. The resolve is restored before
// returning.
func WrappedPackages(res *wit.Resolve, w *wit.World) map[string]string {
	saved := make(map[*wit.Package]string, len(res.Packages))
	for _, p := range res.Packages {
		saved[p] = p.Name.Namespace
		p.Name.Namespace = WrappedPrefix + p.Name.Namespace
	}
	defer func() {
		for p, ns := range saved {
			p.Name.Namespace = ns
		}
	}()

	out := make(map[string]string)
	for _, p := range res.Packages {
		if p == w.Package {
			continue
		}
		out[WrappedPrefix+p.Name.Package+".wit"] = p.WIT(nil, "")
	}
	return out
}
