package instrument

import (
	"golang.org/x/mod/modfile"

	"github.com/wippyai/wasm-proxy/errors"
)

const cmModule = "go.bytecodealliance.org/cm"

// goMod renders the go.mod of a generated half.
func goMod(module string, g Guest) ([]byte, error) {
	version := g.Version
	if version == "" {
		version = "v0.0.0"
	}
	f := new(modfile.File)
	steps := []func() error{
		func() error { return f.AddModuleStmt(module) },
		func() error { return f.AddGoStmt(g.GoVersion) },
		func() error { return f.AddRequire(cmModule, g.CMVersion) },
		func() error { return f.AddRequire(g.Module, version) },
	}
	if g.Replace != "" {
		steps = append(steps, func() error { return f.AddReplace(g.Module, "", g.Replace, "") })
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "go.mod for "+module)
		}
	}
	f.Cleanup()
	out, err := f.Format()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "go.mod for "+module)
	}
	return out, nil
}
