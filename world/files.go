package world

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/wippyai/wasm-proxy/errors"
)

// Files is the synthesized WIT tree.
type Files struct {
	// Wrapped maps a file name under deps/ to a renamed package.
	Wrapped    map[string]string
	Component  string
	Exports    string
	Conversion string
	Recorder   string
	Util       string
}

// AddWrapped adds renamed packages for record mode.
func (f *Files) AddWrapped(pkgs map[string]string) {
	if f.Wrapped == nil {
		f.Wrapped = make(map[string]string, len(pkgs))
	}
	for name, text := range pkgs {
		f.Wrapped[name] = text
	}
}

// Paths maps every file's path relative to the WIT root to its content.
func (f *Files) Paths() map[string]string {
	out := map[string]string{
		"component.wit":       f.Component,
		"exports.wit":         f.Exports,
		"deps/conversion.wit": f.Conversion,
		"deps/recorder.wit":   f.Recorder,
		"deps/util.wit":       f.Util,
	}
	for name, text := range f.Wrapped {
		out["deps/"+name] = text
	}
	return out
}

// Names returns the relative paths in sorted order.
func (f *Files) Names() []string {
	paths := f.Paths()
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write stores the tree under dir, next to whatever the decoded component
// already placed there.
func (f *Files) Write(dir string) error {
	paths := f.Paths()
	for _, name := range f.Names() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.Wrap(errors.PhaseSynthesize, errors.KindInvalidInput, err, "create "+filepath.Dir(path))
		}
		if err := os.WriteFile(path, []byte(paths[name]), 0o644); err != nil {
			return errors.Wrap(errors.PhaseSynthesize, errors.KindInvalidInput, err, "write "+path)
		}
	}
	return nil
}
