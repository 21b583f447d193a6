package world

import (
	_ "embed"
	"strings"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/iface"
)

const (
	// UtilPrefix marks imports that are served by the debug utility
	// instance and are never virtualized.
	UtilPrefix = "proxy:util/"
	// RecorderPrefix marks the recorder control interfaces.
	RecorderPrefix = "proxy:recorder/"
	// ConversionInterface is the synthesized handle conversion interface.
	ConversionInterface = "proxy:conversion/conversion"
	// StartReplay is exported by the exports half in mocked modes.
	StartReplay = "proxy:recorder/start-replay@0.1.0"

	// ImportsWorld is the world of the generated imports half.
	ImportsWorld = "imports"
	// TmpExportsWorld is the world of the generated exports half.
	TmpExportsWorld = "tmp-exports"
	// ExportsWorld describes the final composed component.
	ExportsWorld = "exports"
)

var (
	//go:embed assets/recorder.wit
	recorderWIT string
	//go:embed assets/util.wit
	utilWIT string
)

// Synthesize derives the worlds, the conversion interface and the fixed
// control packages for m under mode.
//
// Every world item must be an interface. A function or type declared at
// world scope fails with an unsupported_item error.
func Synthesize(m *iface.Model, mode proxy.Mode) (*Files, error) {
	if mode.ControlImport() == "" {
		return nil, errors.InvalidInput(errors.PhaseSynthesize, "unknown mode "+mode.String())
	}
	for _, it := range m.Imports {
		if !it.Interface {
			return nil, errors.UnsupportedItem(errors.PhaseSynthesize, it.Name, "world-level import")
		}
	}
	for _, it := range m.Exports {
		if !it.Interface {
			return nil, errors.UnsupportedItem(errors.PhaseSynthesize, it.Name, "world-level export")
		}
	}

	files := &Files{
		Component:  componentWIT(m, mode),
		Exports:    exportsWIT(m, mode),
		Conversion: ConversionWIT(m.Resources, mode),
		Recorder:   recorderWIT,
		Util:       utilWIT,
	}
	return files, nil
}

// componentWIT renders component.wit with the imports and tmp-exports
// worlds.
func componentWIT(m *iface.Model, mode proxy.Mode) string {
	var b strings.Builder
	b.WriteString("package component:proxy;\n")

	b.WriteString("world imports {\n")
	b.WriteString("import " + mode.ControlImport() + ";\n")
	b.WriteString("export " + ConversionInterface + ";\n")
	for _, name := range m.ImportNames() {
		if strings.HasPrefix(name, UtilPrefix) {
			b.WriteString("import " + name + ";\n")
			continue
		}
		if mode == proxy.Record {
			b.WriteString("import " + name + ";\n")
			b.WriteString("export " + iface.WrappedPrefix + name + ";\n")
		} else {
			b.WriteString("export " + name + ";\n")
		}
	}
	b.WriteString("}\n")

	b.WriteString("world tmp-exports {\n")
	b.WriteString("import " + mode.ControlImport() + ";\n")
	b.WriteString("import " + ConversionInterface + ";\n")
	for _, name := range m.ExportNames() {
		if mode == proxy.Record {
			b.WriteString("import " + iface.WrappedPrefix + name + ";\n")
			b.WriteString("export " + name + ";\n")
		} else {
			b.WriteString("import " + name + ";\n")
		}
	}
	if mode.Mocked() {
		b.WriteString("export " + StartReplay + ";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// exportsWIT renders exports.wit, the boundary of the composed component.
func exportsWIT(m *iface.Model, mode proxy.Mode) string {
	var b strings.Builder
	b.WriteString("world exports {\n")
	b.WriteString("import " + mode.ControlImport() + ";\n")
	b.WriteString("import " + ConversionInterface + ";\n")
	for _, name := range m.ImportNames() {
		b.WriteString("import " + name + ";\n")
	}
	for _, name := range m.ExportNames() {
		b.WriteString("export " + name + ";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
