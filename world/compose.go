package world

import (
	"strings"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/iface"
)

// Package names the composition script instantiates.
const (
	DebugPackage    = "import:debug"
	RecorderPackage = "import:recorder"
	ImportsPackage  = "import:proxy"
	MainPackage     = "root:component"
	ExportsPackage  = "export:proxy"
)

// ComposeOptions controls the composition script.
type ComposeOptions struct {
	Mode proxy.Mode
	// HostRecorder drops the recorder instance; recorder imports are
	// forwarded from the host instead.
	HostRecorder bool
}

// Compose renders the WAC script that plugs the debug utility, the
// optional recorder, the imports half, the original component and the
// exports half together. Arguments are sorted by name. When any argument
// is provided by the host the instantiation ends with "...," so the
// remaining imports are forwarded.
func Compose(l *Links, opts ComposeOptions) string {
	var b strings.Builder
	b.WriteString("package component:composed;\n")
	b.WriteString("let debug = new " + DebugPackage + " { ... };\n")
	if !opts.HostRecorder {
		b.WriteString("let recorder = new " + RecorderPackage + " { ... };\n")
	}

	b.WriteString("let imports = new " + ImportsPackage + " {\n")
	hasHost := l.ForwardHost
	for _, link := range l.ImportsHalf {
		switch link.Type {
		case Debug:
			writeArg(&b, link.Name, "debug", link.Name)
		case Recorder:
			if opts.HostRecorder {
				hasHost = true
			} else {
				writeArg(&b, link.Name, "recorder", link.Name)
			}
		case Host:
			hasHost = true
		}
	}
	if hasHost {
		b.WriteString("...,\n")
	}
	b.WriteString("};\n")

	b.WriteString("let main = new " + MainPackage + " {\n")
	for _, link := range l.Main {
		switch link.Type {
		case Debug:
			writeArg(&b, link.Name, "debug", link.Name)
		case Imports:
			source := link.Name
			if opts.Mode == proxy.Record {
				source = iface.WrappedPrefix + link.Name
			}
			writeArg(&b, link.Name, "imports", source)
		}
	}
	b.WriteString("};\n")

	b.WriteString("let final = new " + ExportsPackage + " {\n")
	hasHost = l.ForwardHost
	for _, link := range l.ExportsHalf {
		switch link.Type {
		case Debug:
			writeArg(&b, link.Name, "debug", link.Name)
		case Recorder:
			if opts.HostRecorder {
				hasHost = true
			} else {
				writeArg(&b, link.Name, "recorder", link.Name)
			}
		case Host:
			hasHost = true
		case Imports:
			writeArg(&b, link.Name, "imports", link.Name)
		case Main:
			writeArg(&b, link.Name, "main", strings.TrimPrefix(link.Name, iface.WrappedPrefix))
		}
	}
	if hasHost {
		b.WriteString("...,\n")
	}
	b.WriteString("};\n")
	b.WriteString("export final...;\n")
	return b.String()
}

func writeArg(b *strings.Builder, name, instance, export string) {
	b.WriteString("\"" + name + "\": " + instance + "[\"" + export + "\"] ,\n")
}
