package world

import (
	"sort"
	"strings"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/iface"
)

// LinkType says which instance satisfies an import in the composition.
type LinkType uint8

const (
	// Debug imports come from the debug utility instance.
	Debug LinkType = iota + 1
	// Recorder imports come from the recorder instance, or from the host
	// when the host provides recording.
	Recorder
	// Imports are exported by the generated imports half.
	Imports
	// Main imports are exported by the original component.
	Main
	// Host imports are forwarded from the outer world.
	Host
)

func (l LinkType) String() string {
	switch l {
	case Debug:
		return "debug"
	case Recorder:
		return "recorder"
	case Imports:
		return "imports"
	case Main:
		return "main"
	case Host:
		return "host"
	default:
		return "unknown"
	}
}

// Link is one instantiation argument.
type Link struct {
	Name string
	Type LinkType
}

// Links describes how the three instantiated pieces are wired.
type Links struct {
	// ImportsHalf lists the imports of the generated imports half.
	ImportsHalf []Link
	// Main lists the imports of the original component.
	Main []Link
	// ExportsHalf lists the imports of the generated exports half.
	ExportsHalf []Link
	// MainExports are the interfaces the original component exports.
	MainExports []string
	// ForwardHost passes the outer world's imports to both halves even
	// when no classified import is a Host link.
	ForwardHost bool
}

// ClassifyImports assigns link types to the imports of the imports half.
func ClassifyImports(names []string) []Link {
	links := make([]Link, 0, len(names))
	for _, name := range names {
		links = append(links, Link{Name: name, Type: classifyControl(name)})
	}
	return sortLinks(links)
}

// ClassifyExports assigns link types to the imports of the exports half.
// In record mode a wrapped interface is served by the original component
// when it exports the unwrapped name and by the imports half otherwise.
func ClassifyExports(names, mainExports []string, mode proxy.Mode) []Link {
	exported := make(map[string]bool, len(mainExports))
	for _, n := range mainExports {
		exported[n] = true
	}

	links := make([]Link, 0, len(names))
	for _, name := range names {
		var t LinkType
		switch {
		case name == "proxy:util/debug":
			t = Debug
		case name == ConversionInterface:
			t = Imports
		case name == "proxy:util/dialog":
			t = Host
		case strings.HasPrefix(name, RecorderPrefix):
			t = Recorder
		case mode == proxy.Record:
			stripped, wrapped := strings.CutPrefix(name, iface.WrappedPrefix)
			switch {
			case !wrapped:
				t = Host
			case exported[stripped]:
				t = Main
			default:
				t = Imports
			}
		case exported[name]:
			t = Main
		default:
			t = Imports
		}
		links = append(links, Link{Name: name, Type: t})
	}
	return sortLinks(links)
}

// MainLinks assigns link types to the imports of the original component.
func MainLinks(m *iface.Model) []Link {
	names := m.ImportNames()
	links := make([]Link, 0, len(names))
	for _, name := range names {
		t := Imports
		if strings.HasPrefix(name, UtilPrefix) {
			t = Debug
		}
		links = append(links, Link{Name: name, Type: t})
	}
	return sortLinks(links)
}

// StaticLinks derives the wiring from the synthesized worlds alone. Each
// half is assumed to import everything its world declares, including the
// conversion interface, and the host WASI imports the guest toolchain
// links in are covered by forwarding.
func StaticLinks(m *iface.Model, mode proxy.Mode) *Links {
	importsHalf := []string{mode.ControlImport()}
	for _, name := range m.ImportNames() {
		if strings.HasPrefix(name, UtilPrefix) || mode == proxy.Record {
			importsHalf = append(importsHalf, name)
		}
	}

	exportsHalf := []string{mode.ControlImport(), ConversionInterface}
	for _, name := range m.ExportNames() {
		if mode == proxy.Record {
			name = iface.WrappedPrefix + name
		}
		exportsHalf = append(exportsHalf, name)
	}

	return &Links{
		ImportsHalf: ClassifyImports(importsHalf),
		Main:        MainLinks(m),
		ExportsHalf: ClassifyExports(exportsHalf, m.ExportNames(), mode),
		MainExports: m.ExportNames(),
		ForwardHost: true,
	}
}

func classifyControl(name string) LinkType {
	switch {
	case name == "proxy:util/debug":
		return Debug
	case name == "proxy:util/dialog":
		return Host
	case strings.HasPrefix(name, RecorderPrefix):
		return Recorder
	default:
		return Host
	}
}

// sortLinks orders links by name and drops duplicates.
func sortLinks(links []Link) []Link {
	sort.SliceStable(links, func(i, j int) bool { return links[i].Name < links[j].Name })
	out := links[:0]
	for _, l := range links {
		if len(out) > 0 && out[len(out)-1].Name == l.Name {
			continue
		}
		out = append(out, l)
	}
	return out
}
