package world

import (
	"strings"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/iface"
	"github.com/wippyai/wasm-proxy/internal/witname"
)

// MockSeparator joins the interface and resource parts of a mock accessor
// name so both can be recovered from the function name alone.
const MockSeparator = "-magic42-"

// ConversionName is the kebab name shared by the conversion functions of r:
// "wasi:io/streams" and "output-stream" give "wasi-io-streams-output-stream".
func ConversionName(r iface.Resource) string {
	return witname.Kebab(r.InterfaceNoVersion + "-" + r.Name)
}

// MockName is the name suffix of r's mock accessor:
// "wasi-io-streams-magic42-output-stream".
func MockName(r iface.Resource) string {
	return witname.Kebab(r.InterfaceNoVersion + MockSeparator + r.Name)
}

// MockFunc is the WIT name of r's mock accessor.
func MockFunc(r iface.Resource) string {
	return "get-mock-" + MockName(r)
}

// WrappedFunc is the WIT name of the host to wrapped conversion of r.
func WrappedFunc(r iface.Resource) string {
	return "get-wrapped-" + ConversionName(r)
}

// HostFunc is the WIT name of the wrapped to host conversion of r.
func HostFunc(r iface.Resource) string {
	return "get-host-" + ConversionName(r)
}

// SplitMockName recovers the kebab interface path and the resource name
// from a mock accessor name, with or without the "get-mock-" prefix.
func SplitMockName(name string) (ifacePath, resource string, ok bool) {
	name = strings.TrimPrefix(name, "get-mock-")
	ifacePath, resource, ok = strings.Cut(name, MockSeparator)
	if !ok || ifacePath == "" || resource == "" {
		return "", "", false
	}
	return ifacePath, resource, true
}

// ConversionWIT renders the proxy:conversion package.
//
// In record mode each resource gets a pair of functions moving a handle
// between the host and wrapped namespaces. In mocked modes each resource
// gets one accessor that fabricates a handle standing in for a recorded
// handle id.
func ConversionWIT(resources []iface.Resource, mode proxy.Mode) string {
	var b strings.Builder
	b.WriteString("package proxy:conversion;\ninterface conversion {")
	for _, r := range resources {
		name := witname.Ident(r.Name)
		f := ConversionName(r)
		if mode == proxy.Record {
			b.WriteString("\nuse " + r.Interface + ".{" + name + " as host-" + f + "};\n")
			b.WriteString("use " + iface.WrappedPrefix + r.Interface + ".{" + name + " as wrapped-" + f + "};\n")
			b.WriteString(WrappedFunc(r) + ": func(x: host-" + f + ") -> wrapped-" + f + ";\n")
			b.WriteString(HostFunc(r) + ": func(x: wrapped-" + f + ") -> host-" + f + ";\n")
			continue
		}
		b.WriteString("\nuse " + r.Interface + ".{" + name + " as " + f + "};\n")
		b.WriteString(MockFunc(r) + ": func(handle: u32) -> " + f + ";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
