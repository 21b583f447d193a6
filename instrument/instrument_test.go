package instrument

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"golang.org/x/mod/modfile"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/iface"
	"github.com/wippyai/wasm-proxy/world"
)

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ConfigFile, `
mode = "fuzz"
interfaces = ["docs:counter/api@0.1.0"]

[tools]
tinygo = "/opt/tinygo/bin/tinygo"

[deps]
debug = "debug.wasm"
recorder = "recorder.wasm"
`)
	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Mode != proxy.Fuzz {
		t.Errorf("Mode = %s", cfg.Mode)
	}
	if cfg.Tools.TinyGo != "/opt/tinygo/bin/tinygo" || cfg.Tools.Wac != "wac" {
		t.Errorf("Tools = %+v", cfg.Tools)
	}
	if len(cfg.Interfaces) != 1 || cfg.Guest.Module != DefaultConfig().Guest.Module {
		t.Errorf("cfg = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind errors.Kind
	}{
		{"unknown key", "mdoe = \"record\"\n", errors.KindInvalidInput},
		{"unknown table key", "[tools]\ncargo = \"cargo\"\n", errors.KindInvalidInput},
		{"bad mode", "mode = \"rewind\"\n", errors.KindMalformed},
		{"bad syntax", "mode = \n", errors.KindMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), ConfigFile, tt.text)
			_, err := LoadConfig(path, false)
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != tt.kind {
				t.Fatalf("err = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFile)
	cfg, err := LoadConfig(path, true)
	if err != nil {
		t.Fatalf("allowed missing: %v", err)
	}
	if cfg.Mode != proxy.Record || cfg.Output != "composed.wasm" {
		t.Errorf("cfg = %+v", cfg)
	}
	if _, err := LoadConfig(path, false); err == nil {
		t.Error("missing file accepted")
	}
}

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Deps = Deps{Debug: "debug.wasm", Recorder: "recorder.wasm"}
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults with deps", func(*Config) {}, true},
		{"no mode", func(c *Config) { c.Mode = 0 }, false},
		{"no debug", func(c *Config) { c.Deps.Debug = "" }, false},
		{"no recorder", func(c *Config) { c.Deps.Recorder = "" }, false},
		{"host recorder", func(c *Config) { c.Deps.Recorder = ""; c.HostRecorder = true }, true},
		{"local guest", func(c *Config) { c.Guest.Version = ""; c.Guest.Replace = "../wasm-proxy" }, true},
		{"no guest version", func(c *Config) { c.Guest.Version = "" }, false},
		{"no output", func(c *Config) { c.Output = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok %v", err, tt.ok)
			}
		})
	}
}

func TestGoMod(t *testing.T) {
	g := DefaultConfig().Guest
	g.Replace = "../wasm-proxy"
	data, err := goMod("proxy.local/imports", g)
	if err != nil {
		t.Fatal(err)
	}
	f, err := modfile.Parse("go.mod", data, nil)
	if err != nil {
		t.Fatalf("parse: %v\n%s", err, data)
	}
	if f.Module.Mod.Path != "proxy.local/imports" || f.Go.Version != g.GoVersion {
		t.Errorf("module %q go %q", f.Module.Mod.Path, f.Go.Version)
	}
	want := map[string]string{cmModule: g.CMVersion, g.Module: g.Version}
	for _, r := range f.Require {
		if want[r.Mod.Path] != r.Mod.Version {
			t.Errorf("require %s %s", r.Mod.Path, r.Mod.Version)
		}
		delete(want, r.Mod.Path)
	}
	if len(want) > 0 {
		t.Errorf("missing requires %v", want)
	}
	if len(f.Replace) != 1 || f.Replace[0].New.Path != "../wasm-proxy" {
		t.Errorf("replace = %+v", f.Replace)
	}
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx := context.Background()
	dir := t.TempDir()

	out, err := Exec{}.Run(ctx, dir, "sh", "-c", "echo hi")
	if err != nil || string(out) != "hi\n" {
		t.Fatalf("out = %q, err = %v", out, err)
	}

	_, err = Exec{}.Run(ctx, dir, "sh", "-c", "echo first >&2; echo oops >&2; exit 3")
	var te *errors.ToolError
	if !stderrors.As(err, &te) {
		t.Fatalf("err = %v, want ToolError", err)
	}
	if te.ExitCode != 3 || !strings.HasSuffix(te.Stderr, "oops") {
		t.Errorf("exit %d stderr %q", te.ExitCode, te.Stderr)
	}
	if !strings.Contains(te.Error(), "status 3: oops") {
		t.Errorf("Error() = %q", te.Error())
	}

	_, err = Exec{}.Run(ctx, dir, "no-such-tool-for-proxy-tests")
	if !stderrors.As(err, &te) || te.ExitCode != -1 {
		t.Errorf("missing tool err = %v", err)
	}
}

// fakeRunner stands in for the toolchain. wit-bindgen-go copies a
// catalog fixture tree, rewritten to the requested package root.
type fakeRunner struct {
	trees map[string]string
	fail  string
	calls [][]string
	mu    sync.Mutex
}

func (f *fakeRunner) Run(_ context.Context, dir, tool string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{tool}, args...))
	f.mu.Unlock()
	if tool == f.fail {
		return nil, errors.NewToolError(tool, args, 2, "boom", nil)
	}
	if tool == "wit-bindgen-go" {
		tree := f.trees[flag(args, "--world")]
		src := filepath.Join("..", "catalog", "testdata", tree)
		return nil, copyTree(src, flag(args, "--out"), "example.com/bindings", flag(args, "--package-root"))
	}
	return nil, nil
}

func (f *fakeRunner) find(tool string, match func([]string) bool) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c[0] == tool && match(c[1:]) {
			return c[1:]
		}
	}
	return nil
}

func flag(args []string, name string) string {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == name {
			return args[i+1]
		}
	}
	return ""
}

func copyTree(src, dst, from, to string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, []byte(strings.ReplaceAll(string(data), from, to)), 0o644)
	})
}

func recordTrees() map[string]string {
	return map[string]string{
		world.ImportsWorld:    "record-imports",
		world.TmpExportsWorld: "record-exports",
	}
}

func TestBuildHalves(t *testing.T) {
	run := &fakeRunner{trees: recordTrees()}
	work := t.TempDir()
	in := New(validConfig(), run)

	built, err := in.BuildHalves(context.Background(), work, "/wit")
	if err != nil {
		t.Fatalf("BuildHalves: %v", err)
	}
	for _, h := range Halves {
		if built[h.Name] != filepath.Join(work, h.Name+".wasm") {
			t.Errorf("built[%s] = %q", h.Name, built[h.Name])
		}
		if run.find("tinygo", func(a []string) bool { return flag(a, "--wit-world") == h.World }) == nil {
			t.Errorf("no tinygo build for world %s", h.World)
		}
		if _, err := os.Stat(filepath.Join(work, h.Name, "go.mod")); err != nil {
			t.Errorf("go.mod of %s: %v", h.Name, err)
		}
	}

	src, err := os.ReadFile(filepath.Join(work, "imports", "main.go"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"proxy.local/imports/bindings/wrapped-wasi/io/streams"`,
		"RecordArgs",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("imports/main.go lacks %q", want)
		}
	}
	src, err = os.ReadFile(filepath.Join(work, "exports", "main.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), `"proxy.local/exports/bindings/docs/counter/api"`) {
		t.Errorf("exports/main.go does not import the counter bindings:\n%s", src)
	}
}

func TestBuildHalvesToolFailure(t *testing.T) {
	run := &fakeRunner{trees: recordTrees(), fail: "tinygo"}
	_, err := New(validConfig(), run).BuildHalves(context.Background(), t.TempDir(), "/wit")
	var te *errors.ToolError
	if !stderrors.As(err, &te) || te.Tool != "tinygo" {
		t.Fatalf("err = %v, want tinygo ToolError", err)
	}
}

func TestBuildHalvesGenerateFailure(t *testing.T) {
	// mocked bindings cannot be recorded
	run := &fakeRunner{trees: map[string]string{
		world.ImportsWorld:    "mock-imports",
		world.TmpExportsWorld: "record-exports",
	}}
	_, err := New(validConfig(), run).BuildHalves(context.Background(), t.TempDir(), "/wit")
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("err = %v, want a generation error", err)
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name     string
		host     bool
		recorder bool
	}{
		{"recorder component", false, true},
		{"host recorder", true, false},
	}
	m := &iface.Model{
		Package: "docs:counter",
		World:   "app",
		Imports: []iface.Item{{Name: "wasi:cli/stdout@0.2.0", Interface: true}},
		Exports: []iface.Item{{Name: "docs:counter/api@0.1.0", Interface: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := &fakeRunner{}
			cfg := validConfig()
			cfg.HostRecorder = tt.host
			work := t.TempDir()
			built := map[string]string{
				"imports": filepath.Join(work, "imports.wasm"),
				"exports": filepath.Join(work, "exports.wasm"),
			}
			out := filepath.Join(work, "out.wasm")
			if err := New(cfg, run).Compose(context.Background(), work, "/c/app.wasm", out, m, built); err != nil {
				t.Fatal(err)
			}
			args := run.find("wac", func([]string) bool { return true })
			if args == nil || args[0] != "compose" || flag(args, "-o") != out {
				t.Fatalf("wac args = %v", args)
			}
			joined := strings.Join(args, " ")
			for _, want := range []string{
				world.ImportsPackage + "=" + built["imports"],
				world.MainPackage + "=/c/app.wasm",
				world.ExportsPackage + "=" + built["exports"],
			} {
				if !strings.Contains(joined, want) {
					t.Errorf("wac args lack %q: %s", want, joined)
				}
			}
			if got := strings.Contains(joined, world.RecorderPackage+"="); got != tt.recorder {
				t.Errorf("recorder dep present = %v", got)
			}
			script, err := os.ReadFile(filepath.Join(work, "compose.wac"))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(script), "let imports = new "+world.ImportsPackage) {
				t.Errorf("script:\n%s", script)
			}
		})
	}
}

func TestRunValidatesFirst(t *testing.T) {
	run := &fakeRunner{}
	_, err := New(DefaultConfig(), run).Run(context.Background(), "app.wasm")
	if err == nil {
		t.Fatal("run without deps succeeded")
	}
	if len(run.calls) != 0 {
		t.Errorf("tools ran: %v", run.calls)
	}
}
