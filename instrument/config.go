package instrument

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/errors"
)

// ConfigFile is the configuration file looked up in the working directory.
const ConfigFile = "proxy.toml"

// Config controls one instrumentation run.
type Config struct {
	// Mode selects record, replay, fuzz or dialog.
	Mode proxy.Mode `toml:"mode"`
	// World names the component world; empty takes the root world.
	World string `toml:"world"`
	// Output is the composed component path.
	Output string `toml:"output"`
	// WorkDir holds the intermediate tree; empty uses a temporary
	// directory removed after a successful run unless Keep is set.
	WorkDir string `toml:"work_dir"`
	Keep    bool   `toml:"keep"`
	// Interfaces limits instrumentation to the named interfaces.
	Interfaces []string `toml:"interfaces"`
	// HostRecorder expects the recorder interfaces from the host instead
	// of a recorder component.
	HostRecorder bool `toml:"host_recorder"`

	Tools Tools `toml:"tools"`
	Guest Guest `toml:"guest"`
	Deps  Deps  `toml:"deps"`
}

// Tools names the external executables.
type Tools struct {
	WasmTools    string `toml:"wasm_tools"`
	WitBindgenGo string `toml:"wit_bindgen_go"`
	Go           string `toml:"go"`
	TinyGo       string `toml:"tinygo"`
	Wac          string `toml:"wac"`
}

// Guest describes the Go modules the generated halves build against.
type Guest struct {
	// Package prefixes the module path of each generated half.
	Package string `toml:"package"`
	// Module and Version pin the runtime support module.
	Module  string `toml:"module"`
	Version string `toml:"version"`
	// Replace points the support module at a local checkout.
	Replace   string `toml:"replace"`
	CMVersion string `toml:"cm_version"`
	GoVersion string `toml:"go_version"`
}

// Deps locates the prebuilt components the composition plugs in.
type Deps struct {
	Debug    string `toml:"debug"`
	Recorder string `toml:"recorder"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Mode:   proxy.Record,
		Output: "composed.wasm",
		Tools: Tools{
			WasmTools:    "wasm-tools",
			WitBindgenGo: "wit-bindgen-go",
			Go:           "go",
			TinyGo:       "tinygo",
			Wac:          "wac",
		},
		Guest: Guest{
			Package:   "proxy.local",
			Module:    "github.com/wippyai/wasm-proxy",
			Version:   "v0.1.0",
			CMVersion: "v0.3.0",
			GoVersion: "1.24",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an
// error when allowMissing is set. Unknown keys are rejected.
func LoadConfig(path string, allowMissing bool) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if allowMissing && stderrors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindMalformed, err, path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.InvalidInput(errors.PhaseConfig, path+": unknown keys "+strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks the configuration before any tool runs.
func (c *Config) Validate() error {
	if c.Mode.ControlImport() == "" {
		return errors.InvalidInput(errors.PhaseConfig, "mode not set")
	}
	if c.Output == "" {
		return errors.InvalidInput(errors.PhaseConfig, "output path not set")
	}
	if c.Deps.Debug == "" {
		return errors.InvalidInput(errors.PhaseConfig, "deps.debug: debug utility component not set")
	}
	if !c.HostRecorder && c.Deps.Recorder == "" {
		return errors.InvalidInput(errors.PhaseConfig, "deps.recorder: recorder component not set (or set host_recorder)")
	}
	if c.Guest.Package == "" || c.Guest.Module == "" {
		return errors.InvalidInput(errors.PhaseConfig, "guest.package and guest.module are required")
	}
	if c.Guest.Version == "" && c.Guest.Replace == "" {
		return errors.InvalidInput(errors.PhaseConfig, "guest.version or guest.replace is required")
	}
	return nil
}
