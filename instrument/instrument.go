package instrument

import (
	"context"
	"os"
	"path/filepath"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/codegen"
	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/iface"
	"github.com/wippyai/wasm-proxy/world"
)

// Half is one generated guest program.
type Half struct {
	Name  string
	World string
	Side  codegen.Side
}

// Halves lists the two programs every mode builds.
var Halves = []Half{
	{Name: "imports", World: world.ImportsWorld, Side: codegen.Imports},
	{Name: "exports", World: world.TmpExportsWorld, Side: codegen.Exports},
}

// Result describes a finished run.
type Result struct {
	// Output is the composed component.
	Output string
	// WorkDir is empty when the intermediate tree was removed.
	WorkDir string
	// Halves maps a half's name to its built component.
	Halves map[string]string
}

// Instrumenter runs the pipeline with one configuration.
type Instrumenter struct {
	run Runner
	cfg Config
}

// New creates an instrumenter. A nil runner executes real processes.
func New(cfg Config, run Runner) *Instrumenter {
	if run == nil {
		run = Exec{}
	}
	return &Instrumenter{cfg: cfg, run: run}
}

// Run instruments the component at path.
func (in *Instrumenter) Run(ctx context.Context, component string) (*Result, error) {
	if err := in.cfg.Validate(); err != nil {
		return nil, err
	}
	component, err := filepath.Abs(component)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "component path")
	}
	work, temp, err := in.workDir()
	if err != nil {
		return nil, err
	}
	log := Logger().With(zap.String("mode", in.cfg.Mode.String()), zap.String("work", work))

	log.Info("decoding component", zap.String("component", component))
	witDir := filepath.Join(work, "wit")
	m, err := in.Synthesize(ctx, component, witDir)
	if err != nil {
		return nil, err
	}

	built, err := in.BuildHalves(ctx, work, witDir)
	if err != nil {
		return nil, err
	}

	output, err := filepath.Abs(in.cfg.Output)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "output path")
	}
	if err := in.Compose(ctx, work, component, output, m, built); err != nil {
		return nil, err
	}
	log.Info("composed", zap.String("output", output))

	res := &Result{Output: output, WorkDir: work, Halves: built}
	if temp && !in.cfg.Keep {
		if err := os.RemoveAll(work); err != nil {
			log.Warn("removing work dir", zap.Error(err))
		} else {
			res.WorkDir = ""
		}
	}
	return res, nil
}

func (in *Instrumenter) workDir() (string, bool, error) {
	if in.cfg.WorkDir != "" {
		dir, err := filepath.Abs(in.cfg.WorkDir)
		if err == nil {
			err = os.MkdirAll(dir, 0o755)
		}
		if err != nil {
			return "", false, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "work dir")
		}
		return dir, false, nil
	}
	dir, err := os.MkdirTemp("", "proxy-component-")
	if err != nil {
		return "", false, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "work dir")
	}
	return dir, true, nil
}

// Synthesize decodes the component's WIT, places it under witDir/deps
// and writes the synthesized worlds next to it. It returns the model of
// the component's world.
func (in *Instrumenter) Synthesize(ctx context.Context, component, witDir string) (*iface.Model, error) {
	decoded := filepath.Join(filepath.Dir(witDir), "decoded")
	if err := os.MkdirAll(decoded, 0o755); err != nil {
		return nil, errors.Wrap(errors.PhaseSynthesize, errors.KindInvalidInput, err, "create "+decoded)
	}
	if _, err := in.run.Run(ctx, decoded, in.cfg.Tools.WasmTools, "component", "wit", component, "--out-dir", decoded); err != nil {
		return nil, err
	}
	res, w, err := iface.Load(decoded, in.cfg.World)
	if err != nil {
		return nil, err
	}
	m, err := in.synthesize(res, w, decoded, witDir)
	if err != nil {
		return nil, err
	}
	Logger().Info("synthesized worlds",
		zap.Int("imports", len(m.Imports)),
		zap.Int("exports", len(m.Exports)),
		zap.Int("resources", len(m.Resources)))
	return m, nil
}

func (in *Instrumenter) synthesize(res *wit.Resolve, w *wit.World, decoded, witDir string) (*iface.Model, error) {
	m := iface.FromWorld(res, w)
	files, err := world.Synthesize(m, in.cfg.Mode)
	if err != nil {
		return nil, err
	}
	if in.cfg.Mode == proxy.Record {
		files.AddWrapped(iface.WrappedPackages(res, w))
	}
	if err := placeDecoded(decoded, filepath.Join(witDir, "deps")); err != nil {
		return nil, err
	}
	if err := files.Write(witDir); err != nil {
		return nil, err
	}
	return m, nil
}

// BuildHalves generates and builds both halves concurrently and returns
// the component path of each.
func (in *Instrumenter) BuildHalves(ctx context.Context, work, witDir string) (map[string]string, error) {
	paths := make([]string, len(Halves))
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range Halves {
		g.Go(func() error {
			out, err := in.buildHalf(gctx, work, witDir, h)
			paths[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	built := make(map[string]string, len(Halves))
	for i, h := range Halves {
		built[h.Name] = paths[i]
	}
	return built, nil
}

func (in *Instrumenter) buildHalf(ctx context.Context, work, witDir string, h Half) (string, error) {
	log := Logger().With(zap.String("half", h.Name))
	dir := filepath.Join(work, h.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "create "+dir)
	}
	module := in.cfg.Guest.Package + "/" + h.Name
	root := module + "/bindings"
	bindings := filepath.Join(dir, "bindings")

	log.Info("generating bindings", zap.String("world", h.World))
	if _, err := in.run.Run(ctx, dir, in.cfg.Tools.WitBindgenGo,
		"generate", "--world", h.World, "--out", bindings, "--package-root", root, witDir); err != nil {
		return "", err
	}

	cat, err := catalog.Build(bindings, catalog.Options{ImportPath: root})
	if err != nil {
		return "", err
	}
	f, err := codegen.Generate(cat, codegen.Options{
		Interfaces: in.cfg.Interfaces,
		Mode:       in.cfg.Mode,
		Side:       h.Side,
	})
	if err != nil {
		return "", err
	}
	mod, err := goMod(module, in.cfg.Guest)
	if err != nil {
		return "", err
	}
	for name, data := range map[string][]byte{f.Name: f.Bytes(), "go.mod": mod} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return "", errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "write "+name)
		}
	}

	if _, err := in.run.Run(ctx, dir, in.cfg.Tools.Go, "mod", "tidy"); err != nil {
		return "", err
	}
	out := filepath.Join(work, h.Name+".wasm")
	log.Info("building", zap.String("out", out))
	if _, err := in.run.Run(ctx, dir, in.cfg.Tools.TinyGo,
		"build", "-target=wasip2", "--wit-package", witDir, "--wit-world", h.World, "-o", out, "."); err != nil {
		return "", err
	}
	return out, nil
}

// Compose writes the composition script for m and runs wac over it.
func (in *Instrumenter) Compose(ctx context.Context, work, component, output string, m *iface.Model, built map[string]string) error {
	script := world.Compose(world.StaticLinks(m, in.cfg.Mode), world.ComposeOptions{
		Mode:         in.cfg.Mode,
		HostRecorder: in.cfg.HostRecorder,
	})
	path := filepath.Join(work, "compose.wac")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		return errors.Wrap(errors.PhaseSynthesize, errors.KindInvalidInput, err, "write "+path)
	}

	deps := [][2]string{
		{world.DebugPackage, in.cfg.Deps.Debug},
		{world.ImportsPackage, built["imports"]},
		{world.MainPackage, component},
		{world.ExportsPackage, built["exports"]},
	}
	if !in.cfg.HostRecorder {
		deps = append(deps, [2]string{world.RecorderPackage, in.cfg.Deps.Recorder})
	}
	args := []string{"compose", "-o", output}
	for _, d := range deps {
		p, err := filepath.Abs(d[1])
		if err != nil {
			return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, d[0])
		}
		args = append(args, "--dep", d[0]+"="+p)
	}
	args = append(args, path)
	_, err := in.run.Run(ctx, work, in.cfg.Tools.Wac, args...)
	return err
}

// placeDecoded moves the decoded tree under deps: its own dependencies
// side by side, and the root package as a directory of its own.
func placeDecoded(decoded, deps string) error {
	fail := func(err error, what string) error {
		return errors.Wrap(errors.PhaseSynthesize, errors.KindInvalidInput, err, what)
	}
	if err := os.MkdirAll(filepath.Join(deps, "root"), 0o755); err != nil {
		return fail(err, "create "+deps)
	}
	entries, err := os.ReadDir(decoded)
	if err != nil {
		return fail(err, "read "+decoded)
	}
	for _, e := range entries {
		src := filepath.Join(decoded, e.Name())
		if e.IsDir() && e.Name() == "deps" {
			inner, err := os.ReadDir(src)
			if err != nil {
				return fail(err, "read "+src)
			}
			for _, d := range inner {
				if err := os.Rename(filepath.Join(src, d.Name()), filepath.Join(deps, d.Name())); err != nil {
					return fail(err, "move "+d.Name())
				}
			}
			continue
		}
		if filepath.Ext(e.Name()) != ".wit" {
			continue
		}
		if err := os.Rename(src, filepath.Join(deps, "root", e.Name())); err != nil {
			return fail(err, "move "+e.Name())
		}
	}
	return nil
}
