package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/iface"
	"github.com/wippyai/wasm-proxy/world"
)

func newSynthesizeCmd(g *globals) *cobra.Command {
	var (
		mode         proxy.Mode
		worldName    string
		out          string
		hostRecorder bool
	)
	cmd := &cobra.Command{
		Use:   "synthesize <wit-path>",
		Short: "Write the proxy worlds for a WIT package or component",
		Long: `Load a WIT directory, a .wit file, a JSON-encoded resolve or a component
and write the synthesized worlds and the composition script to --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("mode") {
				mode = cfg.Mode
			}
			if !cmd.Flags().Changed("world") {
				worldName = cfg.World
			}
			if !cmd.Flags().Changed("host-recorder") {
				hostRecorder = cfg.HostRecorder
			}

			res, w, err := iface.Load(args[0], worldName)
			if err != nil {
				return err
			}
			m := iface.FromWorld(res, w)
			files, err := world.Synthesize(m, mode)
			if err != nil {
				return err
			}
			if mode == proxy.Record {
				files.AddWrapped(iface.WrappedPackages(res, w))
			}
			if err := files.Write(out); err != nil {
				return err
			}
			script := world.Compose(world.StaticLinks(m, mode), world.ComposeOptions{Mode: mode, HostRecorder: hostRecorder})
			path := filepath.Join(out, "compose.wac")
			if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
				return errors.Wrap(errors.PhaseSynthesize, errors.KindInvalidInput, err, "write "+path)
			}
			for _, name := range files.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(out, filepath.FromSlash(name)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.VarP(&mode, "mode", "m", "record, replay, fuzz or dialog")
	fl.StringVar(&worldName, "world", "", "world to synthesize from")
	fl.StringVar(&out, "out", "wit", "output directory")
	fl.BoolVar(&hostRecorder, "host-recorder", false, "take the recorder interfaces from the host")
	return cmd
}
