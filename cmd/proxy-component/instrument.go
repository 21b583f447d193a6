package main

import (
	"fmt"

	"github.com/spf13/cobra"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/instrument"
)

type instrumentFlags struct {
	mode         proxy.Mode
	output       string
	world        string
	workDir      string
	keep         bool
	interfaces   []string
	hostRecorder bool
}

func newInstrumentCmd(g *globals) *cobra.Command {
	f := &instrumentFlags{}
	cmd := &cobra.Command{
		Use:   "instrument <component.wasm>",
		Short: "Wrap a component for record, replay, fuzz or dialog runs",
		Long: `Decode the component's world, generate and build the two proxy halves,
and compose them around the component. Flags override proxy.toml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			res, err := instrument.New(cfg, nil).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			if res.WorkDir != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "work dir kept at", res.WorkDir)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.VarP(&f.mode, "mode", "m", "record, replay, fuzz or dialog")
	fl.StringVarP(&f.output, "output", "o", "", "composed component path")
	fl.StringVar(&f.world, "world", "", "world to instrument (default: the package's only world)")
	fl.StringVar(&f.workDir, "work-dir", "", "directory for the intermediate tree")
	fl.BoolVar(&f.keep, "keep", false, "keep the temporary work dir")
	fl.StringSliceVarP(&f.interfaces, "interface", "i", nil, "limit instrumentation to an interface (repeatable)")
	fl.BoolVar(&f.hostRecorder, "host-recorder", false, "take the recorder interfaces from the host")
	return cmd
}

// apply copies the flags given on the command line into cfg.
func (f *instrumentFlags) apply(cmd *cobra.Command, cfg *instrument.Config) {
	fl := cmd.Flags()
	if fl.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fl.Changed("output") {
		cfg.Output = f.output
	}
	if fl.Changed("world") {
		cfg.World = f.world
	}
	if fl.Changed("work-dir") {
		cfg.WorkDir = f.workDir
	}
	if fl.Changed("keep") {
		cfg.Keep = f.keep
	}
	if fl.Changed("interface") {
		cfg.Interfaces = f.interfaces
	}
	if fl.Changed("host-recorder") {
		cfg.HostRecorder = f.hostRecorder
	}
}
