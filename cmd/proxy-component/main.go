// Command proxy-component instruments WebAssembly components for record,
// replay, fuzz and dialog runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/codegen"
	"github.com/wippyai/wasm-proxy/instrument"
	"github.com/wippyai/wasm-proxy/trace"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type globals struct {
	verbose bool
	config  string
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "proxy-component",
		Short:         "Instrument WebAssembly components",
		Long:          `proxy-component wraps a component so that its imports and exports can be recorded, replayed, fuzzed or answered interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setupLogging()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if g.log != nil {
				_ = g.log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log every step and tool invocation")
	root.PersistentFlags().StringVar(&g.config, "config", instrument.ConfigFile, "configuration file")

	root.AddCommand(
		newInstrumentCmd(g),
		newSynthesizeCmd(g),
		newGenerateCmd(),
		newCatalogCmd(),
		newTraceCmd(),
		newPromptCmd(),
	)
	return root
}

func (g *globals) setupLogging() error {
	var (
		log *zap.Logger
		err error
	)
	if g.verbose {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		log, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	g.log = log
	instrument.SetLogger(log.Named("instrument"))
	codegen.SetLogger(log.Named("codegen"))
	catalog.SetLogger(log.Named("catalog"))
	trace.SetLogger(log.Named("trace"))
	return nil
}

// loadConfig reads the configuration. Only the default path may be absent.
func (g *globals) loadConfig(cmd *cobra.Command) (instrument.Config, error) {
	return instrument.LoadConfig(g.config, !cmd.Flags().Changed("config"))
}
