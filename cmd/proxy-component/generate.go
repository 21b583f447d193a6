package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	proxy "github.com/wippyai/wasm-proxy"
	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/codegen"
	"github.com/wippyai/wasm-proxy/errors"
)

func newGenerateCmd() *cobra.Command {
	var (
		mode       proxy.Mode
		side       string
		importPath string
		interfaces []string
		out        string
	)
	cmd := &cobra.Command{
		Use:   "generate <bindings-dir>",
		Short: "Generate the Go source of one proxy half",
		Long: `Catalog a wit-bindgen-go output tree and write the guest program that
records, replays, fuzzes or prompts for its calls.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := codegen.ParseSide(side)
			if err != nil {
				return err
			}
			cat, err := catalog.Build(args[0], catalog.Options{ImportPath: importPath})
			if err != nil {
				return err
			}
			f, err := codegen.Generate(cat, codegen.Options{Interfaces: interfaces, Mode: mode, Side: s})
			if err != nil {
				return err
			}
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(f.Bytes())
				return err
			}
			path := filepath.Join(out, f.Name)
			if err := os.WriteFile(path, f.Bytes(), 0o644); err != nil {
				return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "write "+path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.VarP(&mode, "mode", "m", "record, replay, fuzz or dialog")
	fl.StringVar(&side, "side", "", "imports or exports")
	fl.StringVar(&importPath, "import-path", "", "Go import path of the bindings directory")
	fl.StringSliceVarP(&interfaces, "interface", "i", nil, "limit generation to an interface (repeatable)")
	fl.StringVarP(&out, "out", "o", ".", "output directory, or - for stdout")
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.MarkFlagRequired("side")
	_ = cmd.MarkFlagRequired("import-path")
	return cmd
}
