package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-proxy/catalog"
	"github.com/wippyai/wasm-proxy/errors"
)

func newCatalogCmd() *cobra.Command {
	var importPath string
	cmd := &cobra.Command{
		Use:   "catalog <bindings-dir> [path [resource] function]",
		Short: "List or look up the functions of a bindings tree",
		Long: `Without a function, print every cataloged function with its trace name.
With one, print the Go signature of the function at path, such as
"wasi/io/streams OutputStream blocking-write-and-flush".`,
		Args: cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Build(args[0], catalog.Options{ImportPath: importPath})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				for _, e := range cat.Functions() {
					for _, f := range e.Funcs {
						fmt.Fprintf(w, "%s\t%s\n", cat.FuncName(e.Path, e.Resource, f), f)
					}
				}
				return nil
			}
			if len(args) == 2 {
				return errors.InvalidInput(errors.PhaseCatalog, "missing function name")
			}
			path := strings.Split(strings.Trim(args[1], "/"), "/")
			resource, name := "", args[2]
			if len(args) == 4 {
				resource, name = args[2], args[3]
			}
			f, ok := cat.FindFunction(path, resource, name)
			if !ok {
				return errors.NotFound(errors.PhaseCatalog, "function", args[1]+" "+name)
			}
			fmt.Fprintf(w, "%s\t%s\n", cat.FuncName(path, resource, f), f)
			return nil
		},
	}
	cmd.Flags().StringVar(&importPath, "import-path", "example.com/bindings", "Go import path of the bindings directory")
	return cmd
}
