package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-proxy/dialog"
)

func newPromptCmd() *cobra.Command {
	var (
		message string
		options []string
	)
	cmd := &cobra.Command{
		Use:   "prompt <kind>...",
		Short: "Ask for values the way dialog mode does",
		Long: `Ask for one value per kind (` + strings.Join(dialog.Kinds, ", ") + `) with the
prompts a component in dialog mode shows, and print each answer as WAVE
text, one per line. Useful for writing trace arguments by hand.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && len(options) == 0 {
				return fmt.Errorf("give at least one kind or --select")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			h := dialog.NewHost(dialog.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr()))
			if message != "" {
				if err := h.Print(message); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			if len(options) > 0 {
				i, err := h.ReadSelect("select", options, 0)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, options[i])
			}
			for _, kind := range args {
				v, err := h.Read(kind, 0)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "print a message before the first prompt")
	cmd.Flags().StringSliceVar(&options, "select", nil, "ask to pick one of these options first")
	return cmd
}
