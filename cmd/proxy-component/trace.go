package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-proxy/errors"
	"github.com/wippyai/wasm-proxy/trace"
)

func newTraceCmd() *cobra.Command {
	var summary bool
	cmd := &cobra.Command{
		Use:   "trace <trace.jsonl>",
		Short: "Print a recorded trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := trace.LoadFile(args[0])
			if err != nil {
				return err
			}
			if summary {
				_, err := trace.Summarize(events).WriteTo(cmd.OutOrStdout())
				return err
			}
			return trace.Format(cmd.OutOrStdout(), events)
		},
	}
	cmd.Flags().BoolVarP(&summary, "summary", "s", false, "print call counts instead of events")
	cmd.AddCommand(newTraceCheckCmd())
	return cmd
}

func newTraceCheckCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "check <trace.jsonl>",
		Short: "Replay a trace against itself",
		Long: `Drive the replay state machine over the trace as a replaying component
would and report the first mismatch. With --out, the events the replay
consumed are recorded to a new trace, dropping unreadable lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			events, err := trace.LoadFile(args[0])
			if err != nil {
				return err
			}
			var rec *trace.Recorder
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrap(errors.PhaseTrace, errors.KindInvalidInput, err, "create "+out)
				}
				rec = trace.NewRecorder(trace.NewStreamSink(f))
				defer func() {
					if cerr := rec.Close(); err == nil {
						err = cerr
					}
				}()
			}
			n, err := trace.Check(events, rec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d events, %d exports replayed\n", len(events), n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "record the replayed events to this file")
	return cmd
}
