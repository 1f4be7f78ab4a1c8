// Command zipxl turns tabular input documents into .xlsx workbooks.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = slog.Default()
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zipxl",
		Short: "Encode tabular data as .xlsx workbooks",
		Long: `Encode a sheet of typed cells into an Office Open XML workbook.

Input documents are YAML or JSON:

  filename: report
  sheet:
    data:
      - [{value: Name, type: string, style: 'bgColor="FFFF00"'}, {value: 3, type: number}]

Commands:
  build  Encode one input document into <filename>.xlsx.
  serve  Accept input documents over HTTP and answer with the workbook.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	cmd.AddCommand(newBuildCommand())
	cmd.AddCommand(newServeCommand())
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
