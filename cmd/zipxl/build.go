package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adnsv/go-zipxl/xl"
)

func newBuildCommand() *cobra.Command {
	var (
		input    string
		outDir   string
		unpacked string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Encode an input document into an .xlsx file",
		Example: `  zipxl build -i report.yaml -o out
  cat report.json | zipxl build -o out --unpacked out/report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := xl.NewEncoder(xl.WithLogger(logger))

			var r io.Reader = cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			cfg, err := enc.DecodeConfig(r)
			if err != nil {
				logger.Error("invalid input document", "input", input, "err", err)
				return err
			}
			p, err := enc.Encode(cfg)
			if err != nil {
				return err
			}

			if unpacked != "" {
				if err := p.Store(xl.NewDirStorage(unpacked)); err != nil {
					return err
				}
				logger.Debug("wrote unpacked parts", "dir", unpacked)
			}

			if err := xl.Deliver(p, &xl.FileSink{Dir: outDir}); err != nil {
				return err
			}
			logger.Info("wrote workbook",
				"path", filepath.Join(outDir, p.Name()),
				"digest", p.Digest())
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input document (YAML or JSON); - reads stdin")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory receiving <filename>.xlsx")
	cmd.Flags().StringVar(&unpacked, "unpacked", "", "Also write the raw package parts into this directory")
	return cmd
}
