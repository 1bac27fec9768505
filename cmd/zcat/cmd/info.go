package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info file...",
		Short: "Print decompression statistics without writing the output",
		Long: `Info decompresses every file, discards the data and prints one table row per
file: sizes, compression ratio and, for .Z input, the number of codes read,
dictionary resets and the final code width.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(args))

			for _, name := range args {
				res, err := decompressFile(cmd.Context(), name, cmd.InOrStdin(), io.Discard, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}

				rows = append(rows, res.row())
			}

			report(cmd.OutOrStdout(), rows)

			return nil
		},
	}
}
