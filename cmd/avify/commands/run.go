package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/avify/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Convert source images, skipping files unchanged since the last run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			quality, _ := cmd.Flags().GetInt("quality")
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			jsonLogs, _ := cmd.Flags().GetBool("json")

			// Per-file failures are reported through the logs; a run never
			// fails the build.
			c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath:  configPath,
				Quality:     quality,
				Concurrency: concurrency,
				JSON:        jsonLogs,
			})
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to the configuration file (default avify.yaml)")
	cmd.Flags().IntP("quality", "q", -1, "Override the encoder quality (0-100)")
	cmd.Flags().IntP("concurrency", "n", 0, "Override the number of parallel conversions")
	cmd.Flags().Bool("json", false, "Emit JSON logs for CI")
	return cmd
}
