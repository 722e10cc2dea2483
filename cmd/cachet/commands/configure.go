package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cachet/internal/app"
)

func (c *CLI) newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure [build-dir]",
		Short: "Open the cache of a build directory and run configure passes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buildDir := "."
			if len(args) == 1 {
				buildDir = args[0]
			}

			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			passes, _ := cmd.Flags().GetInt("passes")
			generate, _ := cmd.Flags().GetBool("generate")
			showAdvanced, _ := cmd.Flags().GetBool("show-advanced")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Run(cmd.Context(), buildDir, app.RunOptions{
				OutputMode:   outputMode,
				Passes:       passes,
				Generate:     generate,
				ShowAdvanced: showAdvanced,
			})
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().IntP("passes", "p", 1, "Configure-pass budget in linear mode")
	cmd.Flags().BoolP("generate", "g", false, "Generate build files after convergence in linear mode")
	cmd.Flags().BoolP("show-advanced", "a", false, "Show advanced cache entries from the start")
	return cmd
}
