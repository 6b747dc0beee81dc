package commands

import (
	"github.com/gaecom/arco-cli/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build module trees, the import index and the distributable once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dev, _ := cmd.Flags().GetBool("dev")
			strict, _ := cmd.Flags().GetBool("strict")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath: configPath(cmd),
				Dev:        dev,
				Strict:     strict,
			})
		},
	}
	cmd.Flags().Bool("dev", false, "Skip minification of the distributable (same as ARCO_ENV=development)")
	cmd.Flags().Bool("strict", false, "Exit non-zero when any build stage fails")
	return cmd
}
