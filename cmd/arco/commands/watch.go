package commands

import (
	"github.com/gaecom/arco-cli/internal/app"
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the distributable whenever a watched source changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ConfigPath: configPath(cmd),
				Debounce:   debounce,
			})
		},
	}
	cmd.Flags().Duration("debounce", domain.DefaultDebounceWindow, "Window that batches bursts of changes into one rebuild")
	return cmd
}
