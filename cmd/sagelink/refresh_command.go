package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sagelink/internal/services/jellyfin"
)

func newRefreshCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trigger a Jellyfin library scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Jellyfin.Enabled {
				return fmt.Errorf("jellyfin refresh is disabled; enable it in the config file")
			}

			svc := jellyfin.NewConfiguredService(cfg)
			if err := svc.Refresh(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Jellyfin library refresh requested")
			return nil
		},
	}
}
