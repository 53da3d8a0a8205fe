package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/kindlenotes/internal/config"
	"github.com/mrlokans/kindlenotes/internal/entrypoint"
)

func newServeCommand(cfg *config.Config, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP conversion API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("port") {
				cfg.HTTP.Port, _ = flags.GetInt32("port")
			}
			if flags.Changed("host") {
				cfg.HTTP.Host, _ = flags.GetString("host")
			}
			if flags.Changed("db") {
				cfg.Database.Path, _ = flags.GetString("db")
			}
			return entrypoint.Run(cfg, info.Version)
		},
	}

	cmd.Flags().Int32("port", cfg.HTTP.Port, "Port to listen on")
	cmd.Flags().String("host", cfg.HTTP.Host, "Address to bind to")
	cmd.Flags().String("db", cfg.Database.Path, "Library database path (library endpoints are disabled when empty)")
	return cmd
}
