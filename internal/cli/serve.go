package cli

import (
	"github.com/spf13/cobra"

	"github.com/sozercan/web-data-gen/internal/config"
	"github.com/sozercan/web-data-gen/internal/logx"
	"github.com/sozercan/web-data-gen/internal/server"
)

func newServeCommand() *cobra.Command {
	var host, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web form",
		Long: `Serve the web form and its JSON API. Configuration is read from the
environment (SERVER_*, DATAGEN_*, LOG_*); --host and --port override it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if port != "" {
				cfg.Server.Port = port
			}

			logger, closeLogs, err := logx.Init("web-data-gen", cfg.Log)
			if err != nil {
				return err
			}
			defer closeLogs()

			srv, err := server.Build(*cfg, logger)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (default from SERVER_HOST)")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (default from SERVER_PORT)")
	return cmd
}
