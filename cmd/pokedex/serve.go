package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pokedex-service/internal/server"
)

func serveCmd(env *cliEnv) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := env.config()
			if port != "" {
				cfg.Port = port
			}
			logger := env.logger(cmd, cfg)

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server.New(cfg, logger).Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Override PORT")
	return cmd
}
