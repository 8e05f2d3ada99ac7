package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pokedex-service/internal/app/catalog"
	"pokedex-service/internal/config"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/server"
)

var version = "dev"

// deps holds the seams the commands are built on.
type deps struct {
	loadConfig func() config.Config
	newFetcher func(cfg config.Config, logger *slog.Logger) providers.Fetcher
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		newFetcher: func(cfg config.Config, logger *slog.Logger) providers.Fetcher {
			return server.NewFetcher(cfg, logger, nil)
		},
	}
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	output   string
	provider string
}

func newRootCmd(d deps) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:          "pokedex",
		Short:        "Browse the Pokémon catalogue",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch flags.output {
			case formatText, formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q", flags.output)
			}
		},
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", formatText, "Output format: text, json or yaml")
	root.PersistentFlags().StringVar(&flags.provider, "provider", "", "Override PROVIDER (fixture or pokeapi)")

	env := &cliEnv{deps: d, flags: flags}
	root.AddCommand(listCmd(env))
	root.AddCommand(showCmd(env))
	root.AddCommand(evolutionCmd(env))
	root.AddCommand(searchCmd(env))
	root.AddCommand(serveCmd(env))
	root.AddCommand(versionCmd())
	return root
}

// cliEnv resolves configuration lazily so flags are parsed first.
type cliEnv struct {
	deps  deps
	flags *rootFlags
}

func (e *cliEnv) config() config.Config {
	cfg := e.deps.loadConfig()
	if e.flags.provider != "" {
		cfg.Provider = e.flags.provider
	}
	return cfg
}

func (e *cliEnv) logger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "pokedex",
		Version: version,
		Output:  cmd.ErrOrStderr(),
	})
}

func (e *cliEnv) catalog(cmd *cobra.Command) *catalog.Service {
	cfg := e.config()
	logger := e.logger(cmd, cfg)
	return catalog.NewService(e.deps.newFetcher(cfg, logger), catalog.Options{
		Logger:      logger,
		PageSize:    cfg.Paging.PageSize,
		Concurrency: cfg.Paging.Concurrency,
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print pokedex version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version)
		},
	}
}
