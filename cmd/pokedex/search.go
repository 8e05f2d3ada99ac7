package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pokedex-service/internal/app/listing"
	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/providers"
)

type searchResult struct {
	Query   string            `json:"query"`
	Results []pokemon.Pokemon `json:"results"`
}

func searchCmd(env *cliEnv) *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search loaded pages by name or id, falling back to a direct lookup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			svc := env.catalog(cmd)

			list := listing.New(svc, listing.Options{})
			if pages > 0 {
				loaded, _, err := loadPages(ctx, svc, 0, pages)
				if err != nil {
					return err
				}
				list = loaded
			}

			results, err := list.Search(ctx, args[0])
			if err != nil && !providers.IsNotFound(err) {
				return err
			}
			out := searchResult{Query: args[0], Results: results}
			return render(cmd.OutOrStdout(), env.flags.output, out, func(w io.Writer) error {
				if len(results) == 0 {
					_, err := fmt.Fprintf(w, "No matches for %q.\n", args[0])
					return err
				}
				return writeSummaries(w, results)
			})
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "Pages to load before matching locally; 0 goes straight to lookup")
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
