package main

import (
	"io"

	"github.com/spf13/cobra"

	"pokedex-service/internal/domain/pokemon"
)

func showCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Show one entry with its species data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := env.catalog(cmd).LoadDetail(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), env.flags.output, detail, func(w io.Writer) error {
				return writeDetail(w, detail)
			})
		},
	}
}

func evolutionCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "evolution <name|id>",
		Short: "Show the evolution line of an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := env.catalog(cmd).EvolutionFor(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			view := pokemon.NewEvolutionView(seq)
			return render(cmd.OutOrStdout(), env.flags.output, view, func(w io.Writer) error {
				return writeEvolution(w, view.Stages)
			})
		},
	}
}
