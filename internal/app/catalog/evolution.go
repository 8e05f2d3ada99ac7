package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/pokeapi"
)

// ErrNoEvolutionChain is returned when an entry's species, and so its chain locator, is unavailable.
var ErrNoEvolutionChain = errors.New("evolution chain unavailable")

// ResolveChain walks the chain at chainLocator, following the first branch at each
// fork for at most MaxEvolutionStages stages. Each stage image is resolved with a
// follow-up entry fetch; a failed image fetch leaves only that stage without an image.
// Only a failure to fetch the chain document itself is returned.
func (s *Service) ResolveChain(ctx context.Context, chainLocator string) (pokemon.EvolutionSequence, error) {
	var chain pokeapi.EvolutionChainResponse
	if err := s.fetcher.FetchResource(ctx, chainLocator, &chain); err != nil {
		return nil, fmt.Errorf("resolve chain: %w", err)
	}

	logger := logging.FromContext(ctx, s.logger)
	steps := pokeapi.FirstBranch(chain.Chain, pokemon.MaxEvolutionStages)
	sequence := make(pokemon.EvolutionSequence, 0, len(steps))
	for _, step := range steps {
		sequence = append(sequence, pokemon.EvolutionStage{
			Name:     step.Species.Name,
			ImageURL: s.stageImage(ctx, logger, step.Species.Name),
			MinLevel: step.MinLevel,
		})
	}
	return sequence, nil
}

// EvolutionFor resolves the evolution line of the entry called name.
func (s *Service) EvolutionFor(ctx context.Context, name string) (pokemon.EvolutionSequence, error) {
	detail, err := s.LoadDetail(ctx, name)
	if err != nil {
		return nil, err
	}
	chainLocator := detail.EvolutionChainURL()
	if chainLocator == "" {
		return nil, fmt.Errorf("%s: %w", detail.Pokemon.Name, ErrNoEvolutionChain)
	}
	return s.ResolveChain(ctx, chainLocator)
}

func (s *Service) stageImage(ctx context.Context, logger *slog.Logger, speciesName string) *string {
	if speciesName == "" {
		return nil
	}
	p, err := s.fetchPokemon(ctx, providers.PokemonLocator(speciesName))
	if err != nil {
		logging.Warn(logger, "evolution stage image unavailable",
			slog.String(logging.FieldName, speciesName),
			slog.String(logging.FieldKind, string(providers.KindOf(err))),
		)
		return nil
	}
	url, ok := p.FirstSprite(pokemon.SpriteArtworkFront, pokemon.SpriteFrontDefault)
	if !ok {
		return nil
	}
	return &url
}
