package catalog

import (
	"context"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/pokeapi"
)

func (s *Service) fetchPokemon(ctx context.Context, locator string) (pokemon.Pokemon, error) {
	var raw pokeapi.PokemonResponse
	if err := s.fetcher.FetchResource(ctx, locator, &raw); err != nil {
		return pokemon.Pokemon{}, err
	}
	return pokeapi.NormalizePokemon(raw, locator), nil
}

func (s *Service) fetchSpecies(ctx context.Context, locator string) (*pokemon.Species, error) {
	var raw pokeapi.SpeciesResponse
	if err := s.fetcher.FetchResource(ctx, locator, &raw); err != nil {
		return nil, err
	}
	return pokeapi.NormalizeSpecies(raw), nil
}

func summaryLocator(summary pokeapi.NamedResource) string {
	if summary.URL != "" {
		return summary.URL
	}
	return providers.PokemonLocator(summary.Name)
}
