package catalog

import (
	"context"
	"strconv"
	"strings"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/providers"
)

// MatchLocal filters loaded entries by case-insensitive name substring or by id
// substring. Input order is kept. An empty query matches nothing.
func MatchLocal(items []pokemon.Pokemon, query string) []pokemon.Pokemon {
	q := normalizeName(query)
	if q == "" {
		return nil
	}
	matches := make([]pokemon.Pokemon, 0)
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strconv.Itoa(p.ID), q) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Search matches query against loaded, falling back to a single remote fetch of
// pokemon/{query} when nothing local matches. The fallback yields at most one entry.
// Its failure is returned so callers can tell "no such entry" from a broken remote.
func (s *Service) Search(ctx context.Context, loaded []pokemon.Pokemon, query string) ([]pokemon.Pokemon, error) {
	q := normalizeName(query)
	if q == "" {
		return []pokemon.Pokemon{}, nil
	}
	if matches := MatchLocal(loaded, q); len(matches) > 0 {
		return matches, nil
	}

	p, err := s.fetchPokemon(ctx, providers.PokemonLocator(q))
	if err != nil {
		return []pokemon.Pokemon{}, err
	}
	return []pokemon.Pokemon{p}, nil
}
