package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
)

var (
	errEmptyName   = errors.New("empty name")
	errBlankDetail = errors.New("entry has neither id nor name")
)

// LoadDetail fetches an entry by name and merges it with its species when available.
// The entry is mandatory: any failure is reported as a not_found FetchError wrapping
// the cause. Species failures only drop the species.
func (s *Service) LoadDetail(ctx context.Context, name string) (pokemon.Detail, error) {
	logger := logging.FromContext(ctx, s.logger)
	locator := providers.PokemonLocator(name)
	if normalizeName(name) == "" {
		// "pokemon/" is the index, not an entry.
		return pokemon.Detail{}, providers.NotFoundError(locator, 0, errEmptyName)
	}

	p, err := s.fetchPokemon(ctx, locator)
	if err == nil && p.ID <= 0 && p.Name == "" {
		err = providers.DecodeError(locator, errBlankDetail)
	}
	if err != nil {
		status := 0
		if fetchErr, ok := providers.AsFetchError(err); ok {
			status = fetchErr.StatusCode
		}
		return pokemon.Detail{}, providers.NotFoundError(locator, status, err)
	}

	species := s.loadSpecies(ctx, logger, p)
	return pokemon.NewDetail(p, species), nil
}

func (s *Service) loadSpecies(ctx context.Context, logger *slog.Logger, p pokemon.Pokemon) *pokemon.Species {
	locator := p.Species.URL
	if locator == "" {
		return nil
	}
	species, err := s.fetchSpecies(ctx, locator)
	if err != nil {
		logging.Warn(logger, "species unavailable",
			slog.String(logging.FieldName, p.Name),
			slog.String(logging.FieldLocator, locator),
			slog.String(logging.FieldKind, string(providers.KindOf(err))),
			slog.Any("err", err),
		)
		return nil
	}
	return species
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
