package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/pokeapi"
)

// LoadPage fetches one index page and resolves every summary's detail concurrently.
// Only an index failure fails the call. Items whose detail fetch fails are dropped
// and counted in Page.Dropped; the rest keep index order.
func (s *Service) LoadPage(ctx context.Context, offset, limit int) (pokemon.Page, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	if offset < 0 {
		offset = 0
	}
	logger := logging.FromContext(ctx, s.logger)

	var index pokeapi.IndexResponse
	if err := s.fetcher.FetchResource(ctx, providers.IndexLocator(offset, limit), &index); err != nil {
		s.metrics.RecordPageLoad(0, 0, err)
		logging.Warn(logger, "page index fetch failed",
			slog.Int(logging.FieldOffset, offset),
			slog.Int(logging.FieldLimit, limit),
			slog.String(logging.FieldKind, string(providers.KindOf(err))),
			slog.Any("err", err),
		)
		return pokemon.Page{}, fmt.Errorf("load page offset=%d limit=%d: %w", offset, limit, err)
	}

	resolved := make([]*pokemon.Pokemon, len(index.Results))
	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, summary := range index.Results {
		g.Go(func() error {
			locator := summaryLocator(summary)
			p, err := s.fetchPokemon(ctx, locator)
			if err != nil {
				logging.Warn(logger, "dropping page item",
					slog.String(logging.FieldName, summary.Name),
					slog.String(logging.FieldLocator, locator),
					slog.String(logging.FieldKind, string(providers.KindOf(err))),
					slog.Any("err", err),
				)
				return nil
			}
			resolved[i] = &p
			return nil
		})
	}
	// Item failures never reach the group, so Wait only joins.
	_ = g.Wait()

	page := pokemon.Page{
		Offset:  offset,
		Limit:   limit,
		Items:   make([]pokemon.Pokemon, 0, len(resolved)),
		HasMore: index.Next != nil && *index.Next != "",
	}
	for _, p := range resolved {
		if p == nil {
			page.Dropped++
			continue
		}
		page.Items = append(page.Items, *p)
	}

	s.metrics.RecordPageLoad(len(page.Items), page.Dropped, nil)
	logging.Info(logger, "page loaded",
		slog.Int(logging.FieldOffset, offset),
		slog.Int(logging.FieldLimit, limit),
		slog.Int(logging.FieldCount, len(page.Items)),
		slog.Int(logging.FieldDropped, page.Dropped),
	)
	return page, nil
}
