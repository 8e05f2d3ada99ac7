package server

import (
	"context"
	"testing"

	"pokedex-service/internal/config"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/testutil"
)

func TestFetcherFactoryInstrumentsFetches(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	fetcher := NewFetcher(config.Config{Provider: config.ProviderFixture}, nil, rec)
	if fetcher == nil {
		t.Fatalf("expected fetcher")
	}

	if err := fetcher.FetchResource(context.Background(), "pokemon/ditto", nil); err != nil {
		t.Fatalf("unexpected fetch error %v", err)
	}
	if rec.FetchCalls("fixture") != 1 {
		t.Fatalf("expected fetch recorded under fixture, got %d", rec.FetchCalls("fixture"))
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName(" PokeAPI ", nil); got != "pokeapi" {
		t.Fatalf("expected configured name, got %q", got)
	}
	if got := normalizeProviderName("", fixture.New()); got != "fixture" {
		t.Fatalf("expected fetcher name, got %q", got)
	}
	if got := normalizeProviderName("", testutil.ErrFetcher{}); got != "testutil.errfetcher" {
		t.Fatalf("expected type name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %q", got)
	}
}
