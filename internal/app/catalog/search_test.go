package catalog

import (
	"context"
	"testing"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
)

func loadedSample() []pokemon.Pokemon {
	return []pokemon.Pokemon{
		{ID: 1, Name: "bulbasaur"},
		{ID: 25, Name: "pikachu"},
		{ID: 26, Name: "raichu"},
		{ID: 172, Name: "pichu"},
	}
}

func TestSearchMatchesIDNumerically(t *testing.T) {
	catalogue := fixture.New()
	svc := NewService(catalogue, Options{})

	results, err := svc.Search(context.Background(), loadedSample(), "25")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 1 || results[0].ID != 25 || results[0].Name != "pikachu" {
		t.Fatalf("expected only pikachu, got %+v", results)
	}
	if catalogue.TotalCalls() != 0 {
		t.Fatalf("expected no remote fetch for a local match")
	}
}

func TestSearchMatchesNameCaseInsensitively(t *testing.T) {
	svc := NewService(fixture.New(), Options{})

	results, err := svc.Search(context.Background(), loadedSample(), "CHU")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 3 || results[0].Name != "pikachu" || results[2].Name != "pichu" {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestSearchFallsBackToSingleRemoteFetch(t *testing.T) {
	catalogue := fixture.New()
	svc := NewService(catalogue, Options{})

	results, err := svc.Search(context.Background(), loadedSample(), " Ditto ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 1 || results[0].ID != 132 {
		t.Fatalf("expected remote ditto, got %+v", results)
	}
	if catalogue.TotalCalls() != 1 || catalogue.Calls("pokemon/ditto") != 1 {
		t.Fatalf("expected exactly one remote fetch, got %d", catalogue.TotalCalls())
	}
}

func TestSearchRemoteMissIsNotFound(t *testing.T) {
	svc := NewService(fixture.New(), Options{})

	results, err := svc.Search(context.Background(), nil, "missingno")
	if !providers.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %+v", results)
	}
}

func TestSearchEmptyQueryDoesNothing(t *testing.T) {
	catalogue := fixture.New()
	svc := NewService(catalogue, Options{})

	results, err := svc.Search(context.Background(), loadedSample(), "   ")
	if err != nil || len(results) != 0 {
		t.Fatalf("expected empty result, got %+v err=%v", results, err)
	}
	if catalogue.TotalCalls() != 0 {
		t.Fatalf("expected no fetch for an empty query")
	}
	if MatchLocal(loadedSample(), "") != nil {
		t.Fatalf("expected nil local matches for empty query")
	}
}
