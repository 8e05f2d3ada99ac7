package fixture

import (
	"context"
	"errors"
	"testing"

	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/pokeapi"
)

func TestNewServesBuiltinEntriesByNameAndID(t *testing.T) {
	c := New()

	var byName, byID pokeapi.PokemonResponse
	if err := c.FetchResource(context.Background(), "pokemon/pikachu", &byName); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := c.FetchResource(context.Background(), "https://pokeapi.co/api/v2/pokemon/25/", &byID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if byName.ID != 25 || byID.Name != "pikachu" {
		t.Fatalf("unexpected documents: %+v / %+v", byName, byID)
	}
	if c.Len() != len(builtinEntries) {
		t.Fatalf("expected %d index entries, got %d", len(builtinEntries), c.Len())
	}
}

func TestIndexDocumentPaginates(t *testing.T) {
	c := New()

	var first pokeapi.IndexResponse
	if err := c.FetchResource(context.Background(), providers.IndexLocator(0, 5), &first); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(first.Results) != 5 || first.Next == nil || first.Previous != nil {
		t.Fatalf("unexpected first page: %+v", first)
	}
	if first.Results[0].Name != "bulbasaur" || first.Results[3].Name != "pikachu" {
		t.Fatalf("unexpected index order: %+v", first.Results)
	}

	var last pokeapi.IndexResponse
	if err := c.FetchResource(context.Background(), *first.Next, &last); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(last.Results) != 2 || last.Next != nil || last.Previous == nil {
		t.Fatalf("unexpected last page: %+v", last)
	}
	if last.Count != len(builtinEntries) {
		t.Fatalf("expected count %d, got %d", len(builtinEntries), last.Count)
	}
}

func TestIndexDocumentPastEndIsEmpty(t *testing.T) {
	var page pokeapi.IndexResponse
	if err := New().FetchResource(context.Background(), providers.IndexLocator(500, 20), &page); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Results) != 0 || page.Next != nil {
		t.Fatalf("expected empty final page, got %+v", page)
	}
}

func TestMissingDocumentIsNotFound(t *testing.T) {
	err := New().FetchResource(context.Background(), "pokemon/missingno", &pokeapi.PokemonResponse{})
	if !providers.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFailInjectsErrors(t *testing.T) {
	c := New()
	c.Fail("pokemon/pikachu", errors.New("boom"))
	c.Fail("pokemon/ditto", providers.DecodeError("pokemon/ditto", errors.New("bad")))

	if kind := providers.KindOf(c.FetchResource(context.Background(), "pokemon/pikachu", nil)); kind != providers.KindNetwork {
		t.Fatalf("expected plain errors to surface as network, got %q", kind)
	}
	if kind := providers.KindOf(c.FetchResource(context.Background(), "pokemon/ditto", nil)); kind != providers.KindDecode {
		t.Fatalf("expected fetch errors to pass through, got %q", kind)
	}

	c.Fail("pokemon/pikachu", nil)
	if err := c.FetchResource(context.Background(), "pokemon/pikachu", nil); err != nil {
		t.Fatalf("expected cleared failure, got %v", err)
	}
	if c.Calls("pokemon/pikachu") != 2 || c.TotalCalls() != 3 {
		t.Fatalf("unexpected call counts: %d / %d", c.Calls("pokemon/pikachu"), c.TotalCalls())
	}
}

func TestAddServesRawAndMarshalledDocuments(t *testing.T) {
	c := NewEmpty()
	if err := c.Add("pokemon/broken", []byte(`{"id": "x"`)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := c.Add("pokemon-species/custom", pokeapi.SpeciesResponse{Name: "custom"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err := c.FetchResource(context.Background(), "pokemon/broken", &pokeapi.PokemonResponse{})
	if providers.KindOf(err) != providers.KindDecode {
		t.Fatalf("expected decode error, got %v", err)
	}
	var species pokeapi.SpeciesResponse
	if err := c.FetchResource(context.Background(), "https://pokeapi.co/api/v2/pokemon-species/custom/", &species); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if species.Name != "custom" {
		t.Fatalf("unexpected species %+v", species)
	}
}

func TestCancelledContextIsNetworkError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if kind := providers.KindOf(New().FetchResource(ctx, "pokemon/pikachu", nil)); kind != providers.KindNetwork {
		t.Fatalf("expected network error, got %q", kind)
	}
}

func TestBuiltinChainsResolve(t *testing.T) {
	var chain pokeapi.EvolutionChainResponse
	if err := New().FetchResource(context.Background(), "https://pokeapi.co/api/v2/evolution-chain/1/", &chain); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	steps := pokeapi.FirstBranch(chain.Chain, 3)
	if len(steps) != 3 || steps[2].Species.Name != "venusaur" || *steps[2].MinLevel != 32 {
		t.Fatalf("unexpected chain %+v", steps)
	}
}

func TestSyntheticCatalogue(t *testing.T) {
	c := Synthetic(60)
	var page pokeapi.IndexResponse
	if err := c.FetchResource(context.Background(), providers.IndexLocator(0, 60), &page); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Results) != 60 || page.Next != nil {
		t.Fatalf("unexpected synthetic page: count=%d next=%v", len(page.Results), page.Next)
	}
	if c.Name() != providerName {
		t.Fatalf("unexpected name %s", c.Name())
	}
}
