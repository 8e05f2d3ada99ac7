package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/pokeapi"
)

const (
	providerName = "fixture"
	apiPrefix    = "/api/v2"
	indexPath    = "pokemon"
	defaultLimit = 20
)

// Catalogue serves canned catalogue documents keyed by locator. Absolute and
// relative locators for the same resource resolve to the same document, and the
// paginated index is generated from the registered entries.
type Catalogue struct {
	mu       sync.RWMutex
	baseURL  string
	entries  []pokeapi.NamedResource
	docs     map[string][]byte
	failures map[string]error
	calls    map[string]int
}

// NewEmpty returns a catalogue with no documents.
func NewEmpty() *Catalogue {
	return &Catalogue{
		baseURL:  providers.DefaultBaseURL,
		docs:     make(map[string][]byte),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

// New returns a catalogue preloaded with a small built-in dataset.
func New() *Catalogue {
	c := NewEmpty()
	seedBuiltins(c)
	return c
}

// Name identifies the catalogue in logs and metrics.
func (c *Catalogue) Name() string {
	return providerName
}

// AddPokemon registers an entry document under its name and id and appends it to the index.
func (c *Catalogue) AddPokemon(raw pokeapi.PokemonResponse) {
	body := mustMarshal(raw)
	self := fmt.Sprintf("%s/pokemon/%d/", c.baseURL, raw.ID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, pokeapi.NamedResource{Name: raw.Name, URL: self})
	c.docs[keyFor(providers.PokemonLocator(raw.Name))] = body
	c.docs[keyFor(providers.PokemonLocator(strconv.Itoa(raw.ID)))] = body
}

// AddSpecies registers a species document under its name and id.
func (c *Catalogue) AddSpecies(raw pokeapi.SpeciesResponse) {
	body := mustMarshal(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[keyFor(providers.SpeciesLocator(raw.Name))] = body
	if raw.ID > 0 {
		c.docs[keyFor(providers.SpeciesLocator(strconv.Itoa(raw.ID)))] = body
	}
}

// AddChain registers an evolution chain document under evolution-chain/{id}.
func (c *Catalogue) AddChain(raw pokeapi.EvolutionChainResponse) {
	body := mustMarshal(raw)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[keyFor(fmt.Sprintf("evolution-chain/%d", raw.ID))] = body
}

// Add registers an arbitrary document. v is marshalled unless it is already []byte.
func (c *Catalogue) Add(locator string, v any) error {
	body, ok := v.([]byte)
	if !ok {
		var err error
		if body, err = json.Marshal(v); err != nil {
			return fmt.Errorf("fixture: marshal %s: %w", locator, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[keyFor(locator)] = body
	return nil
}

// Fail makes every fetch of locator return err. A nil err clears the failure.
func (c *Catalogue) Fail(locator string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.failures, keyFor(locator))
		return
	}
	c.failures[keyFor(locator)] = err
}

// Calls reports how many fetches were issued for locator.
func (c *Catalogue) Calls(locator string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.calls[keyFor(locator)]
}

// TotalCalls reports how many fetches were issued overall.
func (c *Catalogue) TotalCalls() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, n := range c.calls {
		total += n
	}
	return total
}

// Len reports how many entries the index holds.
func (c *Catalogue) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// FetchResource implements providers.Fetcher.
func (c *Catalogue) FetchResource(ctx context.Context, locator string, dst any) error {
	if err := ctx.Err(); err != nil {
		return providers.NetworkError(locator, err)
	}

	key, query := splitLocator(locator)

	c.mu.Lock()
	c.calls[key]++
	failure := c.failures[key]
	body, found := c.docs[key]
	c.mu.Unlock()

	if failure != nil {
		if _, ok := providers.AsFetchError(failure); ok {
			return failure
		}
		return providers.NetworkError(locator, failure)
	}

	if key == indexPath && !found {
		body = c.indexDocument(query)
		found = true
	}
	if !found {
		return providers.NotFoundError(locator, 404, fmt.Errorf("fixture: no document for %s", key))
	}

	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return providers.DecodeError(locator, err)
	}
	return nil
}

func (c *Catalogue) indexDocument(query url.Values) []byte {
	offset := queryInt(query, "offset", 0)
	limit := queryInt(query, "limit", defaultLimit)
	if limit == 0 {
		limit = defaultLimit
	}

	c.mu.RLock()
	total := len(c.entries)
	start := min(offset, total)
	end := min(start+limit, total)
	results := append([]pokeapi.NamedResource{}, c.entries[start:end]...)
	c.mu.RUnlock()

	page := pokeapi.IndexResponse{Count: total, Results: results}
	if end < total {
		next := c.baseURL + "/" + providers.IndexLocator(end, limit)
		page.Next = &next
	}
	if start > 0 {
		previous := c.baseURL + "/" + providers.IndexLocator(max(start-limit, 0), limit)
		page.Previous = &previous
	}
	return mustMarshal(page)
}

// keyFor reduces a locator to its lowercase resource path relative to the API root.
func keyFor(locator string) string {
	key, _ := splitLocator(locator)
	return key
}

func splitLocator(locator string) (string, url.Values) {
	u, err := url.Parse(strings.TrimSpace(locator))
	if err != nil {
		return strings.ToLower(strings.Trim(locator, "/")), nil
	}
	p := u.Path
	if u.Host != "" {
		if idx := strings.Index(p, apiPrefix); idx >= 0 {
			p = p[idx+len(apiPrefix):]
		}
	}
	return strings.ToLower(strings.Trim(p, "/")), u.Query()
}

func queryInt(query url.Values, name string, fallback int) int {
	v, err := strconv.Atoi(query.Get(name))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func mustMarshal(v any) []byte {
	body, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("fixture: marshal: %v", err))
	}
	return body
}
