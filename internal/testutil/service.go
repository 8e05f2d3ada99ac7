package testutil

import (
	"pokedex-service/internal/app/catalog"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
)

// NewCatalog builds a catalogue service over fetcher with quiet defaults.
func NewCatalog(fetcher providers.Fetcher, pageSize int) *catalog.Service {
	return catalog.NewService(fetcher, catalog.Options{PageSize: pageSize})
}

// NewFixtureCatalog builds a catalogue service over the builtin fixture data.
func NewFixtureCatalog(pageSize int) (*catalog.Service, *fixture.Catalogue) {
	fx := fixture.New()
	return NewCatalog(fx, pageSize), fx
}
