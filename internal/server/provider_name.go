package server

import (
	"fmt"
	"strings"

	"pokedex-service/internal/providers"
)

// normalizeProviderName returns a lower-cased provider name, deriving from the fetcher when not explicitly configured.
// Fetchers that report a Name() win over their type name.
func normalizeProviderName(raw string, fetcher providers.Fetcher) string {
	if name := strings.ToLower(strings.TrimSpace(raw)); name != "" {
		return name
	}
	if named, ok := fetcher.(interface{ Name() string }); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if fetcher != nil {
		return strings.ToLower(fmt.Sprintf("%T", fetcher))
	}
	return "provider"
}
