package providers

import (
	"net/url"
	"path"
	"strconv"
	"strings"
)

// DefaultBaseURL is the public catalogue API root.
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// NormalizeBaseURL applies the default and trims trailing slashes.
func NormalizeBaseURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultBaseURL
	}
	return strings.TrimRight(raw, "/")
}

// ResolveLocator turns a locator into an absolute URL against base.
// Absolute locators pass through unchanged.
func ResolveLocator(base, locator string) string {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator
	}
	return NormalizeBaseURL(base) + "/" + strings.TrimLeft(locator, "/")
}

// IndexLocator builds the paginated index locator for offset/limit.
func IndexLocator(offset, limit int) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return "pokemon?" + q.Encode()
}

// PokemonLocator builds the detail locator for a name or id slug.
func PokemonLocator(slug string) string {
	return "pokemon/" + url.PathEscape(strings.ToLower(strings.TrimSpace(slug)))
}

// TrailingID parses the last non-empty path segment of a locator as an id.
// It returns 0 when the segment is missing or not numeric.
func TrailingID(locator string) int {
	if u, err := url.Parse(locator); err == nil {
		locator = u.Path
	}
	seg := path.Base(strings.TrimRight(locator, "/"))
	id, err := strconv.Atoi(seg)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// SpeciesLocator builds the species locator for a name or id slug.
func SpeciesLocator(slug string) string {
	return "pokemon-species/" + url.PathEscape(strings.ToLower(strings.TrimSpace(slug)))
}
