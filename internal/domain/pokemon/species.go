package pokemon

import "strings"

const (
	// FallbackDescription is shown when no English flavour text is known.
	FallbackDescription = "No description available."
	// FallbackHabitat is shown when the habitat is unknown or species data is missing.
	FallbackHabitat = "Unknown"
	// FallbackEggGroup fills the egg group list when nothing is known.
	FallbackEggGroup = "Unknown"

	descriptionLanguage = "en"
)

// FlavorText is one localized description entry.
type FlavorText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Version  string `json:"version,omitempty"`
}

// Species augments an entry with flavour data and the evolution chain locator.
type Species struct {
	Name              string       `json:"name"`
	FlavorTexts       []FlavorText `json:"flavorTexts"`
	Habitat           string       `json:"habitat,omitempty"`
	EggGroups         []string     `json:"eggGroups"`
	EvolutionChainURL string       `json:"evolutionChainUrl,omitempty"`
	Color             string       `json:"color,omitempty"`
}

// Description returns the first English flavour text with form feeds replaced by spaces.
func Description(s *Species) string {
	if s == nil {
		return FallbackDescription
	}
	for _, entry := range s.FlavorTexts {
		if entry.Language != descriptionLanguage {
			continue
		}
		text := strings.ReplaceAll(entry.Text, "\f", " ")
		if text == "" {
			break
		}
		return text
	}
	return FallbackDescription
}

// Habitat returns the capitalized habitat or the fallback.
func Habitat(s *Species) string {
	if s == nil || s.Habitat == "" {
		return FallbackHabitat
	}
	return Capitalize(s.Habitat)
}

// EggGroups returns capitalized egg groups, falling back to a single "Unknown" entry.
func EggGroups(s *Species) []string {
	if s == nil || len(s.EggGroups) == 0 {
		return []string{FallbackEggGroup}
	}
	groups := make([]string, 0, len(s.EggGroups))
	for _, g := range s.EggGroups {
		groups = append(groups, Capitalize(g))
	}
	return groups
}
