package pokemon

import "sort"

// StatRow is one rendered base stat.
type StatRow struct {
	Key   StatKey `json:"key"`
	Label string  `json:"label"`
	Value int     `json:"value"`
	Color string  `json:"color"`
}

// Display holds the render-ready strings derived from an entry and its species.
type Display struct {
	Number      string    `json:"number"`
	Name        string    `json:"name"`
	PrimaryType string    `json:"primaryType"`
	ThemeColor  string    `json:"themeColor"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Weight      string    `json:"weight"`
	Height      string    `json:"height"`
	Abilities   []string  `json:"abilities"`
	Stats       []StatRow `json:"stats"`
	TotalStats  int       `json:"totalStats"`
	Moves       []string  `json:"moves"`
}

// Detail is the detail view model: an entry merged with its (optional) species.
type Detail struct {
	Pokemon     Pokemon  `json:"pokemon"`
	Species     *Species `json:"species,omitempty"`
	Description string   `json:"description"`
	Habitat     string   `json:"habitat"`
	EggGroups   []string `json:"eggGroups"`
	Display     Display  `json:"display"`
}

// EvolutionChainURL returns the chain locator when species data is available.
func (d Detail) EvolutionChainURL() string {
	if d.Species == nil {
		return ""
	}
	return d.Species.EvolutionChainURL
}

// NewDetail merges an entry with species data, which may be nil.
func NewDetail(p Pokemon, species *Species) Detail {
	return Detail{
		Pokemon:     p,
		Species:     species,
		Description: Description(species),
		Habitat:     Habitat(species),
		EggGroups:   EggGroups(species),
		Display:     NewDisplay(p),
	}
}

// NewDisplay derives the display fields of an entry.
func NewDisplay(p Pokemon) Display {
	primary := p.PrimaryType()
	image, _ := p.FirstSprite(SpriteArtworkFront, SpriteFrontDefault, SpriteFrontShiny)

	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, Label(a.Name))
	}

	stats := make([]StatRow, 0, len(StatKeys))
	for _, key := range StatKeys {
		value, ok := p.BaseStats[key]
		if !ok {
			continue
		}
		stats = append(stats, StatRow{
			Key:   key,
			Label: StatLabel(key),
			Value: value,
			Color: StatColor(value, StatBarMax),
		})
	}

	moves := make([]string, 0, len(p.Moves))
	for _, m := range p.Moves {
		moves = append(moves, Label(m))
	}
	sort.Strings(moves)

	return Display{
		Number:      FormatID(p.ID),
		Name:        Capitalize(p.Name),
		PrimaryType: primary,
		ThemeColor:  TypeColor(primary),
		ImageURL:    image,
		Weight:      FormatWeight(p.Weight),
		Height:      FormatHeight(p.Height),
		Abilities:   abilities,
		Stats:       stats,
		TotalStats:  p.TotalStats(),
		Moves:       moves,
	}
}
