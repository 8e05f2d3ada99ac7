package pokeapi

// NamedResource is the {name, url} reference the API embeds everywhere.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is an unnamed {url} reference.
type APIResource struct {
	URL string `json:"url"`
}

// IndexResponse is one page of the paginated entry index.
type IndexResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// PokemonResponse is the raw entry detail document.
type PokemonResponse struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Height         int              `json:"height"`
	Weight         int              `json:"weight"`
	BaseExperience int              `json:"base_experience"`
	Types          []TypeSlot       `json:"types"`
	Stats          []StatEntry      `json:"stats"`
	Abilities      []AbilityEntry   `json:"abilities"`
	Moves          []MoveEntry      `json:"moves"`
	Sprites        *SpritesResponse `json:"sprites"`
	Species        *NamedResource   `json:"species"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type AbilityEntry struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type MoveEntry struct {
	Move NamedResource `json:"move"`
}

type SpritesResponse struct {
	FrontDefault *string       `json:"front_default"`
	FrontShiny   *string       `json:"front_shiny"`
	BackDefault  *string       `json:"back_default"`
	BackShiny    *string       `json:"back_shiny"`
	Other        *OtherSprites `json:"other,omitempty"`
}

type OtherSprites struct {
	OfficialArtwork *ArtworkSprites    `json:"official-artwork,omitempty"`
	DreamWorld      *DreamWorldSprites `json:"dream_world,omitempty"`
}

type ArtworkSprites struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

type DreamWorldSprites struct {
	FrontDefault *string `json:"front_default"`
}

// SpeciesResponse is the raw species document.
type SpeciesResponse struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Habitat           *NamedResource    `json:"habitat"`
	EggGroups         []NamedResource   `json:"egg_groups"`
	EvolutionChain    *APIResource      `json:"evolution_chain"`
	Color             *NamedResource    `json:"color"`
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// EvolutionChainResponse is the raw evolution chain document.
type EvolutionChainResponse struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is one node of the evolution tree.
type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

type EvolutionDetail struct {
	MinLevel *int          `json:"min_level"`
	Trigger  NamedResource `json:"trigger"`
}
