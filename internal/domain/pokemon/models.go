package pokemon

// StatKey enumerates the base stats tracked for every entry.
type StatKey string

const (
	StatHP             StatKey = "hp"
	StatAttack         StatKey = "attack"
	StatDefense        StatKey = "defense"
	StatSpecialAttack  StatKey = "special-attack"
	StatSpecialDefense StatKey = "special-defense"
	StatSpeed          StatKey = "speed"
)

// StatKeys lists the stats in display order.
var StatKeys = []StatKey{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// Valid reports whether k is one of the known stats.
func (k StatKey) Valid() bool {
	for _, known := range StatKeys {
		if k == known {
			return true
		}
	}
	return false
}

// SpriteSlot names one image variant of an entry.
type SpriteSlot string

const (
	SpriteFrontDefault    SpriteSlot = "front-default"
	SpriteFrontShiny      SpriteSlot = "front-shiny"
	SpriteBackDefault     SpriteSlot = "back-default"
	SpriteBackShiny       SpriteSlot = "back-shiny"
	SpriteArtworkFront    SpriteSlot = "artwork-front"
	SpriteArtworkShiny    SpriteSlot = "artwork-shiny"
	SpriteDreamWorldFront SpriteSlot = "dream-world-front"
)

// Ability is a single ability tag with its hidden flag.
type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// SpeciesRef points at the species resource. It is resolved on demand, never embedded.
type SpeciesRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon is the canonical catalogue entry. Values are built by the normalizer and
// treated as immutable afterwards: updates replace the whole value.
type Pokemon struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	Height         int                   `json:"height"`
	Weight         int                   `json:"weight"`
	BaseExperience int                   `json:"baseExperience"`
	Types          []string              `json:"types"`
	BaseStats      map[StatKey]int       `json:"baseStats"`
	Abilities      []Ability             `json:"abilities"`
	Moves          []string              `json:"moves"`
	Sprites        map[SpriteSlot]string `json:"sprites"`
	Species        SpeciesRef            `json:"species"`
}

// PrimaryType returns the first type slot, or "normal" when none is known.
func (p Pokemon) PrimaryType() string {
	if len(p.Types) == 0 || p.Types[0] == "" {
		return "normal"
	}
	return p.Types[0]
}

// Sprite returns the image reference for a slot when present.
func (p Pokemon) Sprite(slot SpriteSlot) (string, bool) {
	url, ok := p.Sprites[slot]
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

// FirstSprite returns the first present sprite among the given slots.
func (p Pokemon) FirstSprite(slots ...SpriteSlot) (string, bool) {
	for _, slot := range slots {
		if url, ok := p.Sprite(slot); ok {
			return url, true
		}
	}
	return "", false
}

// TotalStats sums the known base stats.
func (p Pokemon) TotalStats() int {
	total := 0
	for _, key := range StatKeys {
		total += p.BaseStats[key]
	}
	return total
}

// Page is one page of normalized entries as returned by the page aggregator.
type Page struct {
	Offset  int       `json:"offset"`
	Limit   int       `json:"limit"`
	Items   []Pokemon `json:"items"`
	HasMore bool      `json:"hasMore"`
	Dropped int       `json:"dropped"`
}
