package fixture

import (
	"fmt"

	"pokedex-service/internal/providers/pokeapi"
)

const spriteBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

type seedEntry struct {
	id        int
	name      string
	types     []string
	stats     [6]int
	abilities []string
	hidden    string
	moves     []string
	height    int
	weight    int
	baseExp   int
	flavor    string
	habitat   string
	eggGroups []string
	color     string
	chainID   int
}

var builtinEntries = []seedEntry{
	{
		id: 1, name: "bulbasaur", types: []string{"grass", "poison"},
		stats: [6]int{45, 49, 49, 65, 65, 45}, abilities: []string{"overgrow"}, hidden: "chlorophyll",
		moves: []string{"tackle", "vine-whip", "razor-leaf"}, height: 7, weight: 69, baseExp: 64,
		flavor: "A strange seed was\nplanted on its\fback at birth.", habitat: "grassland",
		eggGroups: []string{"monster", "plant"}, color: "green", chainID: 1,
	},
	{
		id: 2, name: "ivysaur", types: []string{"grass", "poison"},
		stats: [6]int{60, 62, 63, 80, 80, 60}, abilities: []string{"overgrow"}, hidden: "chlorophyll",
		moves: []string{"tackle", "vine-whip", "sleep-powder"}, height: 10, weight: 130, baseExp: 142,
		flavor: "When the bulb on\nits back grows\flarge, it appears\nto lose the\nability to stand.", habitat: "grassland",
		eggGroups: []string{"monster", "plant"}, color: "green", chainID: 1,
	},
	{
		id: 3, name: "venusaur", types: []string{"grass", "poison"},
		stats: [6]int{80, 82, 83, 100, 100, 80}, abilities: []string{"overgrow"}, hidden: "chlorophyll",
		moves: []string{"petal-dance", "solar-beam", "vine-whip"}, height: 20, weight: 1000, baseExp: 236,
		flavor: "The plant blooms\nwhen it is\fabsorbing solar\nenergy.", habitat: "grassland",
		eggGroups: []string{"monster", "plant"}, color: "green", chainID: 1,
	},
	{
		id: 25, name: "pikachu", types: []string{"electric"},
		stats: [6]int{35, 55, 40, 50, 50, 90}, abilities: []string{"static"}, hidden: "lightning-rod",
		moves: []string{"thunder-shock", "quick-attack", "thunderbolt"}, height: 4, weight: 60, baseExp: 112,
		flavor: "When several of\nthese POKéMON\fgather, their\nelectricity could\nbuild and cause\nlightning storms.", habitat: "forest",
		eggGroups: []string{"ground", "fairy"}, color: "yellow", chainID: 10,
	},
	{
		id: 26, name: "raichu", types: []string{"electric"},
		stats: [6]int{60, 90, 55, 90, 80, 110}, abilities: []string{"static"}, hidden: "lightning-rod",
		moves: []string{"thunder", "thunderbolt"}, height: 8, weight: 300, baseExp: 243,
		flavor: "Its long tail\nserves as a\fground to protect\nitself from its\nown high voltage\npower.", habitat: "forest",
		eggGroups: []string{"ground", "fairy"}, color: "yellow", chainID: 10,
	},
	{
		id: 132, name: "ditto", types: []string{"normal"},
		stats: [6]int{48, 48, 48, 48, 48, 48}, abilities: []string{"limber"}, hidden: "imposter",
		moves: []string{"transform"}, height: 3, weight: 40, baseExp: 101,
		flavor: "Capable of copying\nan enemy's genetic\fcode to instantly\ntransform itself\ninto a duplicate\nof the enemy.", habitat: "urban",
		eggGroups: []string{"ditto"}, color: "purple", chainID: 66,
	},
	{
		id: 172, name: "pichu", types: []string{"electric"},
		stats: [6]int{20, 40, 15, 35, 35, 60}, abilities: []string{"static"}, hidden: "lightning-rod",
		moves: []string{"thunder-shock", "charm"}, height: 3, weight: 20, baseExp: 41,
		flavor: "It is not yet\fskilled at storing\nelectricity.", habitat: "forest",
		eggGroups: []string{"no-eggs"}, color: "yellow", chainID: 10,
	},
}

var statNames = [6]string{"hp", "attack", "defense", "special-attack", "special-defense", "speed"}

func seedBuiltins(c *Catalogue) {
	for _, e := range builtinEntries {
		c.AddPokemon(e.pokemonResponse(c.baseURL))
		c.AddSpecies(e.speciesResponse(c.baseURL))
	}

	c.AddChain(pokeapi.EvolutionChainResponse{ID: 1, Chain: link(c.baseURL, "bulbasaur", 1, nil,
		link(c.baseURL, "ivysaur", 2, levelUp(16),
			link(c.baseURL, "venusaur", 3, levelUp(32))))})
	c.AddChain(pokeapi.EvolutionChainResponse{ID: 10, Chain: link(c.baseURL, "pichu", 172, nil,
		link(c.baseURL, "pikachu", 25, []pokeapi.EvolutionDetail{{Trigger: pokeapi.NamedResource{Name: "level-up"}}},
			link(c.baseURL, "raichu", 26, []pokeapi.EvolutionDetail{{Trigger: pokeapi.NamedResource{Name: "use-item"}}})))})
	c.AddChain(pokeapi.EvolutionChainResponse{ID: 66, Chain: link(c.baseURL, "ditto", 132, nil)})
}

func (e seedEntry) pokemonResponse(baseURL string) pokeapi.PokemonResponse {
	raw := pokeapi.PokemonResponse{
		ID:             e.id,
		Name:           e.name,
		Height:         e.height,
		Weight:         e.weight,
		BaseExperience: e.baseExp,
		Species:        speciesResource(baseURL, e.name, e.id),
		Sprites:        sprites(e.id),
	}
	for i, t := range e.types {
		raw.Types = append(raw.Types, pokeapi.TypeSlot{Slot: i + 1, Type: pokeapi.NamedResource{Name: t}})
	}
	for i, value := range e.stats {
		raw.Stats = append(raw.Stats, pokeapi.StatEntry{BaseStat: value, Stat: pokeapi.NamedResource{Name: statNames[i]}})
	}
	for i, a := range e.abilities {
		raw.Abilities = append(raw.Abilities, pokeapi.AbilityEntry{Ability: pokeapi.NamedResource{Name: a}, Slot: i + 1})
	}
	if e.hidden != "" {
		raw.Abilities = append(raw.Abilities, pokeapi.AbilityEntry{Ability: pokeapi.NamedResource{Name: e.hidden}, IsHidden: true, Slot: 3})
	}
	for _, m := range e.moves {
		raw.Moves = append(raw.Moves, pokeapi.MoveEntry{Move: pokeapi.NamedResource{Name: m}})
	}
	return raw
}

func (e seedEntry) speciesResponse(baseURL string) pokeapi.SpeciesResponse {
	raw := pokeapi.SpeciesResponse{
		ID:   e.id,
		Name: e.name,
		FlavorTextEntries: []pokeapi.FlavorTextEntry{{
			FlavorText: e.flavor,
			Language:   pokeapi.NamedResource{Name: "en"},
			Version:    pokeapi.NamedResource{Name: "red"},
		}},
		EvolutionChain: &pokeapi.APIResource{URL: fmt.Sprintf("%s/evolution-chain/%d/", baseURL, e.chainID)},
	}
	if e.habitat != "" {
		raw.Habitat = &pokeapi.NamedResource{Name: e.habitat}
	}
	for _, g := range e.eggGroups {
		raw.EggGroups = append(raw.EggGroups, pokeapi.NamedResource{Name: g})
	}
	if e.color != "" {
		raw.Color = &pokeapi.NamedResource{Name: e.color}
	}
	return raw
}

// Synthetic returns a catalogue of count generated entries named mon-1..mon-N.
// Each has an id equal to its position and no species or chain documents.
func Synthetic(count int) *Catalogue {
	c := NewEmpty()
	for i := 1; i <= count; i++ {
		name := fmt.Sprintf("mon-%d", i)
		c.AddPokemon(pokeapi.PokemonResponse{
			ID:      i,
			Name:    name,
			Height:  i,
			Weight:  i * 10,
			Types:   []pokeapi.TypeSlot{{Slot: 1, Type: pokeapi.NamedResource{Name: "normal"}}},
			Species: speciesResource(c.baseURL, name, i),
			Sprites: sprites(i),
		})
	}
	return c
}

func speciesResource(baseURL, name string, id int) *pokeapi.NamedResource {
	return &pokeapi.NamedResource{Name: name, URL: fmt.Sprintf("%s/pokemon-species/%d/", baseURL, id)}
}

func sprites(id int) *pokeapi.SpritesResponse {
	front := fmt.Sprintf("%s/%d.png", spriteBase, id)
	shiny := fmt.Sprintf("%s/shiny/%d.png", spriteBase, id)
	art := fmt.Sprintf("%s/other/official-artwork/%d.png", spriteBase, id)
	return &pokeapi.SpritesResponse{
		FrontDefault: &front,
		FrontShiny:   &shiny,
		Other: &pokeapi.OtherSprites{
			OfficialArtwork: &pokeapi.ArtworkSprites{FrontDefault: &art},
		},
	}
}

func link(baseURL, name string, id int, details []pokeapi.EvolutionDetail, next ...pokeapi.ChainLink) pokeapi.ChainLink {
	return pokeapi.ChainLink{
		Species:          pokeapi.NamedResource{Name: name, URL: fmt.Sprintf("%s/pokemon-species/%d/", baseURL, id)},
		EvolutionDetails: details,
		EvolvesTo:        next,
	}
}

func levelUp(level int) []pokeapi.EvolutionDetail {
	return []pokeapi.EvolutionDetail{{MinLevel: &level, Trigger: pokeapi.NamedResource{Name: "level-up"}}}
}
