package pokeapi

import (
	"sort"
	"strings"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/providers"
)

// NormalizePokemon converts a raw entry document into the canonical entry.
// selfLocator is the locator the document was fetched from; it supplies the id
// when the payload omits one. Missing optional fields never fail normalization.
func NormalizePokemon(raw PokemonResponse, selfLocator string) pokemon.Pokemon {
	name := strings.ToLower(strings.TrimSpace(raw.Name))

	id := raw.ID
	if id <= 0 {
		id = providers.TrailingID(selfLocator)
	}

	return pokemon.Pokemon{
		ID:             id,
		Name:           name,
		Height:         raw.Height,
		Weight:         raw.Weight,
		BaseExperience: raw.BaseExperience,
		Types:          mapTypes(raw.Types),
		BaseStats:      mapStats(raw.Stats),
		Abilities:      mapAbilities(raw.Abilities),
		Moves:          mapMoves(raw.Moves),
		Sprites:        mapSprites(raw.Sprites),
		Species:        mapSpeciesRef(raw.Species, name),
	}
}

func mapTypes(slots []TypeSlot) []string {
	ordered := make([]TypeSlot, 0, len(slots))
	for _, s := range slots {
		if s.Type.Name != "" {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Slot < ordered[j].Slot
	})
	types := make([]string, 0, len(ordered))
	for _, s := range ordered {
		types = append(types, s.Type.Name)
	}
	return types
}

func mapStats(entries []StatEntry) map[pokemon.StatKey]int {
	stats := make(map[pokemon.StatKey]int, len(pokemon.StatKeys))
	for _, e := range entries {
		key := pokemon.StatKey(e.Stat.Name)
		if !key.Valid() {
			continue
		}
		stats[key] = e.BaseStat
	}
	return stats
}

func mapAbilities(entries []AbilityEntry) []pokemon.Ability {
	abilities := make([]pokemon.Ability, 0, len(entries))
	for _, e := range entries {
		if e.Ability.Name == "" {
			continue
		}
		abilities = append(abilities, pokemon.Ability{Name: e.Ability.Name, Hidden: e.IsHidden})
	}
	return abilities
}

// mapMoves collapses duplicates and sorts, since move order carries no meaning.
func mapMoves(entries []MoveEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	moves := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Move.Name
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		moves = append(moves, name)
	}
	sort.Strings(moves)
	return moves
}

func mapSprites(raw *SpritesResponse) map[pokemon.SpriteSlot]string {
	sprites := make(map[pokemon.SpriteSlot]string)
	if raw == nil {
		return sprites
	}
	put := func(slot pokemon.SpriteSlot, ref *string) {
		if ref != nil && *ref != "" {
			sprites[slot] = *ref
		}
	}
	put(pokemon.SpriteFrontDefault, raw.FrontDefault)
	put(pokemon.SpriteFrontShiny, raw.FrontShiny)
	put(pokemon.SpriteBackDefault, raw.BackDefault)
	put(pokemon.SpriteBackShiny, raw.BackShiny)
	if raw.Other != nil {
		if art := raw.Other.OfficialArtwork; art != nil {
			put(pokemon.SpriteArtworkFront, art.FrontDefault)
			put(pokemon.SpriteArtworkShiny, art.FrontShiny)
		}
		if dream := raw.Other.DreamWorld; dream != nil {
			put(pokemon.SpriteDreamWorldFront, dream.FrontDefault)
		}
	}
	return sprites
}

func mapSpeciesRef(raw *NamedResource, entryName string) pokemon.SpeciesRef {
	if raw != nil && raw.Name != "" {
		url := raw.URL
		if url == "" {
			url = providers.SpeciesLocator(raw.Name)
		}
		return pokemon.SpeciesRef{Name: raw.Name, URL: url}
	}
	if entryName == "" {
		return pokemon.SpeciesRef{}
	}
	return pokemon.SpeciesRef{Name: entryName, URL: providers.SpeciesLocator(entryName)}
}

// ResponseFromPokemon renders an entry back into its raw document shape.
func ResponseFromPokemon(p pokemon.Pokemon) PokemonResponse {
	raw := PokemonResponse{
		ID:             p.ID,
		Name:           p.Name,
		Height:         p.Height,
		Weight:         p.Weight,
		BaseExperience: p.BaseExperience,
		Species:        &NamedResource{Name: p.Species.Name, URL: p.Species.URL},
	}
	for i, t := range p.Types {
		raw.Types = append(raw.Types, TypeSlot{Slot: i + 1, Type: NamedResource{Name: t}})
	}
	for _, key := range pokemon.StatKeys {
		if value, ok := p.BaseStats[key]; ok {
			raw.Stats = append(raw.Stats, StatEntry{BaseStat: value, Stat: NamedResource{Name: string(key)}})
		}
	}
	for i, a := range p.Abilities {
		raw.Abilities = append(raw.Abilities, AbilityEntry{
			Ability:  NamedResource{Name: a.Name},
			IsHidden: a.Hidden,
			Slot:     i + 1,
		})
	}
	for _, m := range p.Moves {
		raw.Moves = append(raw.Moves, MoveEntry{Move: NamedResource{Name: m}})
	}

	ref := func(slot pokemon.SpriteSlot) *string {
		if url, ok := p.Sprite(slot); ok {
			return &url
		}
		return nil
	}
	raw.Sprites = &SpritesResponse{
		FrontDefault: ref(pokemon.SpriteFrontDefault),
		FrontShiny:   ref(pokemon.SpriteFrontShiny),
		BackDefault:  ref(pokemon.SpriteBackDefault),
		BackShiny:    ref(pokemon.SpriteBackShiny),
		Other: &OtherSprites{
			OfficialArtwork: &ArtworkSprites{
				FrontDefault: ref(pokemon.SpriteArtworkFront),
				FrontShiny:   ref(pokemon.SpriteArtworkShiny),
			},
			DreamWorld: &DreamWorldSprites{FrontDefault: ref(pokemon.SpriteDreamWorldFront)},
		},
	}
	return raw
}

// NormalizeSpecies converts a raw species document. Empty tags are skipped.
func NormalizeSpecies(raw SpeciesResponse) *pokemon.Species {
	species := &pokemon.Species{
		Name:        raw.Name,
		FlavorTexts: make([]pokemon.FlavorText, 0, len(raw.FlavorTextEntries)),
		EggGroups:   make([]string, 0, len(raw.EggGroups)),
	}
	for _, entry := range raw.FlavorTextEntries {
		species.FlavorTexts = append(species.FlavorTexts, pokemon.FlavorText{
			Text:     entry.FlavorText,
			Language: entry.Language.Name,
			Version:  entry.Version.Name,
		})
	}
	if raw.Habitat != nil {
		species.Habitat = raw.Habitat.Name
	}
	for _, g := range raw.EggGroups {
		if g.Name != "" {
			species.EggGroups = append(species.EggGroups, g.Name)
		}
	}
	if raw.EvolutionChain != nil {
		species.EvolutionChainURL = raw.EvolutionChain.URL
	}
	if raw.Color != nil {
		species.Color = raw.Color.Name
	}
	return species
}

// ChainStep is one stage of the first-branch walk before images are resolved.
type ChainStep struct {
	Species  NamedResource
	MinLevel *int
}

// FirstBranch walks link following only the first evolves_to entry at each
// fork, stopping after maxStages stages. The root never carries a level. A
// level is taken from the first evolution detail of the entry; zero counts as none.
func FirstBranch(link ChainLink, maxStages int) []ChainStep {
	if maxStages <= 0 {
		return nil
	}
	steps := []ChainStep{{Species: link.Species}}
	current := link
	for len(steps) < maxStages && len(current.EvolvesTo) > 0 {
		next := current.EvolvesTo[0]
		steps = append(steps, ChainStep{Species: next.Species, MinLevel: firstMinLevel(next.EvolutionDetails)})
		current = next
	}
	return steps
}

func firstMinLevel(details []EvolutionDetail) *int {
	if len(details) == 0 || details[0].MinLevel == nil || *details[0].MinLevel <= 0 {
		return nil
	}
	level := *details[0].MinLevel
	return &level
}
