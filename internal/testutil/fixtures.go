package testutil

import (
	"strconv"

	"pokedex-service/internal/domain/pokemon"
)

// SamplePokemon returns a minimal normalized entry with the provided id and name.
func SamplePokemon(id int, name string) pokemon.Pokemon {
	return pokemon.Pokemon{
		ID:        id,
		Name:      name,
		Height:    4,
		Weight:    60,
		Types:     []string{"normal"},
		BaseStats: map[pokemon.StatKey]int{pokemon.StatHP: 35},
		Abilities: []pokemon.Ability{{Name: "run-away"}},
		Moves:     []string{"tackle"},
		Sprites:   map[pokemon.SpriteSlot]string{},
		Species:   pokemon.SpeciesRef{Name: name, URL: "pokemon-species/" + strconv.Itoa(id)},
	}
}
