package pokeapitest

import "github.com/meur/pokedex/internal/models"

// Pokemon builds a record with the six canonical stats and two abilities
func Pokemon(name string, types ...string) models.Pokemon {
	p := models.Pokemon{
		Name:   name,
		Height: 7,
		Weight: 69,
		Sprites: models.Sprites{
			FrontDefault: "https://img.example/" + name + "/front.png",
			BackDefault:  "https://img.example/" + name + "/back.png",
		},
	}
	for i, t := range types {
		p.Types = append(p.Types, models.TypeSlot{Slot: i + 1, Type: models.NamedRef{Name: t}})
	}
	stats := []struct {
		name  string
		value int
	}{
		{"hp", 45},
		{"attack", 49},
		{"defense", 49},
		{"special-attack", 65},
		{"special-defense", 65},
		{"speed", 45},
	}
	for _, s := range stats {
		p.Stats = append(p.Stats, models.StatEntry{BaseStat: s.value, Stat: models.NamedRef{Name: s.name}})
	}
	p.Abilities = []models.AbilitySlot{
		{Slot: 1, Ability: models.NamedRef{Name: "overgrow"}},
		{Slot: 3, IsHidden: true, Ability: models.NamedRef{Name: "chlorophyll"}},
	}
	return p
}
