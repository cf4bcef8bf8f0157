package pokeapi

import (
	"fmt"

	"github.com/meur/pokedex/internal/models"
)

func validateIndex(url string, page *models.IndexPage) error {
	if page.Results == nil {
		return &ParseError{URL: url, Field: "results", Err: errMissing}
	}
	for i, e := range page.Results {
		if e.Name == "" {
			return &ParseError{URL: url, Field: fmt.Sprintf("results[%d].name", i), Err: errMissing}
		}
		if e.URL == "" {
			return &ParseError{URL: url, Field: fmt.Sprintf("results[%d].url", i), Err: errMissing}
		}
	}
	return nil
}

func validatePokemon(url string, p *models.Pokemon) error {
	if p.Name == "" {
		return &ParseError{URL: url, Field: "name", Err: errMissing}
	}
	for i, t := range p.Types {
		if t.Type.Name == "" {
			return &ParseError{URL: url, Field: fmt.Sprintf("types[%d].type.name", i), Err: errMissing}
		}
	}
	for i, s := range p.Stats {
		if s.Stat.Name == "" {
			return &ParseError{URL: url, Field: fmt.Sprintf("stats[%d].stat.name", i), Err: errMissing}
		}
		if s.BaseStat < 0 {
			return &ParseError{URL: url, Field: fmt.Sprintf("stats[%d].base_stat", i), Err: fmt.Errorf("negative value %d", s.BaseStat)}
		}
	}
	for i, a := range p.Abilities {
		if a.Ability.Name == "" {
			return &ParseError{URL: url, Field: fmt.Sprintf("abilities[%d].ability.name", i), Err: errMissing}
		}
	}
	return nil
}
