package pokedex

import (
	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/theme"
)

// Project maps a remote record to its view model. It never reorders.
func Project(p *models.Pokemon) models.PokemonView {
	v := models.PokemonView{
		Name:        p.Name,
		DisplayName: theme.CapitalizeFirst(p.Name),
		FrontImage:  p.Sprites.FrontDefault,
		BackImage:   p.Sprites.BackDefault,
		Height:      p.Height,
		Weight:      p.Weight,
		Types:       make([]models.TypeBadge, 0, len(p.Types)),
		Stats:       make([]models.StatRow, 0, len(p.Stats)),
		Abilities:   make([]string, 0, len(p.Abilities)),
		AccentColor: theme.FallbackColor,
	}

	for _, t := range p.Types {
		v.Types = append(v.Types, models.TypeBadge{
			Name:  t.Type.Name,
			Label: theme.CapitalizeFirst(t.Type.Name),
			Color: theme.TypeColor(t.Type.Name),
		})
	}
	if len(v.Types) > 0 {
		v.AccentColor = v.Types[0].Color
	}
	v.CardColor = theme.WithAlpha(v.AccentColor, theme.CardAlpha)

	for _, s := range p.Stats {
		v.Stats = append(v.Stats, models.StatRow{
			Name:    s.Stat.Name,
			Label:   theme.FormatStatName(s.Stat.Name),
			Value:   s.BaseStat,
			Percent: theme.StatPercent(s.BaseStat),
		})
	}

	for _, a := range p.Abilities {
		v.Abilities = append(v.Abilities, theme.FormatAbility(a.Ability.Name))
	}

	return v
}

// ProjectDetails themes the view by the first type. A record without
// types cannot be themed and is rejected with ErrNoTypes.
func ProjectDetails(p *models.Pokemon) (*models.DetailsView, error) {
	if len(p.Types) == 0 {
		return nil, ErrNoTypes
	}
	primary := theme.TypeColor(p.Types[0].Type.Name)
	return &models.DetailsView{
		PokemonView:     Project(p),
		PrimaryColor:    primary,
		BackgroundColor: theme.WithAlpha(primary, theme.BackgroundAlpha),
	}, nil
}
