package models

// PokemonView is the render-ready form of a pokemon.
// Types, stats and abilities keep the order of the source record.
type PokemonView struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	FrontImage  string      `json:"front_image"`
	BackImage   string      `json:"back_image"`
	Height      int         `json:"height"`
	Weight      int         `json:"weight"`
	Types       []TypeBadge `json:"types"`
	Stats       []StatRow   `json:"stats"`
	Abilities   []string    `json:"abilities"`
	AccentColor string      `json:"accent_color"`
	CardColor   string      `json:"card_color"`
}

// TypeBadge is a single colored type badge
type TypeBadge struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// StatRow is one base stat bar
type StatRow struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"` // 0..1
}

// DetailsView is a PokemonView themed by its primary type
type DetailsView struct {
	PokemonView
	PrimaryColor    string `json:"primary_color"`
	BackgroundColor string `json:"background_color"`
}

// Chrome describes the app shell shared by every screen
type Chrome struct {
	HeaderColor       string            `json:"header_color"`
	HeaderTint        string            `json:"header_tint"`
	ContentBackground string            `json:"content_background"`
	ListTitle         string            `json:"list_title"`
	DetailsTitle      string            `json:"details_title"`
	LoadingText       string            `json:"loading_text"`
	NotFoundText      string            `json:"not_found_text"`
	TypeColors        map[string]string `json:"type_colors"`
	FallbackColor     string            `json:"fallback_color"`
}
