// Package theme holds the type colors, app chrome and text formatting
// shared by the list and details screens.
package theme

import "github.com/meur/pokedex/internal/models"

// FallbackColor is used for any type name not in the table
const FallbackColor = "#A8A77A"

// Alpha suffixes appended to a hex color for translucent backgrounds
const (
	CardAlpha       = "30"
	BackgroundAlpha = "20"
)

var typeColors = map[string]string{
	"normal":   "#A8A77A",
	"fire":     "#EE8130",
	"water":    "#6390F0",
	"electric": "#F7D02C",
	"grass":    "#7AC74C",
	"ice":      "#96D9D6",
	"fighting": "#C22E28",
	"poison":   "#A33EA1",
	"ground":   "#E2BF65",
	"flying":   "#A98FF3",
	"psychic":  "#F95587",
	"bug":      "#A6B91A",
	"rock":     "#B6A136",
	"ghost":    "#735797",
	"dragon":   "#6F35FC",
	"dark":     "#705746",
	"steel":    "#B7B7CE",
	"fairy":    "#D685AD",
}

// TypeColor returns the display color for a type name
func TypeColor(typeName string) string {
	if c, ok := typeColors[typeName]; ok {
		return c
	}
	return FallbackColor
}

// IsKnownType reports whether the type has its own color
func IsKnownType(typeName string) bool {
	_, ok := typeColors[typeName]
	return ok
}

// TypeColors returns a copy of the color table
func TypeColors() map[string]string {
	out := make(map[string]string, len(typeColors))
	for k, v := range typeColors {
		out[k] = v
	}
	return out
}

// WithAlpha appends a two digit hex alpha to a #RRGGBB color
func WithAlpha(color, alpha string) string {
	return color + alpha
}

// DefaultChrome returns the app shell colors and titles
func DefaultChrome() models.Chrome {
	return models.Chrome{
		HeaderColor:       "#EE8130",
		HeaderTint:        "#fff",
		ContentBackground: "#f5f5f5",
		ListTitle:         "Pokedex",
		DetailsTitle:      "Pokemon Details",
		LoadingText:       "Loading Pokemon...",
		NotFoundText:      "Pokemon not found",
		TypeColors:        TypeColors(),
		FallbackColor:     FallbackColor,
	}
}
