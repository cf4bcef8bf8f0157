package theme

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxStat is the base stat that fills a whole bar
const MaxStat = 255

var statLabels = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Atk",
	"special-defense": "Sp. Def",
	"speed":           "Speed",
}

// CapitalizeFirst upper-cases the first letter and leaves the rest alone
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FormatStatName maps the six canonical stats to short labels.
// Anything else is only capitalized, hyphens included.
func FormatStatName(name string) string {
	if label, ok := statLabels[name]; ok {
		return label
	}
	return CapitalizeFirst(name)
}

// FormatAbility replaces the first hyphen with a space and capitalizes.
// "multi-part-name" becomes "Multi part-name".
func FormatAbility(name string) string {
	return CapitalizeFirst(strings.Replace(name, "-", " ", 1))
}

// StatPercent returns value/255 clamped to [0, 1]
func StatPercent(value int) float64 {
	if value <= 0 {
		return 0
	}
	if value >= MaxStat {
		return 1
	}
	return float64(value) / MaxStat
}
