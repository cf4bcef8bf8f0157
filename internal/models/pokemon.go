package models

// IndexEntry is a reference to one pokemon as returned by the index endpoint
type IndexEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// IndexPage is the payload of the index endpoint
type IndexPage struct {
	Count   int          `json:"count"`
	Next    *string      `json:"next"`
	Results []IndexEntry `json:"results"`
}

// Pokemon is the full remote record for one pokemon
type Pokemon struct {
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Sprites   Sprites       `json:"sprites"`
	Types     []TypeSlot    `json:"types"`
	Stats     []StatEntry   `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
}

// Sprites holds the image URLs. The API sends null for missing sprites,
// which decodes to an empty string.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	BackDefault  string `json:"back_default"`
}

// NamedRef is the {name, url} shape the API uses for nested resources
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type TypeSlot struct {
	Slot int      `json:"slot"`
	Type NamedRef `json:"type"`
}

type StatEntry struct {
	BaseStat int      `json:"base_stat"`
	Effort   int      `json:"effort"`
	Stat     NamedRef `json:"stat"`
}

type AbilitySlot struct {
	IsHidden bool     `json:"is_hidden"`
	Slot     int      `json:"slot"`
	Ability  NamedRef `json:"ability"`
}

// TypeNames returns the type names in source order
func (p *Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}
