package models

// Status is the state of a screen load
type Status string

const (
	StatusLoading  Status = "loading"
	StatusLoaded   Status = "loaded"
	StatusFailed   Status = "failed"
	StatusNotFound Status = "not_found"
)

// Terminal reports whether the load has finished
func (s Status) Terminal() bool {
	return s == StatusLoaded || s == StatusFailed || s == StatusNotFound
}

// ListScreen is the state of one list screen load
type ListScreen struct {
	LoadID  string        `json:"load_id"`
	Status  Status        `json:"status"`
	Pokemon []PokemonView `json:"pokemon"`
}

// DetailsScreen is the state of one details screen load
type DetailsScreen struct {
	LoadID  string       `json:"load_id"`
	Status  Status       `json:"status"`
	Name    string       `json:"name"`
	Details *DetailsView `json:"details,omitempty"` // nil unless loaded
}
