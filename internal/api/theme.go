package api

import (
	"net/http"

	"github.com/meur/pokedex/internal/theme"
)

// handleGetTheme returns the app chrome and the type color table
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, theme.DefaultChrome())
}
