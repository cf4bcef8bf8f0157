package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/meur/pokedex/internal/models"
)

// handleGetPokemonList returns the list screen
func (s *Server) handleGetPokemonList(w http.ResponseWriter, r *http.Request) {
	pageSize := s.dex.PageSize()
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		pageSize = n
	}

	screen := s.dex.LoadList(r.Context(), pageSize)
	respondJSON(w, statusCode(screen.Status), screen)
}

// handleGetPokemon returns the details screen for one pokemon
func (s *Server) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	screen := s.dex.LoadDetails(r.Context(), name)
	respondJSON(w, statusCode(screen.Status), screen)
}

func statusCode(status models.Status) int {
	switch status {
	case models.StatusLoaded:
		return http.StatusOK
	case models.StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
