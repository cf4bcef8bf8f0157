// Package pokeapitest provides an in-process fake of the PokeAPI endpoints for tests.
package pokeapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meur/pokedex/internal/models"
)

// Server serves /pokemon and /pokemon/{name} from an in-memory set of records
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	order       []string
	records     map[string]models.Pokemon
	raw         map[string]string
	failures    map[string]int
	delays      map[string]time.Duration
	waitFor     map[string]string
	served      map[string]chan struct{}
	indexStatus int
	indexRaw    string

	requests    atomic.Int64
	inFlight    atomic.Int64
	maxInFlight atomic.Int64
}

// New starts a fake server that is closed when the test ends
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		records:  map[string]models.Pokemon{},
		raw:      map[string]string{},
		failures: map[string]int{},
		delays:   map[string]time.Duration{},
		waitFor:  map[string]string{},
		served:   map[string]chan struct{}{},
	}
	r := chi.NewRouter()
	r.Get("/pokemon", s.handleIndex)
	r.Get("/pokemon/{name}", s.handlePokemon)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Add registers records in index order
func (s *Server) Add(records ...models.Pokemon) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range records {
		if _, ok := s.records[p.Name]; !ok {
			s.order = append(s.order, p.Name)
			s.served[p.Name] = make(chan struct{})
		}
		s.records[p.Name] = p
	}
}

// Raw makes the per-item endpoint for name answer with body verbatim
func (s *Server) Raw(name, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[name] = body
}

// Fail makes the per-item endpoint for name answer with status
func (s *Server) Fail(name string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[name] = status
}

// Delay holds the response for name for d
func (s *Server) Delay(name string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[name] = d
}

// RespondAfter holds the response for name until other has been served
func (s *Server) RespondAfter(name, other string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitFor[name] = other
}

// FailIndex makes the index endpoint answer with status
func (s *Server) FailIndex(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexStatus = status
}

// RawIndex makes the index endpoint answer with body verbatim
func (s *Server) RawIndex(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indexRaw = body
}

// ItemURL is the per-item URL the index hands out for name
func (s *Server) ItemURL(name string) string {
	return s.URL + "/pokemon/" + name
}

// Requests counts every request received
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

// MaxInFlight is the highest number of concurrent per-item requests seen
func (s *Server) MaxInFlight() int {
	return int(s.maxInFlight.Load())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)

	s.mu.Lock()
	status, raw := s.indexStatus, s.indexRaw
	names := append([]string(nil), s.order...)
	total := len(s.order)
	s.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}
	if raw != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(raw))
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "bad limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	if limit < len(names) {
		names = names[:limit]
	}

	page := models.IndexPage{Count: total, Results: make([]models.IndexEntry, 0, len(names))}
	for _, name := range names {
		page.Results = append(page.Results, models.IndexEntry{Name: name, URL: s.ItemURL(name)})
	}
	writeJSON(w, page)
}

func (s *Server) handlePokemon(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		cur := s.maxInFlight.Load()
		if n <= cur || s.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}

	name := chi.URLParam(r, "name")

	s.mu.Lock()
	p, ok := s.records[name]
	raw, hasRaw := s.raw[name]
	status := s.failures[name]
	delay := s.delays[name]
	done := s.served[name]
	var wait chan struct{}
	if other, ok := s.waitFor[name]; ok {
		wait = s.served[other]
	}
	s.mu.Unlock()

	if done != nil {
		defer closeOnce(done)
	}

	if wait != nil {
		select {
		case <-wait:
		case <-r.Context().Done():
			return
		}
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	switch {
	case status != 0:
		http.Error(w, http.StatusText(status), status)
	case hasRaw:
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(raw))
	case !ok:
		http.Error(w, "Not Found", http.StatusNotFound)
	default:
		writeJSON(w, p)
	}
}

var closeMu sync.Mutex

func closeOnce(ch chan struct{}) {
	closeMu.Lock()
	defer closeMu.Unlock()
	select {
	case <-ch:
	default:
		close(ch)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
