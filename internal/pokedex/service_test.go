package pokedex

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/pokeapi"
	"github.com/meur/pokedex/internal/pokeapi/pokeapitest"
)

func newTestService(t *testing.T, srv *pokeapitest.Server, opts Options) *Service {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	client := pokeapi.New(srv.URL)
	return NewService(client, client, opts)
}

func TestListEndToEndReverseArrival(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add(
		pokeapitest.Pokemon("bulbasaur", "grass", "poison"),
		pokeapitest.Pokemon("charmander", "fire"),
	)
	srv.RespondAfter("bulbasaur", "charmander")
	svc := newTestService(t, srv, Options{})

	views, err := svc.List(context.Background(), 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 || views[0].Name != "bulbasaur" || views[1].Name != "charmander" {
		t.Fatalf("unexpected views %+v", views)
	}
}

func TestFetchIndexRejectsInvalidPageSize(t *testing.T) {
	srv := pokeapitest.New(t)
	svc := newTestService(t, srv, Options{})

	_, err := svc.FetchIndex(context.Background(), 0)
	var indexErr *IndexFetchError
	if !errors.As(err, &indexErr) || !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected IndexFetchError wrapping ErrInvalidPageSize, got %v", err)
	}
	if srv.Requests() != 0 {
		t.Fatalf("expected no requests, got %d", srv.Requests())
	}
}

func TestNewServiceDefaults(t *testing.T) {
	srv := pokeapitest.New(t)
	svc := newTestService(t, srv, Options{PageSize: -3})
	if svc.PageSize() != DefaultPageSize {
		t.Fatalf("expected default page size, got %d", svc.PageSize())
	}
}

func TestLoadListLoaded(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add(
		pokeapitest.Pokemon("bulbasaur", "grass"),
		pokeapitest.Pokemon("ivysaur", "grass"),
		pokeapitest.Pokemon("venusaur", "grass"),
	)
	svc := newTestService(t, srv, Options{PageSize: 2})

	screen := svc.LoadList(context.Background(), 0)
	if screen.Status != models.StatusLoaded {
		t.Fatalf("expected loaded, got %s", screen.Status)
	}
	if _, err := uuid.Parse(screen.LoadID); err != nil {
		t.Fatalf("expected uuid load id, got %q", screen.LoadID)
	}
	if len(screen.Pokemon) != 2 {
		t.Fatalf("expected configured page size to apply, got %d", len(screen.Pokemon))
	}
}

func TestLoadListIndexFailure(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.FailIndex(http.StatusServiceUnavailable)
	svc := newTestService(t, srv, Options{})

	screen := svc.LoadList(context.Background(), 0)
	if screen.Status != models.StatusFailed {
		t.Fatalf("expected failed, got %s", screen.Status)
	}
	if screen.Pokemon == nil || len(screen.Pokemon) != 0 {
		t.Fatalf("expected empty list, got %#v", screen.Pokemon)
	}
}

func TestLoadListAggregationFailure(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add(
		pokeapitest.Pokemon("bulbasaur", "grass"),
		pokeapitest.Pokemon("charmander", "fire"),
	)
	srv.Fail("charmander", http.StatusInternalServerError)
	svc := newTestService(t, srv, Options{})

	_, err := svc.List(context.Background(), 20)
	var aggErr *AggregationError
	if !errors.As(err, &aggErr) || aggErr.Name != "charmander" {
		t.Fatalf("expected AggregationError for charmander, got %v", err)
	}

	screen := svc.LoadList(context.Background(), 20)
	if screen.Status != models.StatusFailed || len(screen.Pokemon) != 0 {
		t.Fatalf("expected failed empty screen, got %+v", screen)
	}
}

func TestLoadDetailsLoaded(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add(pokeapitest.Pokemon("squirtle", "water"))
	svc := newTestService(t, srv, Options{})

	screen := svc.LoadDetails(context.Background(), "squirtle")
	if screen.Status != models.StatusLoaded || screen.Details == nil {
		t.Fatalf("expected loaded details, got %+v", screen)
	}
	if screen.Details.PrimaryColor != "#6390F0" {
		t.Fatalf("unexpected primary color %q", screen.Details.PrimaryColor)
	}
	if screen.Details.Abilities[0] != "Overgrow" || screen.Details.Stats[0].Label != "HP" {
		t.Fatalf("unexpected details %+v", screen.Details)
	}
}

func TestLoadDetailsNotFound(t *testing.T) {
	srv := pokeapitest.New(t)
	svc := newTestService(t, srv, Options{})

	screen := svc.LoadDetails(context.Background(), "agumon")
	if screen.Status != models.StatusNotFound || screen.Details != nil {
		t.Fatalf("expected not_found, got %+v", screen)
	}
}

func TestLoadDetailsEmptyName(t *testing.T) {
	srv := pokeapitest.New(t)
	svc := newTestService(t, srv, Options{})

	screen := svc.LoadDetails(context.Background(), "  ")
	if screen.Status != models.StatusNotFound {
		t.Fatalf("expected not_found, got %s", screen.Status)
	}
	if srv.Requests() != 0 {
		t.Fatalf("expected no requests, got %d", srv.Requests())
	}
}

func TestLoadDetailsFailures(t *testing.T) {
	cases := map[string]func(*pokeapitest.Server){
		"server error": func(s *pokeapitest.Server) {
			s.Add(pokeapitest.Pokemon("eevee", "normal"))
			s.Fail("eevee", http.StatusBadGateway)
		},
		"malformed": func(s *pokeapitest.Server) {
			s.Raw("eevee", `{"name":`)
		},
		"no types": func(s *pokeapitest.Server) {
			s.Add(pokeapitest.Pokemon("eevee"))
		},
	}
	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			srv := pokeapitest.New(t)
			setup(srv)
			svc := newTestService(t, srv, Options{})

			screen := svc.LoadDetails(context.Background(), "eevee")
			if screen.Status != models.StatusFailed {
				t.Fatalf("expected failed, got %s", screen.Status)
			}
		})
	}
}

func TestFetchAndProjectNoTypesError(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add(pokeapitest.Pokemon("eevee"))
	svc := newTestService(t, srv, Options{})

	_, err := svc.FetchAndProject(context.Background(), "eevee")
	var detailErr *DetailFetchError
	if !errors.As(err, &detailErr) || !errors.Is(err, ErrNoTypes) {
		t.Fatalf("expected DetailFetchError wrapping ErrNoTypes, got %v", err)
	}
	if IsNotFound(err) {
		t.Fatal("empty types must not read as not found")
	}
}

func TestStatusTerminal(t *testing.T) {
	if models.StatusLoading.Terminal() {
		t.Fatal("loading is not terminal")
	}
	for _, s := range []models.Status{models.StatusLoaded, models.StatusFailed, models.StatusNotFound} {
		if !s.Terminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
}
