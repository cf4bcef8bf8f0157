// Package pokedex fetches pokemon from the index and per-item endpoints and
// projects them into the list and details screens.
package pokedex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/pokeapi"
)

// DefaultPageSize is the number of entries the list screen asks for
const DefaultPageSize = 20

// IndexFetcher lists index entries
type IndexFetcher interface {
	FetchIndex(ctx context.Context, limit int) ([]models.IndexEntry, error)
}

// Options configures a Service
type Options struct {
	PageSize         int
	FetchConcurrency int
	Logger           *slog.Logger
}

// Service runs the list and details pipelines
type Service struct {
	index      IndexFetcher
	records    RecordFetcher
	aggregator *Aggregator
	pageSize   int
	logger     *slog.Logger
}

// NewService wires the fetchers into a Service
func NewService(index IndexFetcher, records RecordFetcher, opts Options) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		index:      index,
		records:    records,
		aggregator: NewAggregator(records, opts.FetchConcurrency),
		pageSize:   opts.PageSize,
		logger:     opts.Logger,
	}
}

// PageSize is the configured default page size
func (s *Service) PageSize() int {
	return s.pageSize
}

// FetchIndex requests up to pageSize entries from the index endpoint
func (s *Service) FetchIndex(ctx context.Context, pageSize int) ([]models.IndexEntry, error) {
	if pageSize <= 0 {
		return nil, &IndexFetchError{Err: fmt.Errorf("%w: got %d", ErrInvalidPageSize, pageSize)}
	}
	entries, err := s.index.FetchIndex(ctx, pageSize)
	if err != nil {
		return nil, &IndexFetchError{Err: err}
	}
	return entries, nil
}

// List fetches the index and aggregates every entry
func (s *Service) List(ctx context.Context, pageSize int) ([]models.PokemonView, error) {
	entries, err := s.FetchIndex(ctx, pageSize)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Aggregate(ctx, entries)
}

// FetchAndProject loads one pokemon by name for the details screen
func (s *Service) FetchAndProject(ctx context.Context, name string) (*models.DetailsView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &DetailFetchError{Name: name, Err: ErrEmptyName}
	}
	p, err := s.records.FetchPokemonByName(ctx, name)
	if err != nil {
		return nil, &DetailFetchError{Name: name, Err: err}
	}
	details, err := ProjectDetails(p)
	if err != nil {
		return nil, &DetailFetchError{Name: name, Err: err}
	}
	return details, nil
}

// LoadList runs one list screen load. A pageSize of zero uses the default.
// Failures are logged and reported as StatusFailed with an empty list.
func (s *Service) LoadList(ctx context.Context, pageSize int) models.ListScreen {
	if pageSize == 0 {
		pageSize = s.pageSize
	}
	screen := models.ListScreen{
		LoadID:  uuid.NewString(),
		Status:  models.StatusLoading,
		Pokemon: []models.PokemonView{},
	}
	log := s.logger.With("load_id", screen.LoadID, "page_size", pageSize)

	views, err := s.List(ctx, pageSize)
	if err != nil {
		log.Error("list load failed", "error", err)
		screen.Status = models.StatusFailed
		return screen
	}

	screen.Status = models.StatusLoaded
	screen.Pokemon = views
	log.Info("list loaded", "count", len(views))
	return screen
}

// LoadDetails runs one details screen load. A missing pokemon is
// reported as StatusNotFound, every other failure as StatusFailed.
func (s *Service) LoadDetails(ctx context.Context, name string) models.DetailsScreen {
	screen := models.DetailsScreen{
		LoadID: uuid.NewString(),
		Status: models.StatusLoading,
		Name:   name,
	}
	log := s.logger.With("load_id", screen.LoadID, "name", name)

	details, err := s.FetchAndProject(ctx, name)
	switch {
	case err == nil:
		screen.Status = models.StatusLoaded
		screen.Details = details
		log.Info("details loaded")
	case IsNotFound(err):
		screen.Status = models.StatusNotFound
		log.Warn("pokemon not found", "error", err)
	default:
		screen.Status = models.StatusFailed
		log.Error("details load failed", "error", err)
	}
	return screen
}

// IsNotFound reports whether err means the pokemon does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, pokeapi.ErrNotFound) || errors.Is(err, ErrEmptyName)
}
