package pokedex

import (
	"context"

	"github.com/meur/pokedex/internal/models"
	"golang.org/x/sync/errgroup"
)

// RecordFetcher resolves full pokemon records
type RecordFetcher interface {
	FetchPokemon(ctx context.Context, itemURL string) (*models.Pokemon, error)
	FetchPokemonByName(ctx context.Context, name string) (*models.Pokemon, error)
}

// Aggregator resolves index entries concurrently and projects them in input order
type Aggregator struct {
	records     RecordFetcher
	concurrency int
}

// NewAggregator creates an aggregator. A concurrency of zero or less
// launches every request at once.
func NewAggregator(records RecordFetcher, concurrency int) *Aggregator {
	return &Aggregator{records: records, concurrency: concurrency}
}

// Aggregate fetches every entry and returns views where out[i] matches entries[i].
// The first failing fetch cancels the rest and no partial result is returned.
func (a *Aggregator) Aggregate(ctx context.Context, entries []models.IndexEntry) ([]models.PokemonView, error) {
	out := make([]models.PokemonView, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}

	for i, entry := range entries {
		g.Go(func() error {
			p, err := a.records.FetchPokemon(gctx, entry.URL)
			if err != nil {
				return &AggregationError{Index: i, Name: entry.Name, Err: err}
			}
			// Each goroutine owns its slot
			out[i] = Project(p)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
