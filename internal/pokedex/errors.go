package pokedex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPageSize is returned for a page size below 1
	ErrInvalidPageSize = errors.New("page size must be positive")
	// ErrNoTypes is returned when a details record has no type to theme by
	ErrNoTypes = errors.New("pokemon has no types")
	// ErrEmptyName is returned when a details lookup has no name
	ErrEmptyName = errors.New("pokemon name is required")
)

// IndexFetchError wraps a failed index request
type IndexFetchError struct {
	Err error
}

func (e *IndexFetchError) Error() string {
	return fmt.Sprintf("fetch index: %v", e.Err)
}

func (e *IndexFetchError) Unwrap() error {
	return e.Err
}

// AggregationError is the first per-item failure of an aggregation
type AggregationError struct {
	Index int
	Name  string
	Err   error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregate: entry %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

// DetailFetchError wraps a failed details load
type DetailFetchError struct {
	Name string
	Err  error
}

func (e *DetailFetchError) Error() string {
	return fmt.Sprintf("fetch details %q: %v", e.Name, e.Err)
}

func (e *DetailFetchError) Unwrap() error {
	return e.Err
}
