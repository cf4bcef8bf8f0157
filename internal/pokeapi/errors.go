package pokeapi

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the API answers 404
var ErrNotFound = errors.New("pokeapi: not found")

// StatusError is a non-2xx response
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi: GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// Is lets a 404 StatusError match ErrNotFound
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}

// ParseError is a payload that could not be decoded or failed validation
type ParseError struct {
	URL   string
	Field string // empty when the body was not valid JSON
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("pokeapi: GET %s: invalid field %q: %v", e.URL, e.Field, e.Err)
	}
	return fmt.Sprintf("pokeapi: GET %s: malformed payload: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errMissing = errors.New("missing")
