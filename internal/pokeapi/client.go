// Package pokeapi is a small read-only client for the PokeAPI REST endpoints.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meur/pokedex/internal/models"
)

// DefaultBaseURL is the public PokeAPI v2 root
const DefaultBaseURL = "https://pokeapi.co/api/v2"

const defaultTimeout = 10 * time.Second

const userAgent = "pokedex/1.0"

// Client fetches index pages and pokemon records
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a client rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// IndexURL builds the URL of the first index page
func (c *Client) IndexURL(limit int) string {
	return c.baseURL + "/pokemon?limit=" + strconv.Itoa(limit)
}

// PokemonURL builds the per-item URL for a bare name
func (c *Client) PokemonURL(name string) string {
	return c.baseURL + "/pokemon/" + url.PathEscape(name)
}

// FetchIndex returns up to limit entries from the first index page, in API order
func (c *Client) FetchIndex(ctx context.Context, limit int) ([]models.IndexEntry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("pokeapi: limit must be positive, got %d", limit)
	}
	u := c.IndexURL(limit)

	var page models.IndexPage
	if err := c.getJSON(ctx, u, &page); err != nil {
		return nil, err
	}
	if err := validateIndex(u, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

// FetchPokemon fetches the record at a per-item URL
func (c *Client) FetchPokemon(ctx context.Context, itemURL string) (*models.Pokemon, error) {
	var p models.Pokemon
	if err := c.getJSON(ctx, itemURL, &p); err != nil {
		return nil, err
	}
	if err := validatePokemon(itemURL, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FetchPokemonByName fetches a record by its bare name
func (c *Client) FetchPokemonByName(ctx context.Context, name string) (*models.Pokemon, error) {
	return c.FetchPokemon(ctx, c.PokemonURL(name))
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("pokeapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pokeapi: GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: u, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &ParseError{URL: u, Err: err}
	}
	return nil
}
