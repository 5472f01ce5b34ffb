// Package spotify searches the Spotify catalog for playlists that match a mood
// query and falls back to a fixed, pre-vetted set when search cannot help.
package spotify

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"
)

const (
	// DefaultLimit is the number of playlists returned for a normal request.
	DefaultLimit = 3

	// DefaultTimeout bounds each token and search call.
	DefaultTimeout = 5 * time.Second

	// DefaultMarket is the catalog market searched when none is configured.
	DefaultMarket = "US"

	// searchPageSize is the number of results requested per search call.
	searchPageSize = 50
)

// Config holds Spotify API configuration. Empty credentials are valid and
// mean every search returns the fallback set.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIURL       string
	Market       string
	Timeout      time.Duration
}

// Enabled reports whether both credentials are present.
func (c Config) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Authorizer hands out an authenticated Spotify API client.
type Authorizer interface {
	Authenticate(ctx context.Context) (*spotify.Client, error)
}

// Client searches the catalog on behalf of one request at a time. It holds no
// token between calls.
type Client struct {
	auth    Authorizer
	market  string
	timeout time.Duration
}

// New creates a catalog Client. A nil Authorizer is valid and makes every
// search return the fallback set.
func New(auth Authorizer, cfg Config) *Client {
	c := &Client{
		auth:    auth,
		market:  cfg.Market,
		timeout: cfg.Timeout,
	}
	if c.market == "" {
		c.market = DefaultMarket
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	return c
}

// Search returns up to n playlists for query, never fewer than one.
//
// Query variants are tried in order and the first one yielding at least
// min(n, 3) usable playlists wins. Missing credentials, token failures and
// exhausted variants all return Fallback(n). A non-positive n means
// DefaultLimit.
func (c *Client) Search(ctx context.Context, query string, n int) (results []Playlist) {
	if n < 1 {
		n = DefaultLimit
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("spotify: recovered from panic: %v", r)
			results = Fallback(n)
		}
	}()

	if c == nil || c.auth == nil {
		return Fallback(n)
	}

	api, err := c.authenticate(ctx)
	if err != nil {
		log.Printf("spotify: authenticating: %v", err)
		return Fallback(n)
	}

	need := min(n, DefaultLimit)
	for _, q := range queryVariants(query) {
		found, err := c.searchOnce(ctx, api, q)
		if err != nil {
			log.Printf("spotify: searching %q: %v", q, err)
			continue
		}

		if len(found) >= need {
			return found[:min(len(found), n)]
		}
	}

	return Fallback(n)
}

func (c *Client) authenticate(ctx context.Context) (*spotify.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.auth.Authenticate(ctx)
}

// searchOnce runs a single playlist search and returns the usable results.
func (c *Client) searchOnce(ctx context.Context, api *spotify.Client, q string) ([]Playlist, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := api.Search(ctx, q, spotify.SearchTypePlaylist,
		spotify.Limit(searchPageSize),
		spotify.Market(c.market),
	)
	if err != nil {
		return nil, err
	}
	if result.Playlists == nil {
		return nil, nil
	}

	var found []Playlist
	for _, item := range result.Playlists.Playlists {
		if p, ok := convertPlaylist(item); ok {
			found = append(found, p)
		}
	}
	return found, nil
}

// queryVariants widens a query step by step: as given, with " indie",
// " acoustic" and " chill" appended, then its first two words. Blank and
// repeated variants are skipped.
func queryVariants(query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	words := strings.Fields(query)
	if len(words) > 2 {
		words = words[:2]
	}

	candidates := []string{
		query,
		query + " indie",
		query + " acoustic",
		query + " chill",
		strings.Join(words, " "),
	}

	seen := make(map[string]bool, len(candidates))
	variants := make([]string, 0, len(candidates))
	for _, v := range candidates {
		if seen[v] {
			continue
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants
}
