// Package auth provides app-level Spotify API access using the OAuth2 client
// credentials flow. No user consent is involved and no token is cached: every
// call to Authenticate fetches a fresh token.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultHTTPTimeout = 10 * time.Second

var (
	// ErrMissingCredentials is returned when the client ID or secret is empty.
	ErrMissingCredentials = errors.New("missing Spotify client ID or secret")

	// ErrNoToken is returned when the token endpoint answers without an access token.
	ErrNoToken = errors.New("token response carried no access token")
)

// Authenticator exchanges client credentials for an authenticated Spotify client.
type Authenticator struct {
	config     clientcredentials.Config
	apiURL     string
	httpClient *http.Client
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithTokenURL overrides the Spotify accounts token endpoint.
func WithTokenURL(url string) Option {
	return func(a *Authenticator) {
		if url != "" {
			a.config.TokenURL = url
		}
	}
}

// WithAPIURL overrides the Spotify Web API base URL. It must end in a slash.
func WithAPIURL(url string) Option {
	return func(a *Authenticator) {
		a.apiURL = url
	}
}

// WithHTTPClient sets the HTTP client used for both token and API requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Authenticator) {
		if hc != nil {
			a.httpClient = hc
		}
	}
}

// New creates an Authenticator. Returns ErrMissingCredentials if either
// credential is empty.
func New(clientID, clientSecret string, opts ...Option) (*Authenticator, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	a := &Authenticator{
		config: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyauth.TokenURL,
		},
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Authenticate requests a token and returns a Spotify client that sends it.
func (a *Authenticator) Authenticate(ctx context.Context) (*spotify.Client, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	token, err := a.config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting client credentials token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, ErrNoToken
	}

	var opts []spotify.ClientOption
	if a.apiURL != "" {
		opts = append(opts, spotify.WithBaseURL(a.apiURL))
	}

	return spotify.New(oauth2.NewClient(ctx, oauth2.StaticTokenSource(token)), opts...), nil
}
