package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zmb3/spotify/v2"
)

func TestNew_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		secret string
	}{
		{name: "both empty"},
		{name: "missing secret", id: "client-id"},
		{name: "missing id", secret: "client-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.id, tt.secret)
			if !errors.Is(err, ErrMissingCredentials) {
				t.Errorf("New() error = %v, want %v", err, ErrMissingCredentials)
			}
			if a != nil {
				t.Error("New() returned non-nil Authenticator with error")
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	var gotUser, gotPass, gotGrant, gotBearer string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		r.ParseForm()
		gotGrant = r.PostForm.Get("grant_type")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "app-token", "token_type": "Bearer", "expires_in": 3600}`))
	})
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		gotBearer = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"playlists": {"items": [], "limit": 50, "offset": 0, "total": 0}}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	a, err := New("client-id", "client-secret",
		WithTokenURL(server.URL+"/api/token"),
		WithAPIURL(server.URL+"/v1/"),
		WithHTTPClient(server.Client()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	api, err := a.Authenticate(context.Background())
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}

	if gotUser != "client-id" || gotPass != "client-secret" {
		t.Errorf("basic auth = %q/%q, want client-id/client-secret", gotUser, gotPass)
	}
	if gotGrant != "client_credentials" {
		t.Errorf("grant_type = %q, want %q", gotGrant, "client_credentials")
	}

	if _, err := api.Search(context.Background(), "calm", spotify.SearchTypePlaylist); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotBearer != "Bearer app-token" {
		t.Errorf("Authorization = %q, want %q", gotBearer, "Bearer app-token")
	}
}

func TestAuthenticate_TokenFailure(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{
			name:    "invalid client",
			status:  http.StatusBadRequest,
			body:    `{"error": "invalid_client", "error_description": "Invalid client secret"}`,
			wantErr: true,
		},
		{
			name:    "missing access token",
			status:  http.StatusOK,
			body:    `{"token_type": "Bearer", "expires_in": 3600}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			a, err := New("client-id", "client-secret", WithTokenURL(server.URL))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			api, err := a.Authenticate(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && api != nil {
				t.Error("Authenticate() returned client with error")
			}
		})
	}
}
