// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/interpret"
	"github.com/justestif/go-mood-playlists/internal/spotify"
)

// Config aggregates the configuration of every collaborator.
type Config struct {
	Server   ServerConfig
	Gemini   interpret.Config
	Spotify  spotify.Config
	Database db.Config
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// Load reads configuration from environment variables. Missing credentials
// are not an error; each section reports whether it is usable through its
// Enabled method.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	gemini, err := loadGeminiConfig()
	if err != nil {
		return nil, err
	}

	sp, err := loadSpotifyConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Gemini:   gemini,
		Spotify:  sp,
		Database: db.Config{URL: env("DATABASE_URL")},
	}, nil
}

// loadServerConfig resolves the listen address from ADDR or PORT.
func loadServerConfig() (ServerConfig, error) {
	if addr := env("ADDR"); addr != "" {
		return ServerConfig{Addr: addr}, nil
	}

	port := env("PORT")
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as well as a bare port.
		return ServerConfig{Addr: port}, nil
	}

	if strings.ContainsAny(port, " \t") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

func loadGeminiConfig() (interpret.Config, error) {
	timeout, err := duration("GEMINI_TIMEOUT", interpret.DefaultTimeout)
	if err != nil {
		return interpret.Config{}, err
	}

	return interpret.Config{
		APIKey:  env("GEMINI_API_KEY"),
		Model:   envOr("GEMINI_MODEL", interpret.DefaultModel),
		BaseURL: env("GEMINI_BASE_URL"),
		Timeout: timeout,
	}, nil
}

func loadSpotifyConfig() (spotify.Config, error) {
	timeout, err := duration("SPOTIFY_TIMEOUT", spotify.DefaultTimeout)
	if err != nil {
		return spotify.Config{}, err
	}

	return spotify.Config{
		ClientID:     firstEnv("SPOTIFY_CLIENT_ID", "SPOTIFY_ID"),
		ClientSecret: firstEnv("SPOTIFY_CLIENT_SECRET", "SPOTIFY_SECRET"),
		TokenURL:     env("SPOTIFY_TOKEN_URL"),
		APIURL:       env("SPOTIFY_API_URL"),
		Market:       envOr("SPOTIFY_MARKET", spotify.DefaultMarket),
		Timeout:      timeout,
	}, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envOr(key, fallback string) string {
	if v := env(key); v != "" {
		return v
	}
	return fallback
}

// firstEnv returns the first non-empty variable among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := env(k); v != "" {
			return v
		}
	}
	return ""
}

// duration parses a Go duration such as "8s" or "1500ms".
func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := env(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, v)
	}
	return d, nil
}
