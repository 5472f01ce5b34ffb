// Command mood-playlists serves the mood journaling API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/justestif/go-mood-playlists/internal/auth"
	"github.com/justestif/go-mood-playlists/internal/config"
	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/interpret"
	"github.com/justestif/go-mood-playlists/internal/spotify"
	"github.com/justestif/go-mood-playlists/internal/vibes"
	"github.com/justestif/go-mood-playlists/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	interpreter, err := interpret.New(ctx, cfg.Gemini)
	if err != nil {
		return fmt.Errorf("creating interpretation client: %w", err)
	}
	if !cfg.Gemini.Enabled() {
		log.Println("GEMINI_API_KEY not set, using keyword interpretation")
	}

	var authorizer spotify.Authorizer
	if cfg.Spotify.Enabled() {
		a, err := auth.New(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret,
			auth.WithTokenURL(cfg.Spotify.TokenURL),
			auth.WithAPIURL(cfg.Spotify.APIURL),
		)
		if err != nil {
			return fmt.Errorf("creating spotify authenticator: %w", err)
		}
		authorizer = a
	} else {
		log.Println("Spotify credentials not set, using fallback playlists")
	}
	catalog := spotify.New(authorizer, cfg.Spotify)

	serverCfg := web.ServerConfig{
		Addr:      cfg.Server.Addr,
		Processor: vibes.NewService(interpreter, catalog),
	}

	if cfg.Database.Enabled() {
		database, err := db.New(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		serverCfg.Reports = database.Reports()
	} else {
		log.Println("DATABASE_URL not set, saved reports are disabled")
	}

	server, err := web.NewServer(serverCfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run(ctx)
}
