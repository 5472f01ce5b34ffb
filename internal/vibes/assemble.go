// Package vibes runs a mood submission through the safety gate, the
// interpreter and the catalog, and assembles the response a user sees.
package vibes

import (
	"net/url"
	"strings"

	"github.com/justestif/go-mood-playlists/internal/mood"
	"github.com/justestif/go-mood-playlists/internal/safety"
	"github.com/justestif/go-mood-playlists/internal/spotify"
)

const (
	// MaxPlaylists caps the playlists in one response.
	MaxPlaylists = 10

	// DefaultPlaylistDescription replaces a missing playlist description.
	DefaultPlaylistDescription = "Perfect for your mood"
)

// Response is the payload returned for a mood submission.
type Response struct {
	VibeTitle           string             `json:"vibeTitle"`
	MotivationalMessage string             `json:"motivationalMessage"`
	Playlists           []spotify.Playlist `json:"playlists"`
	CanRequestMore      bool               `json:"canRequestMore"`
}

// Assemble is the last safety pass before anything reaches a user. Text is
// sanitized and classified again, playlists are re-filtered and capped at
// MaxPlaylists, and an empty playlist list is replaced by the fallback set.
// Assembling an already assembled response returns it unchanged.
func Assemble(interp mood.Interpretation, playlists []spotify.Playlist, canRequestMore bool) Response {
	resp := Response{
		VibeTitle:           cleanText(interp.VibeTitle, mood.MaxVibeTitleLength, mood.DefaultVibeTitle),
		MotivationalMessage: cleanText(interp.MotivationalMessage, mood.MaxMessageLength, mood.DefaultMessage),
		CanRequestMore:      canRequestMore,
	}

	for _, p := range playlists {
		if len(resp.Playlists) == MaxPlaylists {
			break
		}
		if clean, ok := cleanPlaylist(p); ok {
			resp.Playlists = append(resp.Playlists, clean)
		}
	}

	if len(resp.Playlists) == 0 {
		resp.Playlists = spotify.Fallback(spotify.DefaultLimit)
	}

	return resp
}

// cleanText returns text sanitized, or fallback when the text is blank,
// loses everything printable, is too long, or fails the classifier.
func cleanText(text string, max int, fallback string) string {
	if strings.TrimSpace(text) == "" || !safety.IsAppropriate(text) {
		return fallback
	}

	clean := safety.Sanitize(text)
	if lostEverything(text, clean) || len(clean) > max || !safety.IsAppropriate(clean) {
		return fallback
	}
	return clean
}

func cleanPlaylist(p spotify.Playlist) (spotify.Playlist, bool) {
	if !safety.IsAppropriatePlaylist(p.Name, p.Description) {
		return spotify.Playlist{}, false
	}

	name := safety.Sanitize(p.Name)
	if lostEverything(p.Name, name) {
		return spotify.Playlist{}, false
	}

	desc := DefaultPlaylistDescription
	if strings.TrimSpace(p.Description) != "" {
		if clean := safety.Sanitize(p.Description); !lostEverything(p.Description, clean) {
			desc = clean
		}
	}

	if !safety.IsAppropriatePlaylist(name, desc) {
		return spotify.Playlist{}, false
	}

	return spotify.Playlist{
		Name:        name,
		URL:         webURL(p.URL, spotify.CatalogURL),
		ImageURL:    webURL(p.ImageURL, spotify.PlaceholderImage),
		Description: desc,
	}, true
}

// lostEverything reports whether sanitizing raw left only the placeholder.
func lostEverything(raw, clean string) bool {
	return clean == safety.EmptyFallback && strings.TrimSpace(raw) != safety.EmptyFallback
}

// webURL returns raw when it is an absolute http(s) URL made of printable
// ASCII, and fallback otherwise.
func webURL(raw, fallback string) string {
	if raw == "" || safety.Sanitize(raw) != raw {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return fallback
	}
	return raw
}
