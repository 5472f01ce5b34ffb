package spotify

import (
	"fmt"
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/justestif/go-mood-playlists/internal/safety"
)

const (
	// PlaceholderImage is shown for playlists without artwork.
	PlaceholderImage = "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=300&fit=crop"

	// CatalogURL is the Spotify web player root.
	CatalogURL = "https://open.spotify.com/"

	// maxFallback is the size of the fixed fallback set.
	maxFallback = 6
)

// fallbackPlaylists are editorial playlists vetted ahead of time. Their order
// is fixed so that the first three are always the same.
var fallbackPlaylists = [maxFallback]Playlist{
	{
		Name:        "Peaceful Piano",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX4sWSpwq3LiO",
		ImageURL:    "https://images.unsplash.com/photo-1520523839897-bd0b52f945a0?w=300&h=300&fit=crop",
		Description: "Beautiful piano music for reflection and calm",
	},
	{
		Name:        "Indie Folk & Chill",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DWWQRwui0ExPn",
		ImageURL:    "https://images.unsplash.com/photo-1445985543470-41fba5c3144a?w=300&h=300&fit=crop",
		Description: "Gentle indie and folk for thoughtful moments",
	},
	{
		Name:        "Acoustic Comfort",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX1s9knjP51Oa",
		ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=300&fit=crop",
		Description: "Soothing acoustic songs for every feeling",
	},
	{
		Name:        "Ambient Focus",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DWZeKCadgRdKQ",
		ImageURL:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=300&h=300&fit=crop",
		Description: "Instrumental ambient music for concentration",
	},
	{
		Name:        "Feel Good Indie",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX2sUQwD7tbmL",
		ImageURL:    "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=300&fit=crop",
		Description: "Uplifting indie tracks to brighten your day",
	},
	{
		Name:        "Gentle Morning",
		URL:         "https://open.spotify.com/playlist/37i9dQZF1DX0h0QnLkMBl4",
		ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=300&fit=crop",
		Description: "Soft melodies to start your day peacefully",
	},
}

// Fallback returns the first limit entries of the fixed fallback set, with
// limit clamped to 1..6. The returned slice is a fresh copy.
func Fallback(limit int) []Playlist {
	limit = max(1, min(limit, maxFallback))
	out := make([]Playlist, limit)
	copy(out, fallbackPlaylists[:limit])
	return out
}

// convertPlaylist maps a search result to a Playlist. It reports false for
// items that are incomplete, empty, or fail the playlist classifier.
func convertPlaylist(p spotify.SimplePlaylist) (Playlist, bool) {
	url := p.ExternalURLs["spotify"]
	tracks := int(p.Tracks.Total)

	if p.Name == "" || url == "" || tracks <= 0 {
		return Playlist{}, false
	}
	if !safety.IsAppropriatePlaylist(p.Name, p.Description) {
		return Playlist{}, false
	}

	image := PlaceholderImage
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		image = p.Images[0].URL
	}

	return Playlist{
		Name:        safety.Sanitize(p.Name),
		URL:         url,
		ImageURL:    image,
		Description: describe(p.Description, tracks),
	}, true
}

// describe returns the sanitized description, or a track count summary when
// there is nothing printable to show.
func describe(description string, tracks int) string {
	if strings.TrimSpace(description) != "" {
		if clean := safety.Sanitize(description); clean != safety.EmptyFallback {
			return clean
		}
	}
	return fmt.Sprintf("%d songs - Perfect for your mood", tracks)
}
