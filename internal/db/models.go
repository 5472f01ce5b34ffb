package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/justestif/go-mood-playlists/internal/spotify"
)

// Report is a saved mood reading: what the user wrote and what they were
// shown in return.
type Report struct {
	ID                  uuid.UUID          `json:"id"`
	UserID              string             `json:"userId"`
	MoodText            string             `json:"moodText"`
	VibeTitle           string             `json:"vibeTitle"`
	MotivationalMessage string             `json:"motivationalMessage"`
	Playlists           []spotify.Playlist `json:"playlists"`
	CreatedAt           time.Time          `json:"createdAt"`
}
