// Package mood maps free-form mood text to a music search query, a vibe title
// and an empathetic message using fixed keyword tables. Every function here is
// pure and total: it never fails and never returns an empty string.
package mood

// Field length bounds for an Interpretation.
const (
	MaxVibeTitleLength = 30
	MaxMessageLength   = 150
	MaxQueryLength     = 100

	// maxMoodLength is the longest mood text the keyword tables will inspect.
	maxMoodLength = 500
)

// Canned values used when nothing more specific applies.
const (
	DefaultVibeTitle = "Your Current Vibe"
	DefaultMessage   = "Every feeling matters. Music understands your heart"
)

// Interpretation is the result of reading a mood: a short title, an
// encouraging message, and the catalog query to search with.
type Interpretation struct {
	VibeTitle           string `json:"vibeTitle"`
	MotivationalMessage string `json:"motivationalMessage"`
	SpotifyQuery        string `json:"spotifyQuery"`
}
