package safety

import (
	"strings"
	"unicode/utf8"
)

const (
	maxPlaylistNameLength        = 200
	maxPlaylistDescriptionLength = 500
)

// IsAppropriate reports whether text contains none of the banned terms.
// Matching is case-insensitive substring containment. Empty text is never
// appropriate.
func IsAppropriate(text string) bool {
	if text == "" {
		return false
	}
	return !containsAny(strings.ToLower(text), textTerms)
}

// IsAppropriatePlaylist applies the stricter catalog policy to a playlist's
// name and description: a wider term list, an emoji deny-list, and length caps.
func IsAppropriatePlaylist(name, description string) bool {
	if name == "" {
		return false
	}

	lowerName := strings.ToLower(name)
	lowerDesc := strings.ToLower(description)

	if containsAny(lowerName, playlistTerms) || containsAny(lowerDesc, playlistTerms) {
		return false
	}
	if containsAny(name, playlistEmoji) || containsAny(description, playlistEmoji) {
		return false
	}

	return utf8.RuneCountInString(name) <= maxPlaylistNameLength &&
		utf8.RuneCountInString(description) <= maxPlaylistDescriptionLength
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
