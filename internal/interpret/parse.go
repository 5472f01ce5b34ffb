package interpret

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/justestif/go-mood-playlists/internal/mood"
	"github.com/justestif/go-mood-playlists/internal/safety"
)

// quotedValue matches the first single- or double-quoted run on a line.
var quotedValue = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)

// parse turns raw model output into an Interpretation. Fields that are
// missing or fail validation keep the value from fallback.
func parse(raw string, fallback mood.Interpretation) mood.Interpretation {
	if span, ok := firstObject(raw); ok {
		var fields map[string]any
		err := json.Unmarshal([]byte(span), &fields)
		if err == nil {
			return fromFields(fields, fallback)
		}
		log.Printf("interpret: decoding model JSON: %v", err)
	}

	return scanLines(raw, fallback)
}

func fromFields(fields map[string]any, fallback mood.Interpretation) mood.Interpretation {
	str := func(key string) string {
		s, _ := fields[key].(string)
		return s
	}

	return mood.Interpretation{
		VibeTitle:           acceptField(str("vibeTitle"), mood.MaxVibeTitleLength, fallback.VibeTitle),
		MotivationalMessage: acceptField(str("motivationalMessage"), mood.MaxMessageLength, fallback.MotivationalMessage),
		SpotifyQuery:        acceptField(str("spotifyQuery"), mood.MaxQueryLength, fallback.SpotifyQuery),
	}
}

// scanLines recovers fields from loosely formatted output such as
//
//	vibeTitle: "Calm Focus"
//
// by looking for a field keyword before the first colon and taking the first
// quoted value after it.
func scanLines(raw string, fallback mood.Interpretation) mood.Interpretation {
	out := fallback

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, rest := line, line
		if i := strings.Index(line, ":"); i >= 0 {
			key, rest = line[:i], line[i+1:]
		}

		value, ok := firstQuoted(rest)
		if !ok {
			continue
		}

		key = strings.ToLower(key)
		switch {
		case strings.Contains(key, "search") || strings.Contains(key, "query"):
			out.SpotifyQuery = acceptField(value, mood.MaxQueryLength, out.SpotifyQuery)
		case strings.Contains(key, "title") || strings.Contains(key, "vibe"):
			out.VibeTitle = acceptField(value, mood.MaxVibeTitleLength, out.VibeTitle)
		case strings.Contains(key, "message") || strings.Contains(key, "encouraging"):
			out.MotivationalMessage = acceptField(value, mood.MaxMessageLength, out.MotivationalMessage)
		}
	}

	return out
}

func firstQuoted(s string) (string, bool) {
	m := quotedValue.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], true
}

// acceptField returns the sanitized value when it is non-blank, passes the
// classifier before and after sanitizing, and fits within max. Otherwise it
// returns fallback.
func acceptField(value string, max int, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	if !safety.IsAppropriate(value) {
		return fallback
	}

	clean := safety.Sanitize(value)
	if clean == safety.EmptyFallback && strings.TrimSpace(value) != safety.EmptyFallback {
		// Nothing printable survived.
		return fallback
	}
	if !safety.IsAppropriate(clean) || len(clean) > max {
		return fallback
	}
	return clean
}

// firstObject returns the first balanced {...} span in s. Braces inside JSON
// strings are ignored.
func firstObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
