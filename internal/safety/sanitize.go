// Package safety implements the content policy applied to every piece of text
// that enters or leaves the mood pipeline: a sanitizer that reduces arbitrary
// input to short printable ASCII, and a blunt term-list classifier.
package safety

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// MaxSanitizedLength is the hard cap on sanitized output.
	MaxSanitizedLength = 200

	// EmptyFallback is returned when nothing survives sanitization.
	EmptyFallback = "Safe Content"
)

var (
	censorArtifact = regexp.MustCompile(`\*\*\*\S*`)
	scriptPrefix   = regexp.MustCompile(`(?i)javascript:|data:|vbscript:`)
)

// Sanitize reduces text to at most MaxSanitizedLength printable ASCII
// characters with markup brackets, script URI prefixes and censor artifacts
// removed. The result is never empty and Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(text string) string {
	cleaned := text
	for {
		next := strip(cleaned)
		if next == cleaned {
			break
		}
		cleaned = next
	}

	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) > MaxSanitizedLength {
		cleaned = strings.TrimSpace(cleaned[:MaxSanitizedLength])
	}
	if cleaned == "" {
		return EmptyFallback
	}
	return cleaned
}

// strip runs one pass of the removal steps. Removing a character can join two
// fragments into a new match (java<script: becomes javascript:), so Sanitize
// repeats it until nothing changes.
func strip(text string) string {
	text = strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, text)
	text = censorArtifact.ReplaceAllString(text, "")
	text = strings.NewReplacer("<", "", ">", "").Replace(text)
	text = scriptPrefix.ReplaceAllString(text, "")
	text = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, text)
	return text
}
