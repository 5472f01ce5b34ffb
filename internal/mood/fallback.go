package mood

import "strings"

// vibeRule names a mood and pairs it with a message written for that title.
type vibeRule struct {
	keywords []string
	title    string
	message  string
}

// vibeRules give the handful of common moods a specific title:
//
//   - hope    = "Hopeful Heart"
//   - sadness = "Healing Journey"
//   - anxiety = "Finding Peace"
//   - joy     = "Pure Joy"
//   - fatigue = "Gentle Rest"
//
// Anything else is titled DefaultVibeTitle and uses MessageFor.
var vibeRules = []vibeRule{
	{[]string{"hopeful", "hope", "positive"}, "Hopeful Heart", "Your hope lights up the world. Keep believing"},
	{[]string{"sad", "down", "heartbreak"}, "Healing Journey", "It's okay to feel deeply. Healing takes courage"},
	{[]string{"anxious", "stress", "worried"}, "Finding Peace", "Breathe deeply. You're stronger than your worries"},
	{[]string{"happy", "good", "great"}, "Pure Joy", "Your happiness is contagious. Keep shining!"},
	{[]string{"tired", "exhausted"}, "Gentle Rest", "Rest is self-care. You deserve peaceful moments"},
}

// Fallback builds a complete Interpretation from the keyword tables alone.
// It is what callers use when no model is configured or the model's answer
// cannot be trusted.
func Fallback(text string) Interpretation {
	interp := Interpretation{
		VibeTitle:           DefaultVibeTitle,
		MotivationalMessage: MessageFor(text),
		SpotifyQuery:        QueryFor(text),
	}

	lower := strings.ToLower(text)
	for _, rule := range vibeRules {
		if containsAny(lower, rule.keywords...) {
			interp.VibeTitle = rule.title
			interp.MotivationalMessage = rule.message
			break
		}
	}

	return interp
}
