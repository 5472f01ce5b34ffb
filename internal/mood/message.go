package mood

import "strings"

type messageRule struct {
	keywords []string
	message  string
}

// messageRules follow the same emotional clusters as the query table, in
// their own fixed priority.
var messageRules = []messageRule{
	{[]string{"anxious", "worried", "stress"}, "Take a deep breath. You're stronger than you know"},
	{[]string{"sad", "down", "heartbreak"}, "It's okay to feel this way. Healing takes time"},
	{[]string{"hopeful", "positive", "optimistic"}, "Your hope is beautiful. Keep that light shining"},
	{[]string{"tired", "exhausted", "drained"}, "Rest is not giving up. You deserve gentle moments"},
	{[]string{"angry", "frustrated", "mad"}, "Your feelings are valid. Let music help you process"},
	{[]string{"lonely", "alone", "isolated"}, "You're not alone. Music connects us all"},
	{[]string{"happy", "good", "great"}, "Your joy is contagious. Keep spreading those good vibes!"},
	{[]string{"love", "romantic", "crush"}, "Love in all its forms deserves a soundtrack"},
}

// MessageFor returns one canned empathetic sentence for the mood text.
func MessageFor(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range messageRules {
		if containsAny(lower, rule.keywords...) {
			return rule.message
		}
	}
	return DefaultMessage
}
