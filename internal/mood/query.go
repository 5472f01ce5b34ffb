package mood

import (
	"regexp"
	"strings"
)

// Query phrases returned outside the cluster table.
const (
	neutralQuery  = "peaceful ambient instrumental"
	positiveQuery = "feel good indie alternative upbeat"
	negativeQuery = "healing indie acoustic gentle comfort"
	defaultQuery  = "indie alternative chill peaceful"
)

// queryCluster pairs a keyword pattern with the search phrase it maps to.
type queryCluster struct {
	name    string
	pattern *regexp.Regexp
	query   string
}

// queryClusters is tested top to bottom and the first match wins. The order is
// part of the contract: "overwhelmed" is both anxiety and fatigue, and "work"
// loses to "tired" in "tired but I have work to do".
var queryClusters = []queryCluster{
	{
		name:    "anxiety",
		pattern: regexp.MustCompile(`anxious|nervous|worried|stress|overwhelmed|panic|tension`),
		query:   "calming meditation ambient peaceful instrumental",
	},
	{
		name:    "sadness",
		pattern: regexp.MustCompile(`sad|depressed|down|heartbreak|lonely|empty|lost|grief`),
		query:   "healing indie acoustic melancholy gentle comfort",
	},
	{
		name:    "hope",
		pattern: regexp.MustCompile(`hopeful|hope|optimistic|positive|resilient|strong|determined`),
		query:   "uplifting hopeful indie folk inspiring acoustic",
	},
	{
		name:    "joy",
		pattern: regexp.MustCompile(`happy|joyful|excited|elated|cheerful|bright|wonderful|amazing`),
		query:   "upbeat feel good indie pop joyful celebration",
	},
	{
		name:    "fatigue",
		pattern: regexp.MustCompile(`tired|exhausted|drained|weary|sleepy|burnout|overwhelmed`),
		query:   "gentle ambient lofi peaceful restorative instrumental",
	},
	{
		name:    "anger",
		pattern: regexp.MustCompile(`angry|mad|frustrated|rage|furious|annoyed|irritated`),
		query:   "alternative rock indie emotional release cathartic",
	},
	{
		name:    "nostalgia",
		pattern: regexp.MustCompile(`nostalgic|memories|past|reminiscing|bittersweet|wistful`),
		query:   "nostalgic indie alternative folk introspective thoughtful",
	},
	{
		name:    "romance",
		pattern: regexp.MustCompile(`love|romantic|crush|affection|tender|warm|caring`),
		query:   "romantic indie folk acoustic love songs gentle",
	},
	{
		name:    "focus",
		pattern: regexp.MustCompile(`focus|study|work|productive|concentration|motivated`),
		query:   "focus instrumental ambient productivity study lofi",
	},
	{
		name:    "social",
		pattern: regexp.MustCompile(`party|celebration|social|friends|dancing|energetic`),
		query:   "upbeat indie dance celebration social good vibes",
	},
	{
		name:    "solitude",
		pattern: regexp.MustCompile(`alone|solitude|quiet|peaceful|contemplative|reflective`),
		query:   "introspective indie acoustic peaceful contemplative",
	},
	{
		name:    "creativity",
		pattern: regexp.MustCompile(`creative|inspired|artistic|imaginative|expressive`),
		query:   "creative indie alternative ambient artistic instrumental",
	},
}

// QueryFor maps mood text to a catalog search phrase.
//
// Text that is empty or longer than 500 characters gets a neutral phrase.
// Otherwise the first cluster whose pattern appears anywhere in the
// lower-cased text decides; failing that, a coarse good/bad check; failing
// that, a safe default.
func QueryFor(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" || len(lower) > maxMoodLength {
		return neutralQuery
	}

	if c, ok := matchCluster(lower); ok {
		return c.query
	}

	switch {
	case containsAny(lower, "good", "great", "fine"):
		return positiveQuery
	case containsAny(lower, "bad", "rough", "difficult"):
		return negativeQuery
	default:
		return defaultQuery
	}
}

// ClusterFor returns the name of the first matching cluster, or "" when none
// match. It uses the same rules as QueryFor.
func ClusterFor(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" || len(lower) > maxMoodLength {
		return ""
	}
	if c, ok := matchCluster(lower); ok {
		return c.name
	}
	return ""
}

func matchCluster(lower string) (queryCluster, bool) {
	for _, c := range queryClusters {
		if c.pattern.MatchString(lower) {
			return c, true
		}
	}
	return queryCluster{}, false
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
