package safety

// Term lists are matched as substrings of lower-cased text, so "hard" also
// rejects "hardly" and "pain" rejects "painting". That over-match is the
// policy, not an accident of implementation.

var explicitTerms = []string{
	"sex", "sexy", "freaky", "freak", "nsfw", "explicit", "dirty", "xxx",
	"adult", "erotic", "sensual", "seduction", "bedroom", "strip", "pole",
	"twerk", "ratchet", "hoe", "bitch energy", "bad bitch", "hot girl",
	"daddy", "kinky", "naughty", "horny", "wet", "hard", "cum", "orgasm",
}

var violentTerms = []string{
	"kill", "murder", "death", "suicide", "violence", "blood", "gore",
	"torture", "pain", "hurt", "weapon", "gun", "knife", "bomb",
}

var drugTerms = []string{
	"cocaine", "heroin", "meth", "crack", "weed", "marijuana", "drug dealer",
	"high", "stoned", "blazed", "trip", "acid", "molly", "ecstasy",
}

// playlistExtraTerms widen the net for third-party catalog text, which is
// written by strangers rather than by the person journaling.
var playlistExtraTerms = []string{
	"war", "fight", "drug",
	"fuck", "shit", "damn", "ass", "hell", "bastard", "slut", "whore",
}

var playlistEmoji = []string{
	"\U0001F351",           // peach
	"\U0001F346",           // eggplant
	"\U0001F4A6",           // sweat droplets
	"\U0001F445",           // tongue
	"\U0001F525\U0001F48B", // fire, kiss
	"\U0001F60F",           // smirk
	"\U0001F975",           // hot face
	"\U0001F34C",           // banana
	"\U0001F336\uFE0F",     // hot pepper
}

var (
	textTerms     = concat(explicitTerms, violentTerms, drugTerms)
	playlistTerms = concat(explicitTerms, withoutTerm(violentTerms, "hurt"), drugTerms, playlistExtraTerms)
)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

func withoutTerm(list []string, term string) []string {
	out := make([]string, 0, len(list))
	for _, t := range list {
		if t != term {
			out = append(out, t)
		}
	}
	return out
}
