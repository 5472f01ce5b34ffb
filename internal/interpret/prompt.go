package interpret

import "fmt"

// maxPromptMood bounds how much of the mood text is sent to the model.
const maxPromptMood = 500

const promptTemplate = `You are an empathetic music therapist analyzing someone's emotional state.

Mood: %q

Guidelines:
- Empathize deeply with their emotional complexity
- Consider tone, intent, and underlying feelings
- Suggest music that validates their experience
- Be gentle and encouraging
- Avoid generic terms like "mood" or "playlist" in searches
- Focus on specific genres and emotional qualities
- Keep responses clean and family-friendly

Respond with ONLY this JSON structure:
{
  "spotifyQuery": "specific genre and emotion terms (no 'mood' or 'playlist')",
  "vibeTitle": "2-4 words capturing their emotional state",
  "motivationalMessage": "empathetic, encouraging message under 25 words"
}

Examples:
- "staying hopeful" -> {"spotifyQuery": "hopeful uplifting indie folk acoustic", "vibeTitle": "Hopeful Heart", "motivationalMessage": "Your hope is a gift to the world. Keep shining"}
- "anxious about work" -> {"spotifyQuery": "calming focus ambient instrumental", "vibeTitle": "Calm Focus", "motivationalMessage": "Breathe deeply. You've got this, one step at a time"}`

// buildPrompt renders the instruction prompt for one mood.
func buildPrompt(moodText string) string {
	if r := []rune(moodText); len(r) > maxPromptMood {
		moodText = string(r[:maxPromptMood])
	}
	return fmt.Sprintf(promptTemplate, moodText)
}
