package courses

import "fmt"

func lookupPrompt(skill string) string {
	return fmt.Sprintf(`Recommend one high-quality, free YouTube course for learning %q.

Respond with ONLY a JSON object in this exact shape:
{"title": "<course title>", "url": "<full youtube.com or youtu.be watch URL>"}

Rules:
- The URL must be a real, well-known course video.
- No markdown, no commentary outside the JSON object.`, skill)
}
