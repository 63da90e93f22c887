package roadmap

import (
	"fmt"
	"sort"
	"strings"
)

func generationPrompt(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an experienced career mentor. Build a 12-month learning roadmap
for the profile below, targeting the %q domain.

Profile:
- Name: %s
- Age: %d
- Current skills: %s
`, input.Domain, input.Name, input.Age, joinOrNone(input.Skills))

	if len(input.Assessment) > 0 {
		b.WriteString("- Self assessment (1 to 10):\n")
		traits := make([]string, 0, len(input.Assessment))
		for trait := range input.Assessment {
			traits = append(traits, trait)
		}
		sort.Strings(traits)
		for _, trait := range traits {
			fmt.Fprintf(&b, "  - %s: %d\n", trait, input.Assessment[trait])
		}
	}

	b.WriteString(`
Respond with ONLY a JSON object in this exact shape:
{
  "career_advice": "<2-4 paragraphs of personalised advice>",
  "months": [
    {"month": 1, "focus": "<theme for the month>", "topics": ["<topic>", "<topic>"]}
  ]
}

Rules:
- "months" covers months 1 through 12 in order, one entry per month.
- "career_advice" must not be empty.
- Tailor the pacing to the profile's strengths and weaknesses.
- No markdown, no commentary outside the JSON object.`)

	return b.String()
}

func joinOrNone(skills []string) string {
	if len(skills) == 0 {
		return "none listed"
	}
	return strings.Join(skills, ", ")
}
