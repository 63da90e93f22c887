package gaps

import (
	"fmt"
	"strings"
)

func analysisPrompt(domain string, current []string) string {
	currentList := "none listed"
	if len(current) > 0 {
		currentList = strings.Join(current, ", ")
	}
	return fmt.Sprintf(`You are a career advisor. A candidate wants to work in the %q domain.
Their current skills: %s.

Identify the skills they are missing for that domain.

Respond with ONLY a JSON object in this exact shape:
{
  "missing_skills": ["<up to 5 skills they lack, most important first>"],
  "priority_skills": ["<up to 3 of those skills to learn first>"]
}

Rules:
- "priority_skills" must be a subset of "missing_skills".
- Never list a skill the candidate already has.
- No markdown, no commentary outside the JSON object.`, domain, currentList)
}
