package skills

import "fmt"

func extractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a career advisor reviewing a resume.
Extract the professional skills mentioned in the resume text below.

Rules:
- Return ONLY a JSON array of skill name strings, nothing else.
- Each entry is a short canonical skill name, for example "Python" or "Project Management".
- Do not invent skills that are not supported by the text.
- Return [] if no skills can be identified.

Resume text:
"""
%s
"""`, resumeText)
}
