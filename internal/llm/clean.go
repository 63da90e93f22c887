package llm

import "strings"

// CleanResponse strips markdown code fences and BOM from a model response,
// leaving the usable payload. Models routinely wrap JSON in ```json fences
// despite being told not to.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	s = strings.TrimPrefix(s, "\uFEFF")

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

// FirstJSONObject returns the first balanced {...} in the input.
func FirstJSONObject(input string) (string, bool) {
	return firstBalanced(input, '{', '}')
}

// FirstJSONArray returns the first balanced [...] in the input.
func FirstJSONArray(input string) (string, bool) {
	return firstBalanced(input, '[', ']')
}

func firstBalanced(input string, open, close byte) (string, bool) {
	start := strings.IndexByte(input, open)
	if start == -1 {
		return "", false
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return input[start : i+1], true
			}
			if depth < 0 {
				return "", false
			}
		}
	}

	return "", false
}
