package skills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"caroai-backend/internal/llm"
)

// ErrParse signals that the model responded but not with a usable skill list.
var ErrParse = errors.New("skill list parse failed")

type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Extract asks the model for the skills present in the resume text and
// returns them as a deduplicated list in response order.
func (s *Service) Extract(ctx context.Context, resumeText string) ([]string, error) {
	if s == nil || s.LLM == nil {
		return nil, errors.New("skills service not configured")
	}
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("%w: resume text is empty", ErrParse)
	}

	raw, err := s.LLM.Generate(ctx, llm.GenerateInput{
		Operation:  "skills.extract",
		Prompt:     extractionPrompt(resumeText),
		JSONOutput: true,
	})
	if err != nil {
		return nil, err
	}
	return parseSkillList(raw)
}

func parseSkillList(raw string) ([]string, error) {
	cleaned := llm.CleanResponse(raw)
	arr, ok := llm.FirstJSONArray(cleaned)
	if !ok {
		return nil, fmt.Errorf("%w: no JSON array in response", ErrParse)
	}
	var parsed []string
	if err := json.Unmarshal([]byte(arr), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Normalize(parsed), nil
}

// Normalize trims entries and drops empties and case-insensitive duplicates
// while preserving the original order and casing of first occurrences.
func Normalize(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, skill := range in {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill)
	}
	return out
}
