package gaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"caroai-backend/internal/llm"
	"caroai-backend/internal/skills"
)

// ErrParse signals that the model responded but not with a usable gap analysis.
var ErrParse = errors.New("gap analysis parse failed")

const (
	maxMissingSkills  = 5
	maxPrioritySkills = 3
)

// Analysis is the skill gap between the user's current skills and the
// target domain. PrioritySkills is a subset of MissingSkills, most
// important first.
type Analysis struct {
	MissingSkills  []string `json:"missingSkills"`
	PrioritySkills []string `json:"prioritySkills"`
}

// Ordered returns the missing skills with priority skills first, each
// skill appearing once.
func (a Analysis) Ordered() []string {
	out := make([]string, 0, len(a.MissingSkills))
	out = append(out, a.PrioritySkills...)
	seen := make(map[string]struct{}, len(out))
	for _, s := range out {
		seen[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range a.MissingSkills {
		if _, ok := seen[strings.ToLower(s)]; ok {
			continue
		}
		seen[strings.ToLower(s)] = struct{}{}
		out = append(out, s)
	}
	return out
}

type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Analyze asks the model which skills the profile is missing for the target
// domain. Skills the user already has are filtered out of the result even
// if the model names them.
func (s *Service) Analyze(ctx context.Context, domain string, current []string) (Analysis, error) {
	if s == nil || s.LLM == nil {
		return Analysis{}, errors.New("gaps service not configured")
	}
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return Analysis{}, fmt.Errorf("%w: domain is required", ErrParse)
	}

	raw, err := s.LLM.Generate(ctx, llm.GenerateInput{
		Operation:  "gaps.analyze",
		Prompt:     analysisPrompt(domain, current),
		JSONOutput: true,
	})
	if err != nil {
		return Analysis{}, err
	}
	return parseAnalysis(raw, current)
}

func parseAnalysis(raw string, current []string) (Analysis, error) {
	cleaned := llm.CleanResponse(raw)
	obj, ok := llm.FirstJSONObject(cleaned)
	if !ok {
		return Analysis{}, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	var parsed struct {
		MissingSkills  []string `json:"missing_skills"`
		PrioritySkills []string `json:"priority_skills"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	have := make(map[string]struct{}, len(current))
	for _, s := range current {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	missing := filterKnown(skills.Normalize(parsed.MissingSkills), have)
	if len(missing) == 0 {
		return Analysis{}, fmt.Errorf("%w: no missing skills identified", ErrParse)
	}
	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}

	missingSet := make(map[string]struct{}, len(missing))
	for _, s := range missing {
		missingSet[strings.ToLower(s)] = struct{}{}
	}
	priority := make([]string, 0, maxPrioritySkills)
	for _, s := range skills.Normalize(parsed.PrioritySkills) {
		if _, ok := missingSet[strings.ToLower(s)]; !ok {
			continue
		}
		priority = append(priority, s)
		if len(priority) == maxPrioritySkills {
			break
		}
	}

	return Analysis{MissingSkills: missing, PrioritySkills: priority}, nil
}

func filterKnown(in []string, have map[string]struct{}) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := have[strings.ToLower(s)]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}
