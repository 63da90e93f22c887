package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"caroai-backend/internal/llm"
	"caroai-backend/internal/shared/telemetry"
)

// ErrParse signals that the model responded but not with a usable roadmap.
var ErrParse = errors.New("roadmap parse failed")

// emptyAdviceRetries is how many extra attempts are made when the model
// returns a roadmap with blank career advice.
const emptyAdviceRetries = 2

type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// GenerateInput is the profile the roadmap is built for.
type GenerateInput struct {
	Name       string
	Age        int
	Domain     string
	Skills     []string
	Assessment map[string]int
}

// Generate asks the model for a 12-month roadmap. A syntactically valid
// response with empty career advice is retried up to emptyAdviceRetries
// times before giving up.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (Roadmap, error) {
	if s == nil || s.LLM == nil {
		return Roadmap{}, errors.New("roadmap service not configured")
	}
	if strings.TrimSpace(input.Domain) == "" {
		return Roadmap{}, fmt.Errorf("%w: domain is required", ErrParse)
	}

	prompt := generationPrompt(input)
	var lastErr error
	for attempt := 0; attempt <= emptyAdviceRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return Roadmap{}, err
		}
		raw, err := s.LLM.Generate(ctx, llm.GenerateInput{
			Operation:  "roadmap.generate",
			Prompt:     prompt,
			JSONOutput: true,
		})
		if err != nil {
			return Roadmap{}, err
		}

		plan, err := parseRoadmap(raw)
		if err != nil {
			return Roadmap{}, err
		}
		if strings.TrimSpace(plan.CareerAdvice) == "" {
			lastErr = fmt.Errorf("%w: career advice is empty", ErrParse)
			telemetry.Warn("roadmap.empty_advice", map[string]any{
				"attempt": attempt + 1,
				"domain":  input.Domain,
			})
			continue
		}
		return plan, nil
	}
	return Roadmap{}, lastErr
}

func parseRoadmap(raw string) (Roadmap, error) {
	cleaned := llm.CleanResponse(raw)
	obj, ok := llm.FirstJSONObject(cleaned)
	if !ok {
		return Roadmap{}, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	var parsed struct {
		CareerAdvice string `json:"career_advice"`
		Months       []struct {
			Month  int      `json:"month"`
			Focus  string   `json:"focus"`
			Topics []string `json:"topics"`
		} `json:"months"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return Roadmap{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(parsed.Months) == 0 {
		return Roadmap{}, fmt.Errorf("%w: months list is empty", ErrParse)
	}

	months := make([]MonthPlan, 0, len(parsed.Months))
	seen := make(map[int]struct{}, len(parsed.Months))
	for _, m := range parsed.Months {
		if m.Month < 1 || m.Month > 12 {
			return Roadmap{}, fmt.Errorf("%w: month %d out of range", ErrParse, m.Month)
		}
		if _, dup := seen[m.Month]; dup {
			return Roadmap{}, fmt.Errorf("%w: duplicate month %d", ErrParse, m.Month)
		}
		seen[m.Month] = struct{}{}
		focus := strings.TrimSpace(m.Focus)
		if focus == "" {
			return Roadmap{}, fmt.Errorf("%w: month %d has no focus", ErrParse, m.Month)
		}
		topics := make([]string, 0, len(m.Topics))
		for _, topic := range m.Topics {
			if topic = strings.TrimSpace(topic); topic != "" {
				topics = append(topics, topic)
			}
		}
		months = append(months, MonthPlan{Month: m.Month, Focus: focus, Topics: topics})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	return Roadmap{
		CareerAdvice: strings.TrimSpace(parsed.CareerAdvice),
		Months:       months,
	}, nil
}
