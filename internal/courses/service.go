package courses

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"caroai-backend/internal/llm"
	"caroai-backend/internal/shared/telemetry"
)

// youtubeURLPattern accepts standard watch links and youtu.be short links.
var youtubeURLPattern = regexp.MustCompile(`^https://(www\.)?(youtube\.com/watch\?v=[\w-]{6,}|youtu\.be/[\w-]{6,})\S*$`)

type Service struct {
	Repo Repo
	LLM  llm.Client
}

func NewService(repo Repo, client llm.Client) *Service {
	return &Service{Repo: repo, LLM: client}
}

// Recommend finds a course per missing skill. The catalog is consulted
// first; skills it does not cover are looked up via the model. A skill
// with no valid course is skipped, so the result may be shorter than the
// input. URLs are deduplicated across the result.
func (s *Service) Recommend(ctx context.Context, missing []string) ([]Course, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("courses service not configured")
	}

	out := make([]Course, 0, len(missing))
	seenURLs := make(map[string]struct{}, len(missing))
	for _, skill := range missing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		course, err := s.lookup(ctx, skill)
		if err != nil {
			if errors.Is(err, ErrNoCourse) {
				telemetry.Warn("courses.skip", map[string]any{"skill": skill})
				continue
			}
			return nil, err
		}
		if _, dup := seenURLs[course.URL]; dup {
			continue
		}
		seenURLs[course.URL] = struct{}{}
		out = append(out, course)
	}
	return out, nil
}

func (s *Service) lookup(ctx context.Context, skill string) (Course, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return Course{}, ErrNoCourse
	}

	course, err := s.Repo.GetBySkill(ctx, skill)
	if err == nil {
		return course, nil
	}
	if !errors.Is(err, ErrNoCourse) {
		return Course{}, err
	}
	return s.lookupViaModel(ctx, skill)
}

func (s *Service) lookupViaModel(ctx context.Context, skill string) (Course, error) {
	if s.LLM == nil {
		return Course{}, ErrNoCourse
	}

	raw, err := s.LLM.Generate(ctx, llm.GenerateInput{
		Operation:  "courses.lookup",
		Prompt:     lookupPrompt(skill),
		JSONOutput: true,
	})
	if err != nil {
		telemetry.Warn("courses.lookup.failed", map[string]any{
			"skill": skill,
			"err":   err.Error(),
		})
		return Course{}, fmt.Errorf("%w: model lookup failed for %s", ErrNoCourse, skill)
	}

	obj, ok := llm.FirstJSONObject(llm.CleanResponse(raw))
	if !ok {
		return Course{}, fmt.Errorf("%w: unusable response for %s", ErrNoCourse, skill)
	}
	var parsed struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return Course{}, fmt.Errorf("%w: unusable response for %s", ErrNoCourse, skill)
	}

	parsed.URL = strings.TrimSpace(parsed.URL)
	if !youtubeURLPattern.MatchString(parsed.URL) {
		telemetry.Warn("courses.invalid_url", map[string]any{
			"skill": skill,
			"url":   parsed.URL,
		})
		return Course{}, fmt.Errorf("%w: invalid course url for %s", ErrNoCourse, skill)
	}

	return Course{
		Skill: skill,
		Title: strings.TrimSpace(parsed.Title),
		URL:   parsed.URL,
	}, nil
}
