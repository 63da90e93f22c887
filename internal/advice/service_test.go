package advice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"caroai-backend/internal/courses"
	"caroai-backend/internal/gaps"
	"caroai-backend/internal/llm"
	"caroai-backend/internal/roadmap"
	"caroai-backend/internal/sessions"
	"caroai-backend/internal/shared/storage/object/local"
)

const roadmapResponse = `{
	"career_advice": "Build fundamentals first, then specialise.",
	"months": [
		{"month": 1, "focus": "Foundations", "topics": ["Python"]},
		{"month": 2, "focus": "Statistics", "topics": ["Probability"]}
	]
}`

const gapsResponse = `{
	"missing_skills": ["Machine Learning", "Statistics"],
	"priority_skills": ["Machine Learning"]
}`

func scriptedClient(overrides map[string]func() (string, error)) *llm.MockClient {
	return &llm.MockClient{
		GenerateFunc: func(ctx context.Context, input llm.GenerateInput) (string, error) {
			if fn, ok := overrides[input.Operation]; ok {
				return fn()
			}
			switch input.Operation {
			case "roadmap.generate":
				return roadmapResponse, nil
			case "gaps.analyze":
				return gapsResponse, nil
			default:
				return "", fmt.Errorf("unexpected operation %s", input.Operation)
			}
		},
	}
}

func newPipeline(t *testing.T, client llm.Client) (*Service, *sessions.Service) {
	t.Helper()
	sessionSvc := sessions.NewService(sessions.NewMemoryRepo())
	store := local.New(t.TempDir())
	svc := NewService(
		sessionSvc,
		roadmap.NewService(client),
		gaps.NewService(client),
		courses.NewService(courses.NewSeededMemoryRepo(), client),
		store,
		NewMemoryPlanRepo(),
	)
	return svc, sessionSvc
}

func readySession(t *testing.T, sessionSvc *sessions.Service) sessions.Session {
	t.Helper()
	session, err := sessionSvc.Create(context.Background(), sessions.CreateInput{
		Name:   "Ada",
		Age:    24,
		Domain: "Data Science",
		Assessment: map[string]int{
			"analytical": 8, "creativity": 6, "communication": 7,
			"problem_solving": 9, "adaptability": 5, "leadership": 4,
		},
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	session, err = sessionSvc.SetSkills(context.Background(), session.ID, []string{"Python", "SQL"})
	if err != nil {
		t.Fatalf("set skills: %v", err)
	}
	return session
}

func TestGeneratePlanFullPipeline(t *testing.T) {
	svc, sessionSvc := newPipeline(t, scriptedClient(nil))
	session := readySession(t, sessionSvc)

	plan, err := svc.GeneratePlan(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Roadmap.CareerAdvice == "" || len(plan.Roadmap.Months) != 2 {
		t.Fatalf("unexpected roadmap: %+v", plan.Roadmap)
	}
	if len(plan.Gaps.MissingSkills) != 2 {
		t.Fatalf("unexpected gaps: %+v", plan.Gaps)
	}
	if len(plan.Courses) != 2 {
		t.Fatalf("expected 2 courses from catalog, got %+v", plan.Courses)
	}
	for _, name := range []string{ArtifactTimeline, "qr-1.png", "qr-2.png", ArtifactMergedQR} {
		if !plan.HasArtifact(name) {
			t.Fatalf("missing artifact %s in %v", name, plan.Artifacts)
		}
	}

	stored, err := svc.GetPlan(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if stored.SessionID != session.ID {
		t.Fatalf("unexpected stored plan: %+v", stored)
	}

	rc, err := svc.OpenArtifact(context.Background(), session.ID, ArtifactTimeline)
	if err != nil {
		t.Fatalf("OpenArtifact: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil || len(data) == 0 {
		t.Fatalf("artifact empty or unreadable: %v", err)
	}
}

func TestGeneratePlanRequiresSkills(t *testing.T) {
	svc, sessionSvc := newPipeline(t, scriptedClient(nil))
	session, err := sessionSvc.Create(context.Background(), sessions.CreateInput{
		Name:   "Ada",
		Age:    24,
		Domain: "Data Science",
		Assessment: map[string]int{
			"analytical": 8, "creativity": 6, "communication": 7,
			"problem_solving": 9, "adaptability": 5, "leadership": 4,
		},
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	_, err = svc.GeneratePlan(context.Background(), session.ID)
	if !errors.Is(err, ErrSkillsRequired) {
		t.Fatalf("expected ErrSkillsRequired, got %v", err)
	}
}

func TestGeneratePlanRequiresAssessment(t *testing.T) {
	repo := sessions.NewMemoryRepo()
	sessionSvc := sessions.NewService(repo)
	if err := repo.Create(context.Background(), sessions.Session{
		ID:     "bare",
		Name:   "Ada",
		Age:    24,
		Domain: "Data Science",
		Skills: []string{"Python"},
	}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	client := scriptedClient(nil)
	svc := NewService(
		sessionSvc,
		roadmap.NewService(client),
		gaps.NewService(client),
		courses.NewService(courses.NewSeededMemoryRepo(), client),
		local.New(t.TempDir()),
		NewMemoryPlanRepo(),
	)

	_, err := svc.GeneratePlan(context.Background(), "bare")
	if !errors.Is(err, ErrAssessmentRequired) {
		t.Fatalf("expected ErrAssessmentRequired, got %v", err)
	}
}

func TestGeneratePlanRoadmapFailureStoresNothing(t *testing.T) {
	client := scriptedClient(map[string]func() (string, error){
		"roadmap.generate": func() (string, error) { return "", llm.ErrUnavailable },
	})
	svc, sessionSvc := newPipeline(t, client)
	session := readySession(t, sessionSvc)

	_, err := svc.GeneratePlan(context.Background(), session.ID)
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	if _, err := svc.GetPlan(context.Background(), session.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}
}

func TestGetPlanUnknownSession(t *testing.T) {
	svc, _ := newPipeline(t, scriptedClient(nil))
	_, err := svc.GetPlan(context.Background(), "nope")
	if !errors.Is(err, sessions.ErrNotFound) {
		t.Fatalf("expected sessions.ErrNotFound, got %v", err)
	}
}

func TestOpenArtifactUnknownName(t *testing.T) {
	svc, sessionSvc := newPipeline(t, scriptedClient(nil))
	session := readySession(t, sessionSvc)

	if _, err := svc.GeneratePlan(context.Background(), session.ID); err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	_, err := svc.OpenArtifact(context.Background(), session.ID, "other.png")
	if !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}
