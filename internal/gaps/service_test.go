package gaps

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"caroai-backend/internal/llm"
)

func TestAnalyzeParsesGap(t *testing.T) {
	client := &llm.MockClient{Response: `{
		"missing_skills": ["Machine Learning", "Statistics", "Deep Learning", "MLOps", "Data Visualisation"],
		"priority_skills": ["Machine Learning", "Statistics"]
	}`}
	svc := NewService(client)

	got, err := svc.Analyze(context.Background(), "Data Science", []string{"Python", "SQL"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(got.MissingSkills) != 5 {
		t.Fatalf("expected 5 missing skills, got %v", got.MissingSkills)
	}
	if !reflect.DeepEqual(got.PrioritySkills, []string{"Machine Learning", "Statistics"}) {
		t.Fatalf("unexpected priority skills: %v", got.PrioritySkills)
	}
}

func TestAnalyzeFiltersCurrentSkills(t *testing.T) {
	client := &llm.MockClient{Response: `{
		"missing_skills": ["python", "Machine Learning", "SQL", "Statistics"],
		"priority_skills": ["python", "Machine Learning"]
	}`}
	svc := NewService(client)

	got, err := svc.Analyze(context.Background(), "Data Science", []string{"Python", "SQL"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, s := range got.MissingSkills {
		if s == "python" || s == "Python" || s == "SQL" {
			t.Fatalf("current skill leaked into gap: %v", got.MissingSkills)
		}
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"Machine Learning", "Statistics"}) {
		t.Fatalf("unexpected missing skills: %v", got.MissingSkills)
	}
	if !reflect.DeepEqual(got.PrioritySkills, []string{"Machine Learning"}) {
		t.Fatalf("unexpected priority skills: %v", got.PrioritySkills)
	}
}

func TestAnalyzeRejectsPriorityOutsideMissing(t *testing.T) {
	client := &llm.MockClient{Response: `{
		"missing_skills": ["Machine Learning"],
		"priority_skills": ["Quantum Computing"]
	}`}
	svc := NewService(client)

	got, err := svc.Analyze(context.Background(), "Data Science", nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(got.PrioritySkills) != 0 {
		t.Fatalf("expected no priority skills, got %v", got.PrioritySkills)
	}
}

func TestAnalyzeCapsCounts(t *testing.T) {
	client := &llm.MockClient{Response: `{
		"missing_skills": ["A","B","C","D","E","F","G"],
		"priority_skills": ["A","B","C","D"]
	}`}
	svc := NewService(client)

	got, err := svc.Analyze(context.Background(), "Data Science", nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(got.MissingSkills) != 5 {
		t.Fatalf("expected 5 missing skills, got %d", len(got.MissingSkills))
	}
	if len(got.PrioritySkills) != 3 {
		t.Fatalf("expected 3 priority skills, got %d", len(got.PrioritySkills))
	}
}

func TestAnalyzeAllSkillsCovered(t *testing.T) {
	client := &llm.MockClient{Response: `{
		"missing_skills": ["Python"],
		"priority_skills": ["Python"]
	}`}
	svc := NewService(client)

	_, err := svc.Analyze(context.Background(), "Data Science", []string{"Python"})
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestAnalyzeGarbageResponse(t *testing.T) {
	svc := NewService(&llm.MockClient{Response: "not json at all"})
	_, err := svc.Analyze(context.Background(), "Data Science", nil)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestOrderedPriorityFirst(t *testing.T) {
	a := Analysis{
		MissingSkills:  []string{"A", "B", "C"},
		PrioritySkills: []string{"C", "A"},
	}
	got := a.Ordered()
	want := []string{"C", "A", "B"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
