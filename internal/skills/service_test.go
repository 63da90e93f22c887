package skills

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"caroai-backend/internal/llm"
)

func TestExtractParsesSkillArray(t *testing.T) {
	client := &llm.MockClient{Response: "```json\n[\"Python\", \"SQL\", \"python\", \" \", \"Communication\"]\n```"}
	svc := NewService(client)

	got, err := svc.Extract(context.Background(), "Proficient in Python, SQL")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []string{"Python", "SQL", "Communication"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if len(client.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(client.Calls))
	}
	if !client.Calls[0].JSONOutput {
		t.Fatal("expected JSON output requested")
	}
}

func TestExtractRejectsNonArrayResponse(t *testing.T) {
	client := &llm.MockClient{Response: `{"skills": "Python"}`}
	svc := NewService(client)

	_, err := svc.Extract(context.Background(), "some resume")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestExtractEmptyResumeText(t *testing.T) {
	svc := NewService(&llm.MockClient{Response: "[]"})
	_, err := svc.Extract(context.Background(), "   ")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestExtractPropagatesLLMError(t *testing.T) {
	client := &llm.MockClient{Err: llm.ErrUnavailable}
	svc := NewService(client)

	_, err := svc.Extract(context.Background(), "resume")
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := []string{"Go", "  Docker ", "go", "", "Kubernetes"}
	once := Normalize(in)
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize not idempotent: %v vs %v", once, twice)
	}
	want := []string{"Go", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(once, want) {
		t.Fatalf("got %v, want %v", once, want)
	}
}
