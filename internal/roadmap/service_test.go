package roadmap

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"caroai-backend/internal/llm"
)

func validResponse(advice string) string {
	return fmt.Sprintf(`{
		"career_advice": %q,
		"months": [
			{"month": 1, "focus": "Foundations", "topics": ["Python basics", "Git"]},
			{"month": 2, "focus": "Data handling", "topics": ["Pandas"]}
		]
	}`, advice)
}

func testInput() GenerateInput {
	return GenerateInput{
		Name:       "Ada",
		Age:        24,
		Domain:     "Data Science",
		Skills:     []string{"Python", "SQL"},
		Assessment: map[string]int{"analytical": 8, "creativity": 5},
	}
}

func TestGenerateParsesRoadmap(t *testing.T) {
	client := &llm.MockClient{Response: "```json\n" + validResponse("Focus on fundamentals first.") + "\n```"}
	svc := NewService(client)

	plan, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.CareerAdvice != "Focus on fundamentals first." {
		t.Fatalf("unexpected advice: %q", plan.CareerAdvice)
	}
	if len(plan.Months) != 2 || plan.Months[0].Month != 1 || plan.Months[1].Focus != "Data handling" {
		t.Fatalf("unexpected months: %+v", plan.Months)
	}
	if len(client.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(client.Calls))
	}
}

func TestGenerateRetriesOnEmptyAdvice(t *testing.T) {
	attempts := 0
	client := &llm.MockClient{
		GenerateFunc: func(ctx context.Context, input llm.GenerateInput) (string, error) {
			attempts++
			if attempts < 3 {
				return validResponse(""), nil
			}
			return validResponse("Third time lucky."), nil
		},
	}
	svc := NewService(client)

	plan, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.CareerAdvice != "Third time lucky." {
		t.Fatalf("unexpected advice: %q", plan.CareerAdvice)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestGenerateGivesUpAfterRetries(t *testing.T) {
	client := &llm.MockClient{Response: validResponse("   ")}
	svc := NewService(client)

	_, err := svc.Generate(context.Background(), testInput())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if len(client.Calls) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(client.Calls))
	}
}

func TestGenerateRejectsInvalidMonths(t *testing.T) {
	cases := map[string]string{
		"out of range": `{"career_advice":"ok","months":[{"month":13,"focus":"x"}]}`,
		"duplicate":    `{"career_advice":"ok","months":[{"month":1,"focus":"x"},{"month":1,"focus":"y"}]}`,
		"no focus":     `{"career_advice":"ok","months":[{"month":1,"focus":"  "}]}`,
		"empty list":   `{"career_advice":"ok","months":[]}`,
		"not json":     `just some text`,
	}
	for name, resp := range cases {
		svc := NewService(&llm.MockClient{Response: resp})
		if _, err := svc.Generate(context.Background(), testInput()); !errors.Is(err, ErrParse) {
			t.Errorf("%s: expected ErrParse, got %v", name, err)
		}
	}
}

func TestGenerateSortsMonths(t *testing.T) {
	resp := `{"career_advice":"ok","months":[
		{"month":3,"focus":"c"},{"month":1,"focus":"a"},{"month":2,"focus":"b"}]}`
	svc := NewService(&llm.MockClient{Response: resp})

	plan, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, m := range plan.Months {
		if m.Month != i+1 {
			t.Fatalf("months not sorted: %+v", plan.Months)
		}
	}
}

func TestGeneratePropagatesLLMError(t *testing.T) {
	svc := NewService(&llm.MockClient{Err: llm.ErrUnavailable})
	_, err := svc.Generate(context.Background(), testInput())
	if !errors.Is(err, llm.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
