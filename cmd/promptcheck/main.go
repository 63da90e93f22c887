package main

// Live smoke check of the prompt pipeline against the configured provider:
//   go run ./cmd/promptcheck -resume path/to/resume.pdf -domain "Data Science"

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"caroai-backend/internal/extract"
	"caroai-backend/internal/gaps"
	"caroai-backend/internal/llm"
	"caroai-backend/internal/llm/gemini"
	"caroai-backend/internal/roadmap"
	"caroai-backend/internal/shared/config"
	"caroai-backend/internal/skills"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		exitErr(err.Error())
	}

	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	domain := flag.String("domain", "Data Science", "Target career domain")
	name := flag.String("name", "Test User", "Profile name")
	age := flag.Int("age", 25, "Profile age")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}
	fileName := filepath.Base(*resumePath)
	mimeType := mime.TypeByExtension(filepath.Ext(fileName))

	ctx := context.Background()

	text, err := extract.Text(ctx, data, mimeType, fileName)
	if err != nil {
		exitErr(fmt.Sprintf("extract resume text: %v", err))
	}
	fmt.Printf("extracted %d characters\n", len(text))

	timeout := time.Duration(cfg.LLMTimeoutSeconds) * time.Second
	base, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, *model, timeout)
	if err != nil {
		exitErr(err.Error())
	}
	client := llm.NewResilientClient(base, llm.ResilienceConfig{})

	skillList, err := skills.NewService(client).Extract(ctx, text)
	if err != nil {
		exitErr(fmt.Sprintf("skill extraction: %v", err))
	}
	fmt.Printf("skills: %s\n", strings.Join(skillList, ", "))

	plan, err := roadmap.NewService(client).Generate(ctx, roadmap.GenerateInput{
		Name:   *name,
		Age:    *age,
		Domain: *domain,
		Skills: skillList,
	})
	if err != nil {
		exitErr(fmt.Sprintf("roadmap: %v", err))
	}
	printJSON("roadmap", plan)

	analysis, err := gaps.NewService(client).Analyze(ctx, *domain, skillList)
	if err != nil {
		exitErr(fmt.Sprintf("gap analysis: %v", err))
	}
	printJSON("gaps", analysis)
}

func printJSON(label string, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("marshal %s: %v", label, err))
	}
	fmt.Printf("%s:\n%s\n", label, out)
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
