package advice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"caroai-backend/internal/courses"
	"caroai-backend/internal/gaps"
	"caroai-backend/internal/roadmap"
	"caroai-backend/internal/sessions"
	"caroai-backend/internal/shared/metrics"
	"caroai-backend/internal/shared/storage/object"
	"caroai-backend/internal/shared/telemetry"
)

// Service runs the advisory pipeline: roadmap, then gap analysis, then
// course recommendations, then rendered artifacts. Steps run in order
// because each consumes the previous step's output.
type Service struct {
	Sessions *sessions.Service
	Roadmap  *roadmap.Service
	Gaps     *gaps.Service
	Courses  *courses.Service
	Store    object.ObjectStore
	Plans    PlanRepo
}

func NewService(
	sessionSvc *sessions.Service,
	roadmapSvc *roadmap.Service,
	gapSvc *gaps.Service,
	courseSvc *courses.Service,
	store object.ObjectStore,
	plans PlanRepo,
) *Service {
	return &Service{
		Sessions: sessionSvc,
		Roadmap:  roadmapSvc,
		Gaps:     gapSvc,
		Courses:  courseSvc,
		Store:    store,
		Plans:    plans,
	}
}

// GeneratePlan runs the full pipeline for a session. The session must have
// skills and a completed assessment. Regenerating replaces any prior plan.
func (s *Service) GeneratePlan(ctx context.Context, sessionID string) (Plan, error) {
	session, err := s.Sessions.GetByID(ctx, sessionID)
	if err != nil {
		return Plan{}, err
	}
	if !session.HasSkills() {
		return Plan{}, ErrSkillsRequired
	}
	if !session.HasAssessment() {
		return Plan{}, ErrAssessmentRequired
	}

	metrics.IncPlanStarted()
	started := time.Now()
	telemetry.Info("plan.started", map[string]any{
		"session_id": session.ID,
		"domain":     session.Domain,
	})

	plan, err := s.generate(ctx, session)
	if err != nil {
		metrics.IncPlanFailed()
		telemetry.Error("plan.failed", map[string]any{
			"session_id":  session.ID,
			"domain":      session.Domain,
			"duration_ms": time.Since(started).Milliseconds(),
			"err":         err.Error(),
		})
		return Plan{}, err
	}

	if err := s.Plans.Put(ctx, plan); err != nil {
		metrics.IncPlanFailed()
		return Plan{}, fmt.Errorf("store plan: %w", err)
	}

	metrics.IncPlanCompleted()
	metrics.ObservePlanDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("plan.completed", map[string]any{
		"session_id":  session.ID,
		"domain":      session.Domain,
		"months":      len(plan.Roadmap.Months),
		"courses":     len(plan.Courses),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return plan, nil
}

func (s *Service) generate(ctx context.Context, session sessions.Session) (Plan, error) {
	generated, err := s.Roadmap.Generate(ctx, roadmap.GenerateInput{
		Name:       session.Name,
		Age:        session.Age,
		Domain:     session.Domain,
		Skills:     session.Skills,
		Assessment: session.Assessment,
	})
	if err != nil {
		return Plan{}, fmt.Errorf("roadmap: %w", err)
	}

	analysis, err := s.Gaps.Analyze(ctx, session.Domain, session.Skills)
	if err != nil {
		return Plan{}, fmt.Errorf("gap analysis: %w", err)
	}

	found, err := s.Courses.Recommend(ctx, analysis.Ordered())
	if err != nil {
		return Plan{}, fmt.Errorf("course recommendations: %w", err)
	}

	plan := Plan{
		SessionID:   session.ID,
		Roadmap:     generated,
		Gaps:        analysis,
		GeneratedAt: time.Now().UTC(),
	}
	plan.Courses, plan.Artifacts = s.renderArtifacts(ctx, session.ID, generated, found)
	return plan, nil
}

// renderArtifacts draws the timeline and QR codes and saves them to the
// object store. Rendering failures degrade the plan instead of failing it.
func (s *Service) renderArtifacts(ctx context.Context, sessionID string, generated roadmap.Roadmap, found []courses.Course) ([]courses.Recommendation, []string) {
	var artifacts []string

	if data, err := roadmap.RenderTimeline(generated); err == nil {
		if err := s.saveArtifact(ctx, sessionID, ArtifactTimeline, data); err == nil {
			artifacts = append(artifacts, ArtifactTimeline)
		}
	} else {
		telemetry.Warn("plan.timeline.skipped", map[string]any{
			"session_id": sessionID,
			"err":        err.Error(),
		})
	}

	recs := make([]courses.Recommendation, 0, len(found))
	for i, course := range found {
		rec := courses.Recommendation{
			Skill: course.Skill,
			Title: course.Title,
			URL:   course.URL,
		}
		name := fmt.Sprintf("qr-%d.png", i+1)
		if data, err := courses.QRCode(course.URL); err == nil {
			if err := s.saveArtifact(ctx, sessionID, name, data); err == nil {
				rec.QRName = name
				artifacts = append(artifacts, name)
			}
		} else {
			telemetry.Warn("plan.qr.skipped", map[string]any{
				"session_id": sessionID,
				"skill":      course.Skill,
				"err":        err.Error(),
			})
		}
		recs = append(recs, rec)
	}

	if len(found) > 0 {
		if data, err := courses.MergedQR(found); err == nil {
			if err := s.saveArtifact(ctx, sessionID, ArtifactMergedQR, data); err == nil {
				artifacts = append(artifacts, ArtifactMergedQR)
			}
		} else {
			telemetry.Warn("plan.merged_qr.skipped", map[string]any{
				"session_id": sessionID,
				"err":        err.Error(),
			})
		}
	}

	return recs, artifacts
}

func (s *Service) saveArtifact(ctx context.Context, sessionID, name string, data []byte) error {
	key := artifactKey(sessionID, name)
	if _, err := s.Store.SaveWithKey(ctx, key, "image/png", bytes.NewReader(data)); err != nil {
		telemetry.Error("plan.artifact.save_failed", map[string]any{
			"session_id": sessionID,
			"name":       name,
			"err":        err.Error(),
		})
		return err
	}
	return nil
}

// GetPlan returns the stored plan for a session.
func (s *Service) GetPlan(ctx context.Context, sessionID string) (Plan, error) {
	if _, err := s.Sessions.GetByID(ctx, sessionID); err != nil {
		return Plan{}, err
	}
	return s.Plans.GetBySession(ctx, sessionID)
}

// OpenArtifact streams an artifact produced for the session's plan. Only
// names recorded on the plan are served.
func (s *Service) OpenArtifact(ctx context.Context, sessionID, name string) (io.ReadCloser, error) {
	plan, err := s.GetPlan(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !plan.HasArtifact(name) {
		return nil, ErrArtifactNotFound
	}
	rc, err := s.Store.Open(ctx, artifactKey(sessionID, name))
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return nil, ErrArtifactNotFound
		}
		return nil, err
	}
	return rc, nil
}

func artifactKey(sessionID, name string) string {
	return fmt.Sprintf("plans/%s/%s", sessionID, name)
}
