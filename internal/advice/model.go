package advice

import (
	"time"

	"caroai-backend/internal/courses"
	"caroai-backend/internal/gaps"
	"caroai-backend/internal/roadmap"
)

// Artifact names served under /sessions/:id/artifacts/:name.
const (
	ArtifactTimeline = "timeline.png"
	ArtifactMergedQR = "courses-qr.png"
)

// Plan is the full output of one advisory pipeline run for a session.
type Plan struct {
	SessionID   string                   `json:"sessionId"`
	Roadmap     roadmap.Roadmap          `json:"roadmap"`
	Gaps        gaps.Analysis            `json:"gaps"`
	Courses     []courses.Recommendation `json:"courses"`
	Artifacts   []string                 `json:"artifacts,omitempty"`
	GeneratedAt time.Time                `json:"generatedAt"`
}

// HasArtifact reports whether name was produced for this plan.
func (p Plan) HasArtifact(name string) bool {
	for _, a := range p.Artifacts {
		if a == name {
			return true
		}
	}
	return false
}
