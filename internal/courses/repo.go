package courses

import "context"

// Repo is the course catalog lookup. Implementations match skills
// case-insensitively.
type Repo interface {
	GetBySkill(ctx context.Context, skill string) (Course, error)
	Upsert(ctx context.Context, course Course) error
}
