package courses

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	bySkill map[string]Course
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{bySkill: make(map[string]Course)}
}

// NewSeededMemoryRepo returns a memory repo pre-populated with the
// built-in catalog.
func NewSeededMemoryRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	for _, course := range seedCatalog {
		_ = repo.Upsert(context.Background(), course)
	}
	return repo
}

func (r *MemoryRepo) GetBySkill(ctx context.Context, skill string) (Course, error) {
	if err := ctx.Err(); err != nil {
		return Course{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.bySkill[strings.ToLower(strings.TrimSpace(skill))]
	if !ok {
		return Course{}, ErrNoCourse
	}
	return course, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, course Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(strings.TrimSpace(course.Skill))
	if existing, ok := r.bySkill[key]; ok {
		course.ID = existing.ID
		course.CreatedAt = existing.CreatedAt
	} else {
		if course.ID == "" {
			course.ID = uuid.NewString()
		}
		course.CreatedAt = time.Now().UTC()
	}
	r.bySkill[key] = course
	return nil
}
