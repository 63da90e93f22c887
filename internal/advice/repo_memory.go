package advice

import (
	"context"
	"sync"
)

// PlanRepo stores generated plans keyed by session.
type PlanRepo interface {
	Put(ctx context.Context, plan Plan) error
	GetBySession(ctx context.Context, sessionID string) (Plan, error)
}

type MemoryPlanRepo struct {
	mu    sync.RWMutex
	plans map[string]Plan
}

func NewMemoryPlanRepo() *MemoryPlanRepo {
	return &MemoryPlanRepo{plans: make(map[string]Plan)}
}

func (r *MemoryPlanRepo) Put(ctx context.Context, plan Plan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.SessionID] = plan
	return nil
}

func (r *MemoryPlanRepo) GetBySession(ctx context.Context, sessionID string) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[sessionID]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return plan, nil
}
