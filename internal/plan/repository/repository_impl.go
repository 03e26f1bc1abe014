// Package repository holds an in-memory plan registry. Plans live for the
// whole process and are handed out by reference, never copied.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/smallbiznis/railbill/internal/plan/domain"
)

type repo struct {
	mu    sync.RWMutex
	plans map[int64]*domain.Plan
}

func Provide() domain.Repository {
	return &repo{plans: make(map[int64]*domain.Plan)}
}

func (r *repo) Insert(ctx context.Context, plan *domain.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[plan.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.plans[plan.ID] = plan
	return nil
}

func (r *repo) FindByID(ctx context.Context, id int64) (*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plan, ok := r.plans[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

func (r *repo) List(ctx context.Context) ([]*domain.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Plan, 0, len(r.plans))
	for _, plan := range r.plans {
		out = append(out, plan)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
