package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/smallbiznis/railbill/internal/subscriber/domain"
)

type repo struct {
	mu   sync.RWMutex
	subs map[int64]*domain.Subscriber
}

func Provide() domain.Repository {
	return &repo{subs: make(map[int64]*domain.Subscriber)}
}

func (r *repo) Insert(ctx context.Context, sub *domain.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[sub.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.subs[sub.ID] = sub
	return nil
}

func (r *repo) FindByID(ctx context.Context, id int64) (*domain.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, ok := r.subs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sub, nil
}

func (r *repo) List(ctx context.Context) ([]*domain.Subscriber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Subscriber, 0, len(r.subs))
	for _, sub := range r.subs {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
