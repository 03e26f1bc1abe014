package repository

import (
	"context"
	"sync"

	"github.com/smallbiznis/railbill/internal/invoice/domain"
)

type repo struct {
	mu       sync.RWMutex
	invoices []*domain.Invoice
}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Append(ctx context.Context, invoice *domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *repo) List(ctx context.Context) ([]*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}
