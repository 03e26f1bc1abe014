package domain

import "context"

// Repository is an append-only, insertion-ordered invoice store. Insertion
// order equals creation order; reports depend on that for determinism.
type Repository interface {
	Append(ctx context.Context, invoice *Invoice) error
	List(ctx context.Context) ([]*Invoice, error)
}
