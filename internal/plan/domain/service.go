package domain

import (
	"context"
	"errors"
)

type CreatePlanRequest struct {
	ID           int64
	Kind         Kind
	Name         string
	MonthlyPrice float64
	Features     string
	TrialDays    int
}

type UpdatePlanRequest struct {
	Name         *string
	MonthlyPrice *float64
	Features     *string
	TrialDays    *int
}

type Service interface {
	Create(ctx context.Context, req CreatePlanRequest) (*Plan, error)
	Get(ctx context.Context, id int64) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, id int64, req UpdatePlanRequest) (*Plan, error)
}

var (
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidPrice     = errors.New("invalid_price")
	ErrInvalidTrialDays = errors.New("invalid_trial_days")
	ErrInvalidKind      = errors.New("invalid_kind")
	ErrDuplicateID      = errors.New("duplicate_id")
	ErrNotFound         = errors.New("not_found")
)
