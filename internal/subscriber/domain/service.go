package domain

import (
	"context"
	"errors"

	plandomain "github.com/smallbiznis/railbill/internal/plan/domain"
)

type CreateSubscriberRequest struct {
	ID    int64
	Name  string
	Email string
	Plan  *plandomain.Plan
}

type Service interface {
	Create(ctx context.Context, req CreateSubscriberRequest) (*Subscriber, error)
	Get(ctx context.Context, id int64) (*Subscriber, error)
	List(ctx context.Context) ([]*Subscriber, error)

	// ChangePlan unconditionally replaces the subscriber's plan and
	// announces the transition. It never fails for a known subscriber.
	ChangePlan(ctx context.Context, sub *Subscriber, newPlan *plandomain.Plan) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrMissingPlan = errors.New("missing_plan")
	ErrDuplicateID = errors.New("duplicate_id")
	ErrNotFound    = errors.New("not_found")
)
