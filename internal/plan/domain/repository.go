package domain

import "context"

type Repository interface {
	Insert(ctx context.Context, plan *Plan) error
	FindByID(ctx context.Context, id int64) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
}
