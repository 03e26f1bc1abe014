package domain

import "context"

type Repository interface {
	Insert(ctx context.Context, sub *Subscriber) error
	FindByID(ctx context.Context, id int64) (*Subscriber, error)
	List(ctx context.Context) ([]*Subscriber, error)
}
