package game

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Game, error)
	FilterOptions(ctx context.Context) (FilterOptions, error)
	Summary(ctx context.Context, filter Filter) (Summary, error)
}
