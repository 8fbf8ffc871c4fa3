package gamemap

import "context"

type Repository interface {
	List(ctx context.Context) ([]Map, error)
	GetByID(ctx context.Context, id int64) (Map, bool, error)
	Create(ctx context.Context, item Map) (Map, error)
	Update(ctx context.Context, item Map) error
	Delete(ctx context.Context, id int64) (bool, error)
}
