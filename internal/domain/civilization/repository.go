package civilization

import "context"

type Repository interface {
	List(ctx context.Context) ([]Civilization, error)
	GetByID(ctx context.Context, id int64) (Civilization, bool, error)
	Create(ctx context.Context, item Civilization) (Civilization, error)
	Update(ctx context.Context, item Civilization) error
	Delete(ctx context.Context, id int64) (bool, error)
}
