package player

import "context"

// Repository describes player persistence needs from use cases.
// List and GetByID resolve the owning team name.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) error
	Delete(ctx context.Context, id int64) (bool, error)
}
