package game

import "context"

// Repository persists the game aggregate. Create, Update and Delete write the
// game row and its participant rows as one atomic unit.
type Repository interface {
	// List returns summaries (team and map names resolved, no participants)
	// ordered by game date descending.
	List(ctx context.Context) ([]Game, error)
	// GetByID returns the game with every participant name resolved.
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	Create(ctx context.Context, item Game, participants []Participant) (Game, error)
	// Update overwrites the game row. When replaceParticipants is true the
	// stored participant set is deleted and replaced by participants.
	Update(ctx context.Context, item Game, participants []Participant, replaceParticipants bool) error
	// Delete removes the participants and then the game. It reports false
	// without deleting anything when the game does not exist.
	Delete(ctx context.Context, id int64) (bool, error)
}
