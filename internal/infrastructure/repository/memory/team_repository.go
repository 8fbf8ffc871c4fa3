package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/league-admin/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.Team, 0, len(r.store.teams))
	for _, item := range r.store.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID(teamsTable)
	r.store.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.teams[item.ID]
	if !ok {
		return nil
	}
	item.CreatedAt = current.CreatedAt
	r.store.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[id]; !ok {
		return false, nil
	}
	for _, p := range r.store.players {
		if p.TeamID == id {
			return false, referenceViolation("team %d is referenced by player %d", id, p.ID)
		}
	}
	for _, g := range r.store.games {
		if g.FirstPickID == id || g.SecondPickID == id || g.WinnerID == id {
			return false, referenceViolation("team %d is referenced by game %d", id, g.ID)
		}
	}
	for _, gp := range r.store.participants {
		if gp.TeamID == id {
			return false, referenceViolation("team %d is referenced by game player %d", id, gp.ID)
		}
	}

	delete(r.store.teams, id)
	return true, nil
}
