package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/domain/team"
)

type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, len(r.store.players))
	for _, item := range r.store.players {
		out = append(out, r.withTeam(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[id]
	if !ok {
		return player.Player{}, false, nil
	}
	return r.withTeam(item), true, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[item.TeamID]; !ok {
		return player.Player{}, referenceViolation("team %d does not exist", item.TeamID)
	}

	item.ID = r.store.nextID(playersTable)
	item.Team = team.Ref{}
	r.store.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.players[item.ID]
	if !ok {
		return nil
	}
	if _, ok := r.store.teams[item.TeamID]; !ok {
		return referenceViolation("team %d does not exist", item.TeamID)
	}

	item.CreatedAt = current.CreatedAt
	item.Team = team.Ref{}
	r.store.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[id]; !ok {
		return false, nil
	}
	for _, gp := range r.store.participants {
		if gp.PlayerID == id {
			return false, referenceViolation("player %d is referenced by game player %d", id, gp.ID)
		}
	}

	delete(r.store.players, id)
	return true, nil
}

func (r *PlayerRepository) withTeam(item player.Player) player.Player {
	item.Team = team.Ref{ID: item.TeamID, Name: r.store.teams[item.TeamID].Name}
	return item
}
