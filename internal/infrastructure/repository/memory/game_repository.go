package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/league-admin/internal/domain/game"
)

// GameRepository validates every reference before mutating anything so a
// failed write leaves the store untouched.
type GameRepository struct {
	store *Store
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]game.Game, 0, len(r.store.games))
	for _, item := range r.store.games {
		out = append(out, r.summary(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].GameDate.Equal(out[j].GameDate) {
			return out[i].GameDate.After(out[j].GameDate)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, id int64) (game.Game, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.games[id]
	if !ok {
		return game.Game{}, false, nil
	}

	out := r.summary(item)
	out.Players = r.participantsOf(id)
	return out, true, nil
}

func (r *GameRepository) Create(_ context.Context, item game.Game, participants []game.Participant) (game.Game, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkGame(item); err != nil {
		return game.Game{}, err
	}
	if err := r.checkParticipants(participants); err != nil {
		return game.Game{}, err
	}

	item.ID = r.store.nextID(gamesTable)
	item.Players = nil
	r.store.games[item.ID] = item
	r.insertParticipants(item.ID, participants)
	return item, nil
}

func (r *GameRepository) Update(_ context.Context, item game.Game, participants []game.Participant, replaceParticipants bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.games[item.ID]
	if !ok {
		return nil
	}
	if err := r.checkGame(item); err != nil {
		return err
	}
	if replaceParticipants {
		if err := r.checkParticipants(participants); err != nil {
			return err
		}
	}

	item.CreatedAt = current.CreatedAt
	item.Players = nil
	r.store.games[item.ID] = item
	if replaceParticipants {
		r.deleteParticipants(item.ID)
		r.insertParticipants(item.ID, participants)
	}
	return nil
}

func (r *GameRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.games[id]; !ok {
		return false, nil
	}

	r.deleteParticipants(id)
	delete(r.store.games, id)
	return true, nil
}

func (r *GameRepository) checkGame(item game.Game) error {
	for _, id := range []int64{item.FirstPickID, item.SecondPickID, item.WinnerID} {
		if _, ok := r.store.teams[id]; !ok {
			return referenceViolation("team %d does not exist", id)
		}
	}
	if item.MapID != nil {
		if _, ok := r.store.maps[*item.MapID]; !ok {
			return referenceViolation("map %d does not exist", *item.MapID)
		}
	}
	return nil
}

func (r *GameRepository) checkParticipants(participants []game.Participant) error {
	seen := make(map[int64]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := r.store.players[p.PlayerID]; !ok {
			return referenceViolation("player %d does not exist", p.PlayerID)
		}
		if _, ok := r.store.civs[p.CivID]; !ok {
			return referenceViolation("civilization %d does not exist", p.CivID)
		}
		if _, ok := r.store.teams[p.TeamID]; !ok {
			return referenceViolation("team %d does not exist", p.TeamID)
		}
		if _, dup := seen[p.PlayerID]; dup {
			return uniqueViolation("player %d listed twice in one game", p.PlayerID)
		}
		seen[p.PlayerID] = struct{}{}
	}
	return nil
}

func (r *GameRepository) insertParticipants(gameID int64, participants []game.Participant) {
	for _, p := range participants {
		p.ID = r.store.nextID(participantsTable)
		p.GameID = gameID
		p.Player, p.Civ, p.Team = game.Ref{}, game.Ref{}, game.Ref{}
		r.store.participants[p.ID] = p
	}
}

func (r *GameRepository) deleteParticipants(gameID int64) {
	for id, p := range r.store.participants {
		if p.GameID == gameID {
			delete(r.store.participants, id)
		}
	}
}

func (r *GameRepository) participantsOf(gameID int64) []game.Participant {
	out := make([]game.Participant, 0)
	for _, p := range r.store.participants {
		if p.GameID != gameID {
			continue
		}
		p.Player = game.Ref{ID: p.PlayerID, Name: r.store.players[p.PlayerID].Name}
		p.Civ = game.Ref{ID: p.CivID, Name: r.store.civs[p.CivID].Name}
		p.Team = game.Ref{ID: p.TeamID, Name: r.store.teams[p.TeamID].Name}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *GameRepository) summary(item game.Game) game.Game {
	item.Players = nil
	item.FirstPick = game.Ref{ID: item.FirstPickID, Name: r.store.teams[item.FirstPickID].Name}
	item.SecondPick = game.Ref{ID: item.SecondPickID, Name: r.store.teams[item.SecondPickID].Name}
	item.Winner = game.Ref{ID: item.WinnerID, Name: r.store.teams[item.WinnerID].Name}
	item.Map = nil
	if item.MapID != nil {
		item.Map = &game.Ref{ID: *item.MapID, Name: r.store.maps[*item.MapID].Name}
	}
	return item
}
