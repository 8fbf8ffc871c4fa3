package sqlstore

import (
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/domain/team"
)

var playerColumns = []string{
	"p.id", "p.name", "p.team_id", "p.created_at", "p.updated_at",
	"t.name AS team_name",
}

type playerTableModel struct {
	ID        int64     `db:"id,auto"`
	Name      string    `db:"name"`
	TeamID    int64     `db:"team_id"`
	CreatedAt time.Time `db:"created_at,immutable"`
	UpdatedAt time.Time `db:"updated_at"`
}

type playerRow struct {
	playerTableModel
	TeamName string `db:"team_name"`
}

func newPlayerTableModel(item player.Player) playerTableModel {
	return playerTableModel{
		ID:        item.ID,
		Name:      item.Name,
		TeamID:    item.TeamID,
		CreatedAt: utc(item.CreatedAt),
		UpdatedAt: utc(item.UpdatedAt),
	}
}

func (r playerRow) toDomain() player.Player {
	return player.Player{
		ID:        r.ID,
		Name:      r.Name,
		TeamID:    r.TeamID,
		Team:      team.Ref{ID: r.TeamID, Name: r.TeamName},
		CreatedAt: utc(r.CreatedAt),
		UpdatedAt: utc(r.UpdatedAt),
	}
}
