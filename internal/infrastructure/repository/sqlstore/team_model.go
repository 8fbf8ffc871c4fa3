package sqlstore

import (
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/team"
)

var teamColumns = []string{"id", "name", "created_at", "updated_at"}

type teamTableModel struct {
	ID        int64     `db:"id,auto"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at,immutable"`
	UpdatedAt time.Time `db:"updated_at"`
}

func newTeamTableModel(item team.Team) teamTableModel {
	return teamTableModel{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: utc(item.CreatedAt),
		UpdatedAt: utc(item.UpdatedAt),
	}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: utc(m.CreatedAt),
		UpdatedAt: utc(m.UpdatedAt),
	}
}
