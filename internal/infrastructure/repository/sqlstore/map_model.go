package sqlstore

import (
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
)

var mapColumns = []string{"id", "name", "created_at", "updated_at"}

type mapTableModel struct {
	ID        int64     `db:"id,auto"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at,immutable"`
	UpdatedAt time.Time `db:"updated_at"`
}

func newMapTableModel(item gamemap.Map) mapTableModel {
	return mapTableModel{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: utc(item.CreatedAt),
		UpdatedAt: utc(item.UpdatedAt),
	}
}

func (m mapTableModel) toDomain() gamemap.Map {
	return gamemap.Map{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: utc(m.CreatedAt),
		UpdatedAt: utc(m.UpdatedAt),
	}
}
