package sqlstore

import (
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/civilization"
)

var civilizationColumns = []string{"id", "name", "description", "created_at", "updated_at"}

type civilizationTableModel struct {
	ID          int64     `db:"id,auto"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at,immutable"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func newCivilizationTableModel(item civilization.Civilization) civilizationTableModel {
	return civilizationTableModel{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   utc(item.CreatedAt),
		UpdatedAt:   utc(item.UpdatedAt),
	}
}

func (m civilizationTableModel) toDomain() civilization.Civilization {
	return civilization.Civilization{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   utc(m.CreatedAt),
		UpdatedAt:   utc(m.UpdatedAt),
	}
}
