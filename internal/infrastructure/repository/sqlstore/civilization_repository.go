package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	qb "github.com/riskibarqy/league-admin/internal/platform/querybuilder"
)

type CivilizationRepository struct {
	session Session
}

func NewCivilizationRepository(session Session) *CivilizationRepository {
	return &CivilizationRepository{session: session}
}

func (r *CivilizationRepository) List(ctx context.Context) ([]civilization.Civilization, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(civilizationColumns...).From("civilizations").
		OrderBy("name ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select civilizations query: %w", err)
	}

	var rows []civilizationTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select civilizations: %w", err)
	}

	out := make([]civilization.Civilization, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *CivilizationRepository) GetByID(ctx context.Context, id int64) (civilization.Civilization, bool, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return civilization.Civilization{}, false, err
	}

	query, args, err := qb.Select(civilizationColumns...).From("civilizations").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return civilization.Civilization{}, false, fmt.Errorf("build select civilization query: %w", err)
	}

	var row civilizationTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return civilization.Civilization{}, false, nil
		}
		return civilization.Civilization{}, false, fmt.Errorf("get civilization id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *CivilizationRepository) Create(ctx context.Context, item civilization.Civilization) (civilization.Civilization, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return civilization.Civilization{}, err
	}

	query, args, err := qb.InsertModel("civilizations", newCivilizationTableModel(item), "RETURNING id")
	if err != nil {
		return civilization.Civilization{}, fmt.Errorf("build insert civilization query: %w", err)
	}

	if err := db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return civilization.Civilization{}, fmt.Errorf("insert civilization: %w", database.Classify(err))
	}

	return item, nil
}

func (r *CivilizationRepository) Update(ctx context.Context, item civilization.Civilization) error {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return err
	}

	query, args, err := qb.UpdateModel("civilizations", newCivilizationTableModel(item), qb.Eq("id", item.ID))
	if err != nil {
		return fmt.Errorf("build update civilization query: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update civilization id=%d: %w", item.ID, database.Classify(err))
	}

	return nil
}

func (r *CivilizationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.session, "civilizations", id)
}
