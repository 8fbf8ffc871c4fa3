package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	qb "github.com/riskibarqy/league-admin/internal/platform/querybuilder"
)

type MapRepository struct {
	session Session
}

func NewMapRepository(session Session) *MapRepository {
	return &MapRepository{session: session}
}

func (r *MapRepository) List(ctx context.Context) ([]gamemap.Map, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(mapColumns...).From("maps").
		OrderBy("name ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select maps query: %w", err)
	}

	var rows []mapTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select maps: %w", err)
	}

	out := make([]gamemap.Map, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MapRepository) GetByID(ctx context.Context, id int64) (gamemap.Map, bool, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return gamemap.Map{}, false, err
	}

	query, args, err := qb.Select(mapColumns...).From("maps").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return gamemap.Map{}, false, fmt.Errorf("build select map query: %w", err)
	}

	var row mapTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gamemap.Map{}, false, nil
		}
		return gamemap.Map{}, false, fmt.Errorf("get map id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *MapRepository) Create(ctx context.Context, item gamemap.Map) (gamemap.Map, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return gamemap.Map{}, err
	}

	query, args, err := qb.InsertModel("maps", newMapTableModel(item), "RETURNING id")
	if err != nil {
		return gamemap.Map{}, fmt.Errorf("build insert map query: %w", err)
	}

	if err := db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return gamemap.Map{}, fmt.Errorf("insert map: %w", database.Classify(err))
	}

	return item, nil
}

func (r *MapRepository) Update(ctx context.Context, item gamemap.Map) error {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return err
	}

	query, args, err := qb.UpdateModel("maps", newMapTableModel(item), qb.Eq("id", item.ID))
	if err != nil {
		return fmt.Errorf("build update map query: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update map id=%d: %w", item.ID, database.Classify(err))
	}

	return nil
}

func (r *MapRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.session, "maps", id)
}
