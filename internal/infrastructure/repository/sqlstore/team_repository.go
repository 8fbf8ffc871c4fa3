package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-admin/internal/domain/team"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	qb "github.com/riskibarqy/league-admin/internal/platform/querybuilder"
)

type TeamRepository struct {
	session Session
}

func NewTeamRepository(session Session) *TeamRepository {
	return &TeamRepository{session: session}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(teamColumns...).From("teams").
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return team.Team{}, false, err
	}

	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return team.Team{}, err
	}

	query, args, err := qb.InsertModel("teams", newTeamTableModel(item), "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	if err := db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", database.Classify(err))
	}

	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return err
	}

	query, args, err := qb.UpdateModel("teams", newTeamTableModel(item), qb.Eq("id", item.ID))
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team id=%d: %w", item.ID, database.Classify(err))
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.session, "teams", id)
}
