package sqlstore

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	qb "github.com/riskibarqy/league-admin/internal/platform/querybuilder"
)

type PlayerRepository struct {
	session Session
}

func NewPlayerRepository(session Session) *PlayerRepository {
	return &PlayerRepository{session: session}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := selectPlayers().
		OrderBy("p.created_at DESC", "p.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return player.Player{}, false, err
	}

	query, args, err := selectPlayers().Where(qb.Eq("p.id", id)).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerRow
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player id=%d: %w", id, err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return player.Player{}, err
	}

	query, args, err := qb.InsertModel("players", newPlayerTableModel(item), "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	if err := db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", database.Classify(err))
	}

	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return err
	}

	query, args, err := qb.UpdateModel("players", newPlayerTableModel(item), qb.Eq("id", item.ID))
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player id=%d: %w", item.ID, database.Classify(err))
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.session, "players", id)
}

func selectPlayers() *qb.SelectBuilder {
	return qb.Select(playerColumns...).
		From("players p").
		Join("teams t ON t.id = p.team_id")
}
