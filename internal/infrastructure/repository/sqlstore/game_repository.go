package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-admin/internal/domain/game"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	qb "github.com/riskibarqy/league-admin/internal/platform/querybuilder"
)

// GameRepository persists games and their participant rows. Every write runs
// in a single transaction.
type GameRepository struct {
	session Session
}

func NewGameRepository(session Session) *GameRepository {
	return &GameRepository{session: session}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := selectGameSummaries().
		OrderBy("g.game_date DESC", "g.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameSummaryRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return game.Game{}, false, err
	}

	query, args, err := selectGameSummaries().Where(qb.Eq("g.id", id)).ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game query: %w", err)
	}

	var row gameSummaryRow
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game id=%d: %w", id, err)
	}

	participants, err := r.listParticipants(ctx, id)
	if err != nil {
		return game.Game{}, false, err
	}

	out := row.toDomain()
	out.Players = participants
	return out, true, nil
}

// listParticipants returns participants with names resolved, in insertion
// order.
func (r *GameRepository) listParticipants(ctx context.Context, gameID int64) ([]game.Participant, error) {
	db, err := r.session.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := qb.Select(participantColumns...).
		From("game_players gp").
		Join("players p ON p.id = gp.player_id").
		Join("civilizations c ON c.id = gp.civ_id").
		Join("teams t ON t.id = gp.team_id").
		Where(qb.Eq("gp.game_id", gameID)).
		OrderBy("gp.id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select game players query: %w", err)
	}

	var rows []participantRow
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select game players game=%d: %w", gameID, err)
	}

	out := make([]game.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *GameRepository) Create(ctx context.Context, item game.Game, participants []game.Participant) (game.Game, error) {
	err := inTx(ctx, r.session, "game create", func(tx *sqlx.Tx) error {
		query, args, err := qb.InsertModel("games", newGameTableModel(item), "RETURNING id")
		if err != nil {
			return fmt.Errorf("build insert game query: %w", err)
		}
		if err := tx.GetContext(ctx, &item.ID, query, args...); err != nil {
			return fmt.Errorf("insert game: %w", database.Classify(err))
		}

		return insertParticipants(ctx, tx, item.ID, participants)
	})
	if err != nil {
		return game.Game{}, err
	}

	return item, nil
}

func (r *GameRepository) Update(ctx context.Context, item game.Game, participants []game.Participant, replaceParticipants bool) error {
	return inTx(ctx, r.session, "game update", func(tx *sqlx.Tx) error {
		query, args, err := qb.UpdateModel("games", newGameTableModel(item), qb.Eq("id", item.ID))
		if err != nil {
			return fmt.Errorf("build update game query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update game id=%d: %w", item.ID, database.Classify(err))
		}

		if !replaceParticipants {
			return nil
		}
		if err := deleteParticipants(ctx, tx, item.ID); err != nil {
			return err
		}
		return insertParticipants(ctx, tx, item.ID, participants)
	})
}

func (r *GameRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := inTx(ctx, r.session, "game delete", func(tx *sqlx.Tx) error {
		query, args, err := qb.Select("id").From("games").Where(qb.Eq("id", id)).Limit(1).ToSQL()
		if err != nil {
			return fmt.Errorf("build game exists query: %w", err)
		}
		var found int64
		if err := tx.GetContext(ctx, &found, query, args...); err != nil {
			if isNotFound(err) {
				return nil
			}
			return fmt.Errorf("check game id=%d: %w", id, err)
		}

		if err := deleteParticipants(ctx, tx, id); err != nil {
			return err
		}

		query, args, err = qb.DeleteFrom("games").Where(qb.Eq("id", id)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete game query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete game id=%d: %w", id, database.Classify(err))
		}

		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

func insertParticipants(ctx context.Context, tx *sqlx.Tx, gameID int64, participants []game.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	builder := qb.InsertInto("game_players").
		Columns("game_id", "player_id", "civ_id", "team_id", "created_at", "updated_at")
	for _, p := range participants {
		row := newParticipantTableModel(gameID, p)
		builder.Values(row.GameID, row.PlayerID, row.CivID, row.TeamID, row.CreatedAt, row.UpdatedAt)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert game players query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert game players game=%d: %w", gameID, database.Classify(err))
	}

	return nil
}

func deleteParticipants(ctx context.Context, tx *sqlx.Tx, gameID int64) error {
	query, args, err := qb.DeleteFrom("game_players").Where(qb.Eq("game_id", gameID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete game players query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete game players game=%d: %w", gameID, err)
	}

	return nil
}

func selectGameSummaries() *qb.SelectBuilder {
	return qb.Select(gameSummaryColumns...).
		From("games g").
		Join("teams fp ON fp.id = g.first_pick_id").
		Join("teams sp ON sp.id = g.second_pick_id").
		Join("teams w ON w.id = g.winner_id").
		LeftJoin("maps m ON m.id = g.map_id")
}
