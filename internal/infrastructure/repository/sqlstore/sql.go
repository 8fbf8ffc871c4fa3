package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-admin/internal/platform/database"
	qb "github.com/riskibarqy/league-admin/internal/platform/querybuilder"
)

// Session hands out the shared database handle. *database.Gateway
// satisfies it.
type Session interface {
	Acquire(ctx context.Context) (*sqlx.DB, error)
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// inTx runs fn inside one transaction. Any error rolls the whole unit back.
func inTx(ctx context.Context, session Session, name string, fn func(tx *sqlx.Tx) error) error {
	db, err := session.Acquire(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for %s: %w", name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s tx: %w", name, database.Classify(err))
	}

	return nil
}

func deleteByID(ctx context.Context, session Session, table string, id int64) (bool, error) {
	db, err := session.Acquire(ctx)
	if err != nil {
		return false, err
	}

	query, args, err := qb.DeleteFrom(table).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete %s query: %w", table, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete %s id=%d: %w", table, id, database.Classify(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s id=%d rows affected: %w", table, id, err)
	}

	return affected > 0, nil
}

func utc(t time.Time) time.Time {
	return t.UTC()
}
