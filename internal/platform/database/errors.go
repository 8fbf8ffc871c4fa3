package database

import (
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrUniqueViolation    = crerr.New("unique constraint violation")
	ErrReferenceViolation = crerr.New("foreign key constraint violation")
)

const (
	pqUniqueViolation     pq.ErrorCode = "23505"
	pqForeignKeyViolation pq.ErrorCode = "23503"
)

// Classify marks driver constraint errors with ErrUniqueViolation or
// ErrReferenceViolation. Other errors are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return crerr.Mark(err, ErrUniqueViolation)
		case pqForeignKeyViolation:
			return crerr.Mark(err, ErrReferenceViolation)
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return crerr.Mark(err, ErrUniqueViolation)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return crerr.Mark(err, ErrReferenceViolation)
		}
	}

	return err
}

func IsUniqueViolation(err error) bool {
	return crerr.Is(err, ErrUniqueViolation)
}

func IsReferenceViolation(err error) bool {
	return crerr.Is(err, ErrReferenceViolation)
}
