package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Storage-level error classes. Services translate these into their own
// taxonomy; nothing above the repository layer inspects pg error codes.
var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint rejected the write. The
	// constraint is the final arbiter for racing pre-checks, so this must
	// surface as the same conflict the pre-check would have reported.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced means a foreign key rejected a delete because dependent
	// rows still point at the row.
	ErrReferenced = errors.New("record still referenced")
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// translateErr maps pgx-level failures onto the repository error classes.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return ErrDuplicate
		case foreignKeyViolationCode:
			return ErrReferenced
		}
	}
	return err
}
