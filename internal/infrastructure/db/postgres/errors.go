package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgIntegrityViolationClass = "23"

// IsPgIntegrityViolation reports any SQLSTATE class 23 error: unique,
// foreign key, not null and check violations.
func IsPgIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == pgIntegrityViolationClass
}
