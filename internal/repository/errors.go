package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation     = "23505"
	PgErrForeignKeyViolation = "23503"
	PgErrSerializationFail   = "40001"
	PgErrDeadlockDetected    = "40P01"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsSerializationFailure reports whether the error is a transaction conflict
// that is safe to retry with the same arguments.
func IsSerializationFailure(err error) bool {
	return IsPgErrorWithCode(err, PgErrSerializationFail) ||
		IsPgErrorWithCode(err, PgErrDeadlockDetected)
}
