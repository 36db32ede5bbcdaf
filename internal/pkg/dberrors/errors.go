package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes of interest.
const (
	codeForeignKeyViolation = "23503"
)

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key
// violation error. Repositories translate these into domain errors: a
// dangling reference on write surfaces as not-found, a blocked delete as
// a conflict.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}
