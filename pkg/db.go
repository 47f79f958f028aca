package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUndefinedTable      = "42P01"
	pgCodeUndefinedColumn     = "42703"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return pgErrorCode(err) == pgCodeUniqueViolation
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	return pgErrorCode(err) == pgCodeForeignKeyViolation
}

// IsUndefinedRelationError reports whether the query referenced a table or
// column the connected schema does not have.
func IsUndefinedRelationError(err error) bool {
	code := pgErrorCode(err)
	return code == pgCodeUndefinedTable || code == pgCodeUndefinedColumn
}
