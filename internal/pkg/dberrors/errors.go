package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes interpreted by the repositories.
const (
	uniqueViolationCode = "23505"
)

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique
// violation for a specific constraint. The transactional write paths use
// this to turn a raced constraint violation into the matching domain
// conflict instead of a generic write error.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation checks if the error is any PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
