package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// Code returns the SQLSTATE of a PostgreSQL error, or "" for anything else.
func Code(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.Code
	}
	return ""
}

// ConstraintName returns the violated constraint of a PostgreSQL error.
func ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}

// IsUniqueViolation checks for a unique_violation on any constraint.
func IsUniqueViolation(err error) bool {
	return Code(err) == UniqueViolation
}

// IsForeignKeyViolation checks for a foreign_key_violation on any constraint.
func IsForeignKeyViolation(err error) bool {
	return Code(err) == ForeignKeyViolation
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	return IsUniqueViolation(err) && ConstraintName(err) == constraintName
}

// IsCheckConstraintError checks for a check_violation on the named constraint.
func IsCheckConstraintError(err error, constraintName string) bool {
	return Code(err) == CheckViolation && ConstraintName(err) == constraintName
}
