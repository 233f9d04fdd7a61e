// file: internals/helpers/pg_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsForeignKeyViolation reports whether err is a Postgres 23503
// (foreign_key_violation). Deletes of referenced master rows surface this;
// the caller turns it into the "Ação Bloqueada" message instead of a 500.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	// string fallback (lib/pq or wrapped drivers)
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23503") || strings.Contains(msg, "foreign key")
}

// IsUniqueViolation reports whether err is a Postgres 23505
// (unique_violation), optionally scoped to a constraint name.
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return false
		}
		if constraint == "" {
			return true
		}
		return strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraint))
	}
	msg := strings.ToLower(err.Error())
	is23505 := strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
	if !is23505 {
		return false
	}
	if constraint == "" {
		return true
	}
	return strings.Contains(msg, strings.ToLower(constraint))
}
