package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// unique_violation: choca con los índices únicos de slug, username, nombres
// de catálogo, etc.
const uniqueViolationCode = "23505"

// isUniqueViolation reporta si el error proviene de un constraint único.
// Los repositorios lo traducen a domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return strings.Contains(err.Error(), uniqueViolationCode)
}
