package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const (
	codeUniqueViolation      = "23505"
	codeNumericValueOutRange = "22003"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}

// isOutOfRange verifica si una operación numérica excedió el rango del tipo (p. ej. BIGINT).
func isOutOfRange(err error) bool {
	return pgErrorCode(err) == codeNumericValueOutRange
}
