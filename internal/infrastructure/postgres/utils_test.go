package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCodigosSQLState(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: codeUniqueViolation})
	overflow := fmt.Errorf("add inventory: %w", &pgconn.PgError{Code: codeNumericValueOutRange})

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(overflow))
	assert.True(t, isOutOfRange(overflow))
	assert.False(t, isOutOfRange(unique))

	// Un texto con el código no es un error de PostgreSQL.
	assert.False(t, isUniqueViolation(errors.New("ERROR 23505")))
}
