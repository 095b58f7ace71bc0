package postgres

import (
	"errors"
	"testing"

	"go-recruitment-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows), domain.ErrNotFound)

	dup := mapError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "prospectos_correo_key"})
	assert.ErrorIs(t, dup, domain.ErrDuplicate)
	assert.Contains(t, dup.Error(), "prospectos_correo_key")

	fk := mapError(&pgconn.PgError{Code: pgForeignKeyViolation})
	assert.ErrorIs(t, fk, domain.ErrReferenced)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapError(other))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%Desarrollo%", containsPattern("Desarrollo"))
	assert.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}
