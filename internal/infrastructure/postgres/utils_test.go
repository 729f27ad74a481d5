package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/factory-ops-api/internal/domain"
)

func TestIsNoRows_IDMalFormado(t *testing.T) {
	assert.True(t, isNoRows(pgx.ErrNoRows))
	assert.True(t, isNoRows(fmt.Errorf("scan: %w", &pgconn.PgError{Code: "22P02"})), "uuid inválido equivale a no encontrado")
	assert.False(t, isNoRows(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isNoRows(errors.New("conexión cerrada")))
}

func TestWriteErr_Mapeo(t *testing.T) {
	assert.NoError(t, writeErr("op", nil))
	assert.ErrorIs(t, writeErr("create", &pgconn.PgError{Code: "23505"}), domain.ErrDuplicate)
	assert.ErrorIs(t, writeErr("delete", &pgconn.PgError{Code: "23503"}), domain.ErrReferentialIntegrity)
	assert.ErrorIs(t, writeErr("create", &pgconn.PgError{Code: "22P02"}), domain.ErrInvalidInput)

	err := writeErr("update", errors.New("timeout"))
	assert.EqualError(t, err, "update: timeout")
}
