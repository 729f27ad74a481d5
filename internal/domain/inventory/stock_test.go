package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/inventory"
)

func TestApplyDelta_CompraSuma(t *testing.T) {
	got, err := inventory.ApplyDelta("p1", 3, inventory.PurchaseDelta(7))
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestApplyDelta_ConsumoExactoDejaCero(t *testing.T) {
	got, err := inventory.ApplyDelta("p1", 5, inventory.UsageDelta(5))
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestApplyDelta_ConsumoMayorAlStockFalla(t *testing.T) {
	got, err := inventory.ApplyDelta("p1", 2, inventory.UsageDelta(3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 2, got, "la cantidad no debe cambiar cuando falla")

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
}
