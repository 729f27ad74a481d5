package inventory

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de stock: si fn devuelve error no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.MachinePartRepository,
		purchaseRepo repository.PurchaseItemRepository,
		usageRepo repository.PartsUsageRecordRepository,
	) error) error
}
