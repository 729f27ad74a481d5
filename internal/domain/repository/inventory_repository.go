package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// MachinePartRepository persistencia de repuestos (usable con pool o tx).
type MachinePartRepository interface {
	Create(ctx context.Context, p *entity.MachinePart) error
	GetByID(ctx context.Context, id string) (*entity.MachinePart, error)
	// GetForUpdate lee el repuesto bloqueando su fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.MachinePart, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	// Update modifica nombre y precio; la cantidad solo cambia vía UpdateQuantity.
	Update(ctx context.Context, p *entity.MachinePart) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.MachinePart, error)
	// Delete devuelve domain.ErrReferentialIntegrity si hay consumos que lo referencian.
	Delete(ctx context.Context, id string) error
}

// PurchaseItemRepository persistencia de compras de repuestos.
type PurchaseItemRepository interface {
	Create(ctx context.Context, p *entity.PurchaseItem) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseItem, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.PurchaseItem, error)
	Delete(ctx context.Context, id string) error
}

// PartsUsageRecordRepository persistencia de consumos de repuestos.
type PartsUsageRecordRepository interface {
	Create(ctx context.Context, r *entity.PartsUsageRecord) error
	GetByID(ctx context.Context, id string) (*entity.PartsUsageRecord, error)
	UpdateRemarks(ctx context.Context, id string, remarks *string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.PartsUsageRecord, error)
	Delete(ctx context.Context, id string) error
	// TotalCost suma quantity_used * price de los consumos cuyas paradas están en lineID
	// y empezaron en [from, to).
	TotalCost(ctx context.Context, companyID, lineID string, from, to time.Time) (decimal.Decimal, error)
}
