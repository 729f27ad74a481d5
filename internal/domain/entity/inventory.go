package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MachinePart repuesto en inventario. Quantity solo cambia vía compras y consumos.
type MachinePart struct {
	ID        string
	CompanyID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PurchaseItem compra de repuestos; suma QuantityPurchased al stock. Sin actualización.
type PurchaseItem struct {
	ID                string
	CompanyID         string
	PartID            string
	Invoice           string
	QuantityPurchased int
	CreatedAt         time.Time
}

// PartsUsageRecord consumo de repuestos contra una parada; resta QuantityUsed del stock.
type PartsUsageRecord struct {
	ID           string
	CompanyID    string
	PartID       string
	BreakdownID  string
	QuantityUsed int
	UsageDate    time.Time
	Mechanic     string
	Remarks      *string
}
