package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── MachinePart ──────────────────────────────────────────────────────────────

// CreateMachinePartRequest entrada para crear un repuesto. Quantity es el stock inicial.
type CreateMachinePartRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=255"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"min=0"`
}

// UpdateMachinePartRequest nombre y precio; la cantidad solo cambia por compras y consumos.
type UpdateMachinePartRequest struct {
	Name  *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Price *decimal.Decimal `json:"price"`
}

// MachinePartResponse salida de un repuesto.
type MachinePartResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MachinePartListResponse lista paginada.
type MachinePartListResponse struct {
	Items []MachinePartResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ── PurchaseItem ─────────────────────────────────────────────────────────────

// CreatePurchaseItemRequest compra de repuestos.
type CreatePurchaseItemRequest struct {
	Invoice           string `json:"invoice" validate:"required,min=1,max=100"`
	PartID            string `json:"part_id" validate:"required,uuid"`
	QuantityPurchased int    `json:"quantity_purchased" validate:"required,gt=0"`
}

// PurchaseItemResponse salida de una compra.
type PurchaseItemResponse struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	PartID            string    `json:"part_id"`
	Invoice           string    `json:"invoice"`
	QuantityPurchased int       `json:"quantity_purchased"`
	CreatedAt         time.Time `json:"created_at"`
}

// PurchaseItemListResponse lista paginada.
type PurchaseItemListResponse struct {
	Items []PurchaseItemResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ── PartsUsageRecord ─────────────────────────────────────────────────────────

// CreatePartsUsageRequest consumo de repuestos contra una parada.
type CreatePartsUsageRequest struct {
	PartID       string  `json:"part_id" validate:"required,uuid"`
	QuantityUsed int     `json:"quantity_used" validate:"required,gt=0"`
	Mechanic     string  `json:"mechanic" validate:"required,min=1,max=255"`
	BreakdownID  string  `json:"breakdown_id" validate:"required,uuid"`
	Remarks      *string `json:"remarks"`
}

// UpdatePartsUsageRequest solo las observaciones son editables.
type UpdatePartsUsageRequest struct {
	Remarks *string `json:"remarks"`
}

// PartsUsageResponse salida de un consumo.
type PartsUsageResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	PartID       string    `json:"part_id"`
	BreakdownID  string    `json:"breakdown_id"`
	QuantityUsed int       `json:"quantity_used"`
	UsageDate    time.Time `json:"usage_date"`
	Mechanic     string    `json:"mechanic"`
	Remarks      *string   `json:"remarks"`
}

// PartsUsageListResponse lista paginada.
type PartsUsageListResponse struct {
	Items []PartsUsageResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// TotalCostResponse costo de repuestos consumidos en una línea y rango de fechas.
type TotalCostResponse struct {
	TotalCost decimal.Decimal `json:"total_cost"`
}
