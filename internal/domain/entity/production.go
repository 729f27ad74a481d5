package entity

import "time"

// Tipos de operación de una línea de producción.
const (
	OperationCutting   = "cutting"
	OperationSewing    = "sewing"
	OperationWashing   = "washing"
	OperationFinishing = "finishing"
)

// Floor piso/nave de la planta.
type Floor struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Line línea de producción; pertenece a un Floor y hereda su empresa.
type Line struct {
	ID            string
	FloorID       string
	Name          string
	Description   string
	OperationType string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LineLocation línea con el nombre de su piso (para notificaciones y reportes).
type LineLocation struct {
	LineID        string
	LineName      string
	OperationType string
	FloorID       string
	FloorName     string
	CompanyID     string
}
