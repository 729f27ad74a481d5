package dto

import "time"

// CreateFloorRequest entrada para crear un piso.
type CreateFloorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateFloorRequest campos opcionales.
type UpdateFloorRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// FloorResponse salida de un piso.
type FloorResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FloorListResponse lista paginada.
type FloorListResponse struct {
	Items []FloorResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateLineRequest entrada para crear una línea.
type CreateLineRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	Description   string `json:"description"`
	OperationType string `json:"operation_type" validate:"required,oneof=cutting sewing washing finishing"`
	FloorID       string `json:"floor_id" validate:"required,uuid"`
}

// UpdateLineRequest campos opcionales.
type UpdateLineRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string `json:"description"`
	OperationType *string `json:"operation_type" validate:"omitempty,oneof=cutting sewing washing finishing"`
	FloorID       *string `json:"floor_id" validate:"omitempty,uuid"`
}

// LineResponse salida de una línea.
type LineResponse struct {
	ID            string    `json:"id"`
	FloorID       string    `json:"floor_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	OperationType string    `json:"operation_type"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LineListResponse lista paginada.
type LineListResponse struct {
	Items []LineResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
