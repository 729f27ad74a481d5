package dto

import "time"

// CatalogItemRequest entrada para crear/actualizar una categoría, tipo, marca o proveedor.
type CatalogItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=30"`
}

// CatalogItemResponse salida de una entrada de taxonomía.
type CatalogItemResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CatalogListResponse lista paginada.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
