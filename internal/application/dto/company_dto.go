package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=255"`
	IndustryType string  `json:"industry_type" validate:"omitempty,oneof=RMG Textiles Other"`
	About        string  `json:"about"`
	Address      string  `json:"address"`
	Contacts     string  `json:"contacts"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Website      string  `json:"website" validate:"omitempty,url"`
	Notes        string  `json:"notes"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=255"`
	IndustryType *string `json:"industry_type" validate:"omitempty,oneof=RMG Textiles Other"`
	About        *string `json:"about"`
	Address      *string `json:"address"`
	Contacts     *string `json:"contacts"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Website      *string `json:"website" validate:"omitempty,url"`
	Notes        *string `json:"notes"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IndustryType string    `json:"industry_type"`
	About        string    `json:"about"`
	Address      string    `json:"address"`
	Contacts     string    `json:"contacts"`
	Email        *string   `json:"email"`
	Website      string    `json:"website"`
	Notes        string    `json:"notes"`
	CreatedAt    Date      `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
