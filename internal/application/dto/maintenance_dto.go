package dto

import (
	"time"

	"github.com/jhoicas/factory-ops-api/internal/domain/maintenance"
)

// ── ProblemCategoryType ──────────────────────────────────────────────────────

// ProblemCategoryTypeRequest entrada de creación.
type ProblemCategoryTypeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateProblemCategoryTypeRequest campos opcionales.
type UpdateProblemCategoryTypeRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ProblemCategoryTypeResponse salida.
type ProblemCategoryTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProblemCategoryTypeListResponse lista paginada.
type ProblemCategoryTypeListResponse struct {
	Items []ProblemCategoryTypeResponse `json:"items"`
	Page  PageResponse                  `json:"page"`
}

// ── ProblemCategory ──────────────────────────────────────────────────────────

// ProblemCategoryRequest entrada de creación.
type ProblemCategoryRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=100"`
	Description    string  `json:"description"`
	Severity       string  `json:"severity" validate:"omitempty,oneof=minor major critical"`
	CategoryTypeID *string `json:"category_type_id" validate:"omitempty,uuid"`
}

// UpdateProblemCategoryRequest campos opcionales.
type UpdateProblemCategoryRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description    *string `json:"description"`
	Severity       *string `json:"severity" validate:"omitempty,oneof=minor major critical"`
	CategoryTypeID *string `json:"category_type_id" validate:"omitempty,uuid"`
}

// ProblemCategoryResponse salida.
type ProblemCategoryResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Severity       string  `json:"severity"`
	CategoryTypeID *string `json:"category_type_id"`
}

// ProblemCategoryListResponse lista paginada.
type ProblemCategoryListResponse struct {
	Items []ProblemCategoryResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// ── BreakdownLog ─────────────────────────────────────────────────────────────

// CreateBreakdownLogRequest entrada para registrar una parada. lost_time en H:MM:SS.
type CreateBreakdownLogRequest struct {
	MachineID         *string              `json:"machine_id" validate:"omitempty,uuid"`
	MechanicID        *string              `json:"mechanic_id" validate:"omitempty,uuid"`
	OperatorID        *string              `json:"operator_id" validate:"omitempty,uuid"`
	ProblemCategoryID *string              `json:"problem_category_id" validate:"omitempty,uuid"`
	LineID            *string              `json:"line_id" validate:"omitempty,uuid"`
	BreakdownStart    time.Time            `json:"breakdown_start" validate:"required"`
	RepairingStart    *time.Time           `json:"repairing_start"`
	LostTime          maintenance.Duration `json:"lost_time"`
	Comments          string               `json:"comments"`
}

// UpdateBreakdownLogRequest campos opcionales.
type UpdateBreakdownLogRequest struct {
	MachineID         *string               `json:"machine_id" validate:"omitempty,uuid"`
	MechanicID        *string               `json:"mechanic_id" validate:"omitempty,uuid"`
	OperatorID        *string               `json:"operator_id" validate:"omitempty,uuid"`
	ProblemCategoryID *string               `json:"problem_category_id" validate:"omitempty,uuid"`
	LineID            *string               `json:"line_id" validate:"omitempty,uuid"`
	BreakdownStart    *time.Time            `json:"breakdown_start"`
	RepairingStart    *time.Time            `json:"repairing_start"`
	LostTime          *maintenance.Duration `json:"lost_time"`
	Comments          *string               `json:"comments"`
}

// BreakdownLogResponse salida de una parada.
type BreakdownLogResponse struct {
	ID                string               `json:"id"`
	CompanyID         string               `json:"company_id"`
	MachineID         *string              `json:"machine_id"`
	MechanicID        *string              `json:"mechanic_id"`
	OperatorID        *string              `json:"operator_id"`
	ProblemCategoryID *string              `json:"problem_category_id"`
	LineID            *string              `json:"line_id"`
	BreakdownStart    time.Time            `json:"breakdown_start"`
	RepairingStart    *time.Time           `json:"repairing_start"`
	LostTime          maintenance.Duration `json:"lost_time"`
	Comments          string               `json:"comments"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// BreakdownLogListResponse lista paginada.
type BreakdownLogListResponse struct {
	Items []BreakdownLogResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
