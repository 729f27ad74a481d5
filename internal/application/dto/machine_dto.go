package dto

import "time"

// CreateMachineRequest entrada para crear una máquina.
type CreateMachineRequest struct {
	MachineID          string     `json:"machine_id" validate:"required,min=1,max=100"`
	CategoryID         *string    `json:"category_id" validate:"omitempty,uuid"`
	TypeID             *string    `json:"type_id" validate:"omitempty,uuid"`
	BrandID            *string    `json:"brand_id" validate:"omitempty,uuid"`
	SupplierID         *string    `json:"supplier_id" validate:"omitempty,uuid"`
	ModelNumber        string     `json:"model_number" validate:"max=100"`
	SerialNo           string     `json:"serial_no" validate:"max=100"`
	LineID             *string    `json:"line_id" validate:"omitempty,uuid"`
	Sequence           int        `json:"sequence" validate:"min=0,max=32767"`
	PurchaseDate       *Date      `json:"purchase_date"`
	LastBreakdownStart *time.Time `json:"last_breakdown_start"`
	LastRepairingStart *time.Time `json:"last_repairing_start"`
	MechanicID         *string    `json:"mechanic_id" validate:"omitempty,uuid"`
	OperatorID         *string    `json:"operator_id" validate:"omitempty,uuid"`
	LastProblem        string     `json:"last_problem"`
	Status             string     `json:"status" validate:"omitempty,oneof=active inactive maintenance broken"`
}

// UpdateMachineRequest campos opcionales (PUT y PATCH).
type UpdateMachineRequest struct {
	MachineID          *string    `json:"machine_id" validate:"omitempty,min=1,max=100"`
	CategoryID         *string    `json:"category_id" validate:"omitempty,uuid"`
	TypeID             *string    `json:"type_id" validate:"omitempty,uuid"`
	BrandID            *string    `json:"brand_id" validate:"omitempty,uuid"`
	SupplierID         *string    `json:"supplier_id" validate:"omitempty,uuid"`
	ModelNumber        *string    `json:"model_number" validate:"omitempty,max=100"`
	SerialNo           *string    `json:"serial_no" validate:"omitempty,max=100"`
	LineID             *string    `json:"line_id" validate:"omitempty,uuid"`
	Sequence           *int       `json:"sequence" validate:"omitempty,min=0,max=32767"`
	PurchaseDate       *Date      `json:"purchase_date"`
	LastBreakdownStart *time.Time `json:"last_breakdown_start"`
	LastRepairingStart *time.Time `json:"last_repairing_start"`
	MechanicID         *string    `json:"mechanic_id" validate:"omitempty,uuid"`
	OperatorID         *string    `json:"operator_id" validate:"omitempty,uuid"`
	LastProblem        *string    `json:"last_problem"`
	Status             *string    `json:"status" validate:"omitempty,oneof=active inactive maintenance broken"`
}

// MachineResponse salida de una máquina con nombres de taxonomía y ubicación.
type MachineResponse struct {
	ID                 string     `json:"id"`
	CompanyID          string     `json:"company_id"`
	MachineID          string     `json:"machine_id"`
	CategoryID         *string    `json:"category_id"`
	Category           string     `json:"category"`
	TypeID             *string    `json:"type_id"`
	Type               string     `json:"type"`
	BrandID            *string    `json:"brand_id"`
	Brand              string     `json:"brand"`
	SupplierID         *string    `json:"supplier_id"`
	Supplier           string     `json:"supplier"`
	ModelNumber        string     `json:"model_number"`
	SerialNo           string     `json:"serial_no"`
	LineID             *string    `json:"line_id"`
	Line               string     `json:"line"`
	Floor              string     `json:"floor"`
	Sequence           int        `json:"sequence"`
	PurchaseDate       *Date      `json:"purchase_date"`
	LastBreakdownStart *time.Time `json:"last_breakdown_start"`
	LastRepairingStart *time.Time `json:"last_repairing_start"`
	MechanicID         *string    `json:"mechanic_id"`
	OperatorID         *string    `json:"operator_id"`
	LastProblem        string     `json:"last_problem"`
	Status             string     `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// MachineListResponse lista paginada con total.
type MachineListResponse struct {
	Items []MachineResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
