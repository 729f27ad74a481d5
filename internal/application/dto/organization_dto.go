package dto

import "time"

// ── Department ───────────────────────────────────────────────────────────────

// CreateDepartmentRequest entrada para crear un departamento.
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Code        string `json:"code" validate:"max=20"`
	Description string `json:"description"`
}

// UpdateDepartmentRequest campos opcionales.
type UpdateDepartmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Code        *string `json:"code" validate:"omitempty,max=20"`
	Description *string `json:"description"`
}

// DepartmentResponse salida de un departamento.
type DepartmentResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DepartmentListResponse lista paginada.
type DepartmentListResponse struct {
	Items []DepartmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// ── Designation ──────────────────────────────────────────────────────────────

// CreateDesignationRequest entrada para crear un cargo.
type CreateDesignationRequest struct {
	Title        string  `json:"title" validate:"required,min=1,max=100"`
	Description  string  `json:"description"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
	Level        int     `json:"level" validate:"min=0"`
}

// UpdateDesignationRequest campos opcionales.
type UpdateDesignationRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
	Level        *int    `json:"level" validate:"omitempty,min=0"`
}

// DesignationResponse salida de un cargo.
type DesignationResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"company_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DepartmentID *string   `json:"department_id"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DesignationListResponse lista paginada.
type DesignationListResponse struct {
	Items []DesignationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ── Employee ─────────────────────────────────────────────────────────────────

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	UserID        *string `json:"user_id" validate:"omitempty,uuid"`
	DepartmentID  *string `json:"department_id" validate:"omitempty,uuid"`
	DesignationID *string `json:"designation_id" validate:"omitempty,uuid"`
	Mobile        string  `json:"mobile" validate:"max=11"`
	EmployeeID    string  `json:"employee_id" validate:"max=50"`
	DateOfJoining *Date   `json:"date_of_joining"`
}

// UpdateEmployeeRequest campos opcionales.
type UpdateEmployeeRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=100"`
	DepartmentID  *string `json:"department_id" validate:"omitempty,uuid"`
	DesignationID *string `json:"designation_id" validate:"omitempty,uuid"`
	Mobile        *string `json:"mobile" validate:"omitempty,max=11"`
	EmployeeID    *string `json:"employee_id" validate:"omitempty,max=50"`
	DateOfJoining *Date   `json:"date_of_joining"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	UserID        *string   `json:"user_id"`
	Name          string    `json:"name"`
	DepartmentID  *string   `json:"department_id"`
	DesignationID *string   `json:"designation_id"`
	Mobile        string    `json:"mobile"`
	EmployeeID    string    `json:"employee_id"`
	DateOfJoining *Date     `json:"date_of_joining"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EmployeeListResponse lista paginada.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// EmployeeDetailsResponse perfil del empleado del usuario autenticado.
type EmployeeDetailsResponse struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Company     string `json:"company"`
}

// ── DeviceToken ──────────────────────────────────────────────────────────────

// CreateDeviceTokenRequest registra una suscripción push del usuario.
type CreateDeviceTokenRequest struct {
	Token  string `json:"token" validate:"required,max=512"`
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

// DeviceTokenResponse salida de una suscripción.
type DeviceTokenResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// DeviceTokenListResponse lista de suscripciones del usuario.
type DeviceTokenListResponse struct {
	Items []DeviceTokenResponse `json:"items"`
}
