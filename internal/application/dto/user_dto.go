package dto

import "time"

// RegisterRequest alta de usuario + ficha de empleado.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Name            string `json:"name" validate:"required,min=1,max=100"`
	CompanyID       string `json:"company_id" validate:"required,uuid"`
	DepartmentID    string `json:"department_id" validate:"required,uuid"`
	DesignationID   string `json:"designation_id" validate:"required,uuid"`
	Mobile          string `json:"mobile" validate:"max=11"`
	EmployeeID      string `json:"employee_id" validate:"max=50"`
	DateOfJoining   *Date  `json:"date_of_joining"`
}

// RegisterResponse usuario y empleado creados.
type RegisterResponse struct {
	User     UserResponse     `json:"user"`
	Employee EmployeeResponse `json:"employee"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserListResponse lista paginada.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token bearer emitido.
type LoginResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// GroupResponse salida de un grupo.
type GroupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GroupListResponse lista paginada de grupos.
type GroupListResponse struct {
	Items []GroupResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
