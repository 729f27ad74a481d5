package entity

import "time"

// Department área organizacional de una empresa.
type Department struct {
	ID          string
	CompanyID   string
	Name        string
	Code        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Designation cargo dentro de la empresa. El título determina el rol de permisos.
type Designation struct {
	ID           string
	CompanyID    string
	Title        string
	Description  string
	DepartmentID *string
	Level        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Employee ficha de un empleado; UserID enlaza opcionalmente con una cuenta de acceso.
type Employee struct {
	ID            string
	CompanyID     string
	UserID        *string
	Name          string
	DepartmentID  *string
	DesignationID *string
	Mobile        string
	EmployeeID    string // código interno de nómina
	DateOfJoining *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EmployeeProfile vista resumida del empleado asociado a un usuario.
type EmployeeProfile struct {
	Name        string
	Designation string
	Department  string
	Company     string
}

// DeviceToken suscripción push de un usuario. Token es el endpoint del servicio push.
type DeviceToken struct {
	ID        string
	UserID    string
	CompanyID string
	Token     string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}
