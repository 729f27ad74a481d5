package repository

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// DepartmentRepository puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(ctx context.Context, d *entity.Department) error
	GetByID(ctx context.Context, id string) (*entity.Department, error)
	Update(ctx context.Context, d *entity.Department) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Department, error)
	Delete(ctx context.Context, id string) error
}

// DesignationRepository puerto de persistencia para Designation.
type DesignationRepository interface {
	Create(ctx context.Context, d *entity.Designation) error
	GetByID(ctx context.Context, id string) (*entity.Designation, error)
	Update(ctx context.Context, d *entity.Designation) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Designation, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Employee, error)
	Update(ctx context.Context, e *entity.Employee) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error)
	Delete(ctx context.Context, id string) error
	// GetProfileByUserID devuelve nombre, cargo, departamento y empresa del empleado enlazado al usuario.
	GetProfileByUserID(ctx context.Context, userID string) (*entity.EmployeeProfile, error)
	// GetDesignationTitleByUserID título de la designación del empleado del usuario ("" si no tiene).
	GetDesignationTitleByUserID(ctx context.Context, userID string) (string, error)
}

// DeviceTokenRepository suscripciones push por usuario.
type DeviceTokenRepository interface {
	Create(ctx context.Context, t *entity.DeviceToken) error
	GetByID(ctx context.Context, id string) (*entity.DeviceToken, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.DeviceToken, error)
	Delete(ctx context.Context, id string) error
	DeleteByToken(ctx context.Context, token string) error
}
