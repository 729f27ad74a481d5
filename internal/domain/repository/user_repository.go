package repository

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas de acceso.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.User, error)
}

// GroupRepository lectura de grupos de usuarios.
type GroupRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Group, error)
	GetByID(ctx context.Context, id string) (*entity.Group, error)
}
