package repository

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// FloorRepository puerto de persistencia para Floor.
type FloorRepository interface {
	Create(ctx context.Context, f *entity.Floor) error
	GetByID(ctx context.Context, id string) (*entity.Floor, error)
	Update(ctx context.Context, f *entity.Floor) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Floor, error)
	Delete(ctx context.Context, id string) error
}

// LineRepository puerto de persistencia para Line. El tenant se resuelve vía el piso.
type LineRepository interface {
	Create(ctx context.Context, l *entity.Line) error
	GetByID(ctx context.Context, id string) (*entity.Line, error)
	Update(ctx context.Context, l *entity.Line) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Line, error)
	Delete(ctx context.Context, id string) error
	// GetLocation devuelve la línea con su piso y empresa; nil si no existe.
	GetLocation(ctx context.Context, id string) (*entity.LineLocation, error)
}
