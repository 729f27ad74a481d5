package repository

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// CatalogRepository persistencia de taxonomía de máquinas (categoría, tipo, marca, proveedor).
type CatalogRepository interface {
	Create(ctx context.Context, item *entity.CatalogItem) error
	GetByID(ctx context.Context, kind entity.CatalogKind, id string) (*entity.CatalogItem, error)
	Update(ctx context.Context, item *entity.CatalogItem) error
	ListByCompany(ctx context.Context, kind entity.CatalogKind, companyID string, limit, offset int) ([]*entity.CatalogItem, error)
	Delete(ctx context.Context, kind entity.CatalogKind, id string) error
}
