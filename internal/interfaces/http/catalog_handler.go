package http

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/application/usecase"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
)

// catalogKind fija el tipo de taxonomía para montar CatalogUseCase con CRUDHandler.
type catalogKind struct {
	uc   *usecase.CatalogUseCase
	kind entity.CatalogKind
}

// NewCatalogHandler handler de categorías, tipos, marcas o proveedores según kind.
func NewCatalogHandler(uc *usecase.CatalogUseCase, kind entity.CatalogKind, name string) *CRUDHandler[dto.CatalogItemRequest, dto.CatalogItemRequest, dto.CatalogItemResponse, dto.CatalogListResponse] {
	return NewCRUDHandler[dto.CatalogItemRequest, dto.CatalogItemRequest, dto.CatalogItemResponse, dto.CatalogListResponse](
		catalogKind{uc: uc, kind: kind}, name)
}

func (k catalogKind) Create(ctx context.Context, companyID string, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	return k.uc.Create(ctx, k.kind, companyID, in)
}

func (k catalogKind) GetByID(ctx context.Context, companyID, id string) (*dto.CatalogItemResponse, error) {
	return k.uc.GetByID(ctx, k.kind, companyID, id)
}

func (k catalogKind) List(ctx context.Context, companyID string, limit, offset int) (*dto.CatalogListResponse, error) {
	return k.uc.List(ctx, k.kind, companyID, limit, offset)
}

func (k catalogKind) Update(ctx context.Context, companyID, id string, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	return k.uc.Update(ctx, k.kind, companyID, id, in)
}

func (k catalogKind) Delete(ctx context.Context, companyID, id string) error {
	return k.uc.Delete(ctx, k.kind, companyID, id)
}
