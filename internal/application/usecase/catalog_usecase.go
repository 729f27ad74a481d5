package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// CatalogUseCase CRUD genérico de la taxonomía de máquinas: categoría, tipo, marca y proveedor.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (uc *CatalogUseCase) Create(ctx context.Context, kind entity.CatalogKind, companyID string, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.CatalogItem{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Kind:      kind,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toCatalogResponse(item), nil
}

func (uc *CatalogUseCase) GetByID(ctx context.Context, kind entity.CatalogKind, companyID, id string) (*dto.CatalogItemResponse, error) {
	item, err := uc.get(ctx, kind, companyID, id)
	if err != nil || item == nil {
		return nil, err
	}
	return toCatalogResponse(item), nil
}

func (uc *CatalogUseCase) List(ctx context.Context, kind entity.CatalogKind, companyID string, limit, offset int) (*dto.CatalogListResponse, error) {
	if !kind.Valid() {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByCompany(ctx, kind, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toCatalogResponse(it))
	}
	return &dto.CatalogListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *CatalogUseCase) Update(ctx context.Context, kind entity.CatalogKind, companyID, id string, in dto.CatalogItemRequest) (*dto.CatalogItemResponse, error) {
	item, err := uc.get(ctx, kind, companyID, id)
	if err != nil || item == nil {
		return nil, err
	}
	item.Name = in.Name
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toCatalogResponse(item), nil
}

func (uc *CatalogUseCase) Delete(ctx context.Context, kind entity.CatalogKind, companyID, id string) error {
	item, err := uc.get(ctx, kind, companyID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, kind, id)
}

func (uc *CatalogUseCase) get(ctx context.Context, kind entity.CatalogKind, companyID, id string) (*entity.CatalogItem, error) {
	if !kind.Valid() {
		return nil, nil
	}
	item, err := uc.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.CompanyID != companyID {
		return nil, nil
	}
	return item, nil
}

func toCatalogResponse(it *entity.CatalogItem) *dto.CatalogItemResponse {
	return &dto.CatalogItemResponse{ID: it.ID, CompanyID: it.CompanyID, Name: it.Name, CreatedAt: it.CreatedAt, UpdatedAt: it.UpdatedAt}
}

// checkCatalog valida que una referencia de taxonomía exista y sea de la empresa.
func checkCatalog(ctx context.Context, repo repository.CatalogRepository, kind entity.CatalogKind, companyID string, id *string, field string) error {
	if id == nil {
		return nil
	}
	item, err := repo.GetByID(ctx, kind, *id)
	if err != nil {
		return err
	}
	if item == nil || item.CompanyID != companyID {
		return domain.NewValidationError(field, "no existe")
	}
	return nil
}
