package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// PartUseCase alta, consulta y baja de repuestos. La cantidad no se edita aquí.
type PartUseCase struct {
	repo repository.MachinePartRepository
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.MachinePartRepository) *PartUseCase {
	return &PartUseCase{repo: repo}
}

// Create registra un repuesto con su stock inicial. domain.ErrDuplicate si el nombre ya existe en la empresa.
func (uc *PartUseCase) Create(ctx context.Context, companyID string, in dto.CreateMachinePartRequest) (*dto.MachinePartResponse, error) {
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.NewValidationError("price", "debe ser mayor o igual a 0")
	}
	if in.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "debe ser mayor o igual a 0")
	}
	now := time.Now()
	part := &entity.MachinePart{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Price:     in.Price.Round(2),
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID obtiene un repuesto de la empresa; nil si no existe.
func (uc *PartUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.MachinePartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil || part.CompanyID != companyID {
		return nil, nil
	}
	return toPartResponse(part), nil
}

// List lista repuestos de la empresa.
func (uc *PartUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.MachinePartListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachinePartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartResponse(p))
	}
	return &dto.MachinePartListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update cambia nombre y/o precio.
func (uc *PartUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateMachinePartRequest) (*dto.MachinePartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil || part.CompanyID != companyID {
		return nil, nil
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.NewValidationError("price", "debe ser mayor o igual a 0")
		}
		part.Price = in.Price.Round(2)
	}
	part.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Delete elimina el repuesto. domain.ErrReferentialIntegrity si algún consumo lo referencia.
func (uc *PartUseCase) Delete(ctx context.Context, companyID, id string) error {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if part == nil || part.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPartResponse(p *entity.MachinePart) *dto.MachinePartResponse {
	return &dto.MachinePartResponse{
		ID:        p.ID,
		CompanyID: p.CompanyID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
