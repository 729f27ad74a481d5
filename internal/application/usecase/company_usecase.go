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

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa. domain.ErrDuplicate si el email ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	industry := in.IndustryType
	if industry == "" {
		industry = entity.IndustryRMG
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		IndustryType: industry,
		About:        in.About,
		Address:      in.Address,
		Contacts:     in.Contacts,
		Email:        emptyToNil(in.Email),
		Website:      in.Website,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica la empresa del usuario autenticado. domain.ErrForbidden si id es otra empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, callerCompanyID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if id != callerCompanyID {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	setString(&company.Name, in.Name)
	setString(&company.IndustryType, in.IndustryType)
	setString(&company.About, in.About)
	setString(&company.Address, in.Address)
	setString(&company.Contacts, in.Contacts)
	setRef(&company.Email, in.Email)
	setString(&company.Website, in.Website)
	setString(&company.Notes, in.Notes)
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina la empresa del usuario autenticado (y en cascada sus datos).
func (uc *CompanyUseCase) Delete(ctx context.Context, callerCompanyID, id string) error {
	if id != callerCompanyID {
		return domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		IndustryType: c.IndustryType,
		About:        c.About,
		Address:      c.Address,
		Contacts:     c.Contacts,
		Email:        c.Email,
		Website:      c.Website,
		Notes:        c.Notes,
		CreatedAt:    dto.NewDate(c.CreatedAt),
		UpdatedAt:    c.UpdatedAt,
	}
}
