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

// FloorUseCase CRUD de pisos. Borrar un piso borra sus líneas (cascada en DB).
type FloorUseCase struct {
	repo repository.FloorRepository
}

// NewFloorUseCase construye el caso de uso.
func NewFloorUseCase(repo repository.FloorRepository) *FloorUseCase {
	return &FloorUseCase{repo: repo}
}

func (uc *FloorUseCase) Create(ctx context.Context, companyID string, in dto.CreateFloorRequest) (*dto.FloorResponse, error) {
	now := time.Now()
	f := &entity.Floor{ID: uuid.New().String(), CompanyID: companyID, Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return toFloorResponse(f), nil
}

func (uc *FloorUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.FloorResponse, error) {
	f, err := uc.get(ctx, companyID, id)
	if err != nil || f == nil {
		return nil, err
	}
	return toFloorResponse(f), nil
}

func (uc *FloorUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.FloorListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FloorResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFloorResponse(f))
	}
	return &dto.FloorListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *FloorUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateFloorRequest) (*dto.FloorResponse, error) {
	f, err := uc.get(ctx, companyID, id)
	if err != nil || f == nil {
		return nil, err
	}
	setString(&f.Name, in.Name)
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return toFloorResponse(f), nil
}

func (uc *FloorUseCase) Delete(ctx context.Context, companyID, id string) error {
	f, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *FloorUseCase) get(ctx context.Context, companyID, id string) (*entity.Floor, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil || f.CompanyID != companyID {
		return nil, nil
	}
	return f, nil
}

func toFloorResponse(f *entity.Floor) *dto.FloorResponse {
	return &dto.FloorResponse{ID: f.ID, CompanyID: f.CompanyID, Name: f.Name, CreatedAt: f.CreatedAt, UpdatedAt: f.UpdatedAt}
}

// LineUseCase CRUD de líneas. La empresa de una línea es la de su piso.
type LineUseCase struct {
	repo      repository.LineRepository
	floorRepo repository.FloorRepository
}

// NewLineUseCase construye el caso de uso.
func NewLineUseCase(repo repository.LineRepository, floorRepo repository.FloorRepository) *LineUseCase {
	return &LineUseCase{repo: repo, floorRepo: floorRepo}
}

func (uc *LineUseCase) Create(ctx context.Context, companyID string, in dto.CreateLineRequest) (*dto.LineResponse, error) {
	if err := uc.checkFloor(ctx, companyID, in.FloorID); err != nil {
		return nil, err
	}
	now := time.Now()
	l := &entity.Line{
		ID:            uuid.New().String(),
		FloorID:       in.FloorID,
		Name:          in.Name,
		Description:   in.Description,
		OperationType: in.OperationType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toLineResponse(l), nil
}

func (uc *LineUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.LineResponse, error) {
	l, err := uc.get(ctx, companyID, id)
	if err != nil || l == nil {
		return nil, err
	}
	return toLineResponse(l), nil
}

func (uc *LineUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.LineListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LineResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLineResponse(l))
	}
	return &dto.LineListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *LineUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateLineRequest) (*dto.LineResponse, error) {
	l, err := uc.get(ctx, companyID, id)
	if err != nil || l == nil {
		return nil, err
	}
	if in.FloorID != nil && *in.FloorID != l.FloorID {
		if err := uc.checkFloor(ctx, companyID, *in.FloorID); err != nil {
			return nil, err
		}
		l.FloorID = *in.FloorID
	}
	setString(&l.Name, in.Name)
	setString(&l.Description, in.Description)
	setString(&l.OperationType, in.OperationType)
	l.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return toLineResponse(l), nil
}

// Delete elimina la línea; las máquinas que la usaban quedan sin línea.
func (uc *LineUseCase) Delete(ctx context.Context, companyID, id string) error {
	l, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *LineUseCase) get(ctx context.Context, companyID, id string) (*entity.Line, error) {
	loc, err := uc.repo.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if loc == nil || loc.CompanyID != companyID {
		return nil, nil
	}
	return uc.repo.GetByID(ctx, id)
}

func (uc *LineUseCase) checkFloor(ctx context.Context, companyID, floorID string) error {
	f, err := uc.floorRepo.GetByID(ctx, floorID)
	if err != nil {
		return err
	}
	if f == nil || f.CompanyID != companyID {
		return domain.NewValidationError("floor_id", "el piso no existe")
	}
	return nil
}

func toLineResponse(l *entity.Line) *dto.LineResponse {
	return &dto.LineResponse{
		ID:            l.ID,
		FloorID:       l.FloorID,
		Name:          l.Name,
		Description:   l.Description,
		OperationType: l.OperationType,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// checkLine valida que la línea exista y sea de la empresa.
func checkLine(ctx context.Context, repo repository.LineRepository, companyID string, id *string) error {
	if id == nil {
		return nil
	}
	loc, err := repo.GetLocation(ctx, *id)
	if err != nil {
		return err
	}
	if loc == nil || loc.CompanyID != companyID {
		return domain.NewValidationError("line_id", "la línea no existe")
	}
	return nil
}
