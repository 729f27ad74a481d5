package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

const (
	machinePageSize    = 10
	machineMaxPageSize = 100
)

var machineOrdering = map[string]bool{
	"machine_id":           true,
	"purchase_date":        true,
	"status":               true,
	"sequence":             true,
	"last_breakdown_start": true,
}

// MachineObserver recibe cada actualización confirmada de una máquina.
type MachineObserver interface {
	MachineUpdated(ctx context.Context, before, after *entity.Machine)
}

// MachineUseCase CRUD de máquinas. Tras cada Update confirmado se avisa al observer
// (notificaciones de cambio de estado).
type MachineUseCase struct {
	repo        repository.MachineRepository
	lineRepo    repository.LineRepository
	catalogRepo repository.CatalogRepository
	observer    MachineObserver
}

// NewMachineUseCase construye el caso de uso. observer puede ser nil.
func NewMachineUseCase(
	repo repository.MachineRepository,
	lineRepo repository.LineRepository,
	catalogRepo repository.CatalogRepository,
	observer MachineObserver,
) *MachineUseCase {
	return &MachineUseCase{repo: repo, lineRepo: lineRepo, catalogRepo: catalogRepo, observer: observer}
}

func (uc *MachineUseCase) Create(ctx context.Context, companyID string, in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	now := time.Now()
	m := &entity.Machine{
		ID:                 uuid.New().String(),
		CompanyID:          companyID,
		MachineID:          strings.TrimSpace(in.MachineID),
		CategoryID:         emptyToNil(in.CategoryID),
		TypeID:             emptyToNil(in.TypeID),
		BrandID:            emptyToNil(in.BrandID),
		SupplierID:         emptyToNil(in.SupplierID),
		ModelNumber:        in.ModelNumber,
		SerialNo:           in.SerialNo,
		LineID:             emptyToNil(in.LineID),
		Sequence:           in.Sequence,
		PurchaseDate:       in.PurchaseDate.TimePtr(),
		LastBreakdownStart: in.LastBreakdownStart,
		LastRepairingStart: in.LastRepairingStart,
		MechanicID:         emptyToNil(in.MechanicID),
		OperatorID:         emptyToNil(in.OperatorID),
		LastProblem:        in.LastProblem,
		Status:             in.Status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if m.Status == "" {
		m.Status = entity.MachineActive
	}
	if err := uc.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return uc.detail(ctx, m.ID)
}

// GetByID devuelve la máquina con nombres resueltos; nil si no existe o es de otra empresa.
func (uc *MachineUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.MachineResponse, error) {
	d, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.CompanyID != companyID {
		return nil, nil
	}
	return toMachineResponse(d), nil
}

// List aplica filtros, búsqueda y orden. El orden debe ser uno de los campos permitidos.
func (uc *MachineUseCase) List(ctx context.Context, f repository.MachineFilter) (*dto.MachineListResponse, error) {
	if f.Ordering != "" && !machineOrdering[strings.TrimPrefix(f.Ordering, "-")] {
		return nil, domain.NewValidationError("ordering", "campo de orden no permitido")
	}
	if f.Status != "" && !entity.ValidMachineStatus(f.Status) {
		return nil, domain.NewValidationError("status", "estado inválido")
	}
	if f.Limit <= 0 {
		f.Limit = machinePageSize
	}
	if f.Limit > machineMaxPageSize {
		f.Limit = machineMaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachineResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toMachineResponse(d))
	}
	return &dto.MachineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}, nil
}

// Update aplica los campos presentes. Si el estado cambia, el observer lo recibe después de persistir.
func (uc *MachineUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || m.CompanyID != companyID {
		return nil, nil
	}
	before := *m

	if in.MachineID != nil {
		m.MachineID = strings.TrimSpace(*in.MachineID)
	}
	setRef(&m.CategoryID, in.CategoryID)
	setRef(&m.TypeID, in.TypeID)
	setRef(&m.BrandID, in.BrandID)
	setRef(&m.SupplierID, in.SupplierID)
	setString(&m.ModelNumber, in.ModelNumber)
	setString(&m.SerialNo, in.SerialNo)
	setRef(&m.LineID, in.LineID)
	if in.Sequence != nil {
		m.Sequence = *in.Sequence
	}
	if in.PurchaseDate != nil {
		m.PurchaseDate = in.PurchaseDate.TimePtr()
	}
	if in.LastBreakdownStart != nil {
		m.LastBreakdownStart = in.LastBreakdownStart
	}
	if in.LastRepairingStart != nil {
		m.LastRepairingStart = in.LastRepairingStart
	}
	setRef(&m.MechanicID, in.MechanicID)
	setRef(&m.OperatorID, in.OperatorID)
	setString(&m.LastProblem, in.LastProblem)
	setString(&m.Status, in.Status)
	m.UpdatedAt = time.Now()

	if err := uc.validate(ctx, m); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	if uc.observer != nil {
		uc.observer.MachineUpdated(ctx, &before, m)
	}
	return uc.detail(ctx, m.ID)
}

func (uc *MachineUseCase) Delete(ctx context.Context, companyID, id string) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil || m.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *MachineUseCase) validate(ctx context.Context, m *entity.Machine) error {
	if m.MachineID == "" {
		return domain.NewValidationError("machine_id", "es requerido")
	}
	if !entity.ValidMachineStatus(m.Status) {
		return domain.NewValidationError("status", "estado inválido")
	}
	if err := checkLine(ctx, uc.lineRepo, m.CompanyID, m.LineID); err != nil {
		return err
	}
	refs := []struct {
		kind  entity.CatalogKind
		id    *string
		field string
	}{
		{entity.CatalogCategory, m.CategoryID, "category_id"},
		{entity.CatalogType, m.TypeID, "type_id"},
		{entity.CatalogBrand, m.BrandID, "brand_id"},
		{entity.CatalogSupplier, m.SupplierID, "supplier_id"},
	}
	for _, r := range refs {
		if err := checkCatalog(ctx, uc.catalogRepo, r.kind, m.CompanyID, r.id, r.field); err != nil {
			return err
		}
	}
	return nil
}

func (uc *MachineUseCase) detail(ctx context.Context, id string) (*dto.MachineResponse, error) {
	d, err := uc.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toMachineResponse(d), nil
}

func toMachineResponse(d *entity.MachineDetail) *dto.MachineResponse {
	return &dto.MachineResponse{
		ID:                 d.ID,
		CompanyID:          d.CompanyID,
		MachineID:          d.MachineID,
		CategoryID:         d.CategoryID,
		Category:           d.Category,
		TypeID:             d.TypeID,
		Type:               d.Type,
		BrandID:            d.BrandID,
		Brand:              d.Brand,
		SupplierID:         d.SupplierID,
		Supplier:           d.Supplier,
		ModelNumber:        d.ModelNumber,
		SerialNo:           d.SerialNo,
		LineID:             d.LineID,
		Line:               d.Line,
		Floor:              d.Floor,
		Sequence:           d.Sequence,
		PurchaseDate:       dto.DatePtr(d.PurchaseDate),
		LastBreakdownStart: d.LastBreakdownStart,
		LastRepairingStart: d.LastRepairingStart,
		MechanicID:         d.MechanicID,
		OperatorID:         d.OperatorID,
		LastProblem:        d.LastProblem,
		Status:             d.Status,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
