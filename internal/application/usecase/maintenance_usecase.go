package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/maintenance"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

// ProblemCategoryTypeUseCase CRUD de tipos de categoría de problema (globales).
type ProblemCategoryTypeUseCase struct {
	repo repository.ProblemCategoryTypeRepository
}

func NewProblemCategoryTypeUseCase(repo repository.ProblemCategoryTypeRepository) *ProblemCategoryTypeUseCase {
	return &ProblemCategoryTypeUseCase{repo: repo}
}

func (uc *ProblemCategoryTypeUseCase) Create(ctx context.Context, in dto.ProblemCategoryTypeRequest) (*dto.ProblemCategoryTypeResponse, error) {
	t := &entity.ProblemCategoryType{ID: uuid.New().String(), Name: in.Name, Description: in.Description}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toProblemCategoryTypeResponse(t), nil
}

func (uc *ProblemCategoryTypeUseCase) GetByID(ctx context.Context, id string) (*dto.ProblemCategoryTypeResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	return toProblemCategoryTypeResponse(t), nil
}

func (uc *ProblemCategoryTypeUseCase) List(ctx context.Context, limit, offset int) (*dto.ProblemCategoryTypeListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProblemCategoryTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toProblemCategoryTypeResponse(t))
	}
	return &dto.ProblemCategoryTypeListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *ProblemCategoryTypeUseCase) Update(ctx context.Context, id string, in dto.UpdateProblemCategoryTypeRequest) (*dto.ProblemCategoryTypeResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil || t == nil {
		return nil, err
	}
	setString(&t.Name, in.Name)
	setString(&t.Description, in.Description)
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toProblemCategoryTypeResponse(t), nil
}

func (uc *ProblemCategoryTypeUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toProblemCategoryTypeResponse(t *entity.ProblemCategoryType) *dto.ProblemCategoryTypeResponse {
	return &dto.ProblemCategoryTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description}
}

// ProblemCategoryUseCase CRUD de categorías de problema. Severidad por defecto: minor.
type ProblemCategoryUseCase struct {
	repo     repository.ProblemCategoryRepository
	typeRepo repository.ProblemCategoryTypeRepository
}

func NewProblemCategoryUseCase(repo repository.ProblemCategoryRepository, typeRepo repository.ProblemCategoryTypeRepository) *ProblemCategoryUseCase {
	return &ProblemCategoryUseCase{repo: repo, typeRepo: typeRepo}
}

func (uc *ProblemCategoryUseCase) Create(ctx context.Context, in dto.ProblemCategoryRequest) (*dto.ProblemCategoryResponse, error) {
	c := &entity.ProblemCategory{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		Severity:       in.Severity,
		CategoryTypeID: emptyToNil(in.CategoryTypeID),
	}
	if c.Severity == "" {
		c.Severity = entity.SeverityMinor
	}
	if err := uc.checkType(ctx, c.CategoryTypeID); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toProblemCategoryResponse(c), nil
}

func (uc *ProblemCategoryUseCase) GetByID(ctx context.Context, id string) (*dto.ProblemCategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toProblemCategoryResponse(c), nil
}

func (uc *ProblemCategoryUseCase) List(ctx context.Context, limit, offset int) (*dto.ProblemCategoryListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProblemCategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toProblemCategoryResponse(c))
	}
	return &dto.ProblemCategoryListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *ProblemCategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateProblemCategoryRequest) (*dto.ProblemCategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	setString(&c.Name, in.Name)
	setString(&c.Description, in.Description)
	setString(&c.Severity, in.Severity)
	setRef(&c.CategoryTypeID, in.CategoryTypeID)
	if err := uc.checkType(ctx, c.CategoryTypeID); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toProblemCategoryResponse(c), nil
}

func (uc *ProblemCategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ProblemCategoryUseCase) checkType(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	t, err := uc.typeRepo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.NewValidationError("category_type_id", "el tipo no existe")
	}
	return nil
}

func toProblemCategoryResponse(c *entity.ProblemCategory) *dto.ProblemCategoryResponse {
	return &dto.ProblemCategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Severity:       c.Severity,
		CategoryTypeID: c.CategoryTypeID,
	}
}

// BreakdownLogUseCase registro de paradas. La empresa de la parada es la de su máquina.
type BreakdownLogUseCase struct {
	repo         repository.BreakdownLogRepository
	machineRepo  repository.MachineRepository
	lineRepo     repository.LineRepository
	problemRepo  repository.ProblemCategoryRepository
	employeeRepo repository.EmployeeRepository
}

func NewBreakdownLogUseCase(
	repo repository.BreakdownLogRepository,
	machineRepo repository.MachineRepository,
	lineRepo repository.LineRepository,
	problemRepo repository.ProblemCategoryRepository,
	employeeRepo repository.EmployeeRepository,
) *BreakdownLogUseCase {
	return &BreakdownLogUseCase{
		repo:         repo,
		machineRepo:  machineRepo,
		lineRepo:     lineRepo,
		problemRepo:  problemRepo,
		employeeRepo: employeeRepo,
	}
}

func (uc *BreakdownLogUseCase) Create(ctx context.Context, companyID string, in dto.CreateBreakdownLogRequest) (*dto.BreakdownLogResponse, error) {
	now := time.Now()
	b := &entity.BreakdownLog{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		MachineID:         emptyToNil(in.MachineID),
		MechanicID:        emptyToNil(in.MechanicID),
		OperatorID:        emptyToNil(in.OperatorID),
		ProblemCategoryID: emptyToNil(in.ProblemCategoryID),
		LineID:            emptyToNil(in.LineID),
		BreakdownStart:    in.BreakdownStart,
		RepairingStart:    in.RepairingStart,
		LostTime:          time.Duration(in.LostTime),
		Comments:          in.Comments,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if b.MachineID == nil {
		return nil, domain.NewValidationError("machine_id", "es requerido")
	}
	if err := uc.validate(ctx, b); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBreakdownLogResponse(b), nil
}

func (uc *BreakdownLogUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.BreakdownLogResponse, error) {
	b, err := uc.get(ctx, companyID, id)
	if err != nil || b == nil {
		return nil, err
	}
	return toBreakdownLogResponse(b), nil
}

// List paradas de la empresa, la más reciente primero.
func (uc *BreakdownLogUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.BreakdownLogListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BreakdownLogResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBreakdownLogResponse(b))
	}
	return &dto.BreakdownLogListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *BreakdownLogUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateBreakdownLogRequest) (*dto.BreakdownLogResponse, error) {
	b, err := uc.get(ctx, companyID, id)
	if err != nil || b == nil {
		return nil, err
	}
	if in.MachineID != nil {
		if b.MachineID = emptyToNil(in.MachineID); b.MachineID == nil {
			return nil, domain.NewValidationError("machine_id", "es requerido")
		}
	}
	setRef(&b.MechanicID, in.MechanicID)
	setRef(&b.OperatorID, in.OperatorID)
	setRef(&b.ProblemCategoryID, in.ProblemCategoryID)
	setRef(&b.LineID, in.LineID)
	if in.BreakdownStart != nil {
		b.BreakdownStart = *in.BreakdownStart
	}
	if in.RepairingStart != nil {
		b.RepairingStart = in.RepairingStart
	}
	if in.LostTime != nil {
		b.LostTime = time.Duration(*in.LostTime)
	}
	setString(&b.Comments, in.Comments)
	b.UpdatedAt = time.Now()

	if err := uc.validate(ctx, b); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBreakdownLogResponse(b), nil
}

// Delete elimina la parada. domain.ErrReferentialIntegrity si tiene consumos de repuestos.
func (uc *BreakdownLogUseCase) Delete(ctx context.Context, companyID, id string) error {
	b, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *BreakdownLogUseCase) get(ctx context.Context, companyID, id string) (*entity.BreakdownLog, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil || b.CompanyID != companyID {
		return nil, nil
	}
	return b, nil
}

// validate comprueba tiempos y que todas las referencias sean de la empresa de la parada.
func (uc *BreakdownLogUseCase) validate(ctx context.Context, b *entity.BreakdownLog) error {
	verr := &domain.ValidationError{}
	if b.BreakdownStart.IsZero() {
		verr.Add("breakdown_start", "es requerido")
	}
	if b.LostTime < 0 {
		verr.Add("lost_time", "no puede ser negativo")
	}
	if b.RepairingStart != nil && b.RepairingStart.Before(b.BreakdownStart) {
		verr.Add("repairing_start", "no puede ser anterior a breakdown_start")
	}
	if !verr.Empty() {
		return verr
	}

	m, err := uc.machineRepo.GetByID(ctx, *b.MachineID)
	if err != nil {
		return err
	}
	if m == nil || m.CompanyID != b.CompanyID {
		return domain.NewValidationError("machine_id", "la máquina no existe")
	}
	if err := checkLine(ctx, uc.lineRepo, b.CompanyID, b.LineID); err != nil {
		return err
	}
	if b.ProblemCategoryID != nil {
		p, err := uc.problemRepo.GetByID(ctx, *b.ProblemCategoryID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.NewValidationError("problem_category_id", "la categoría no existe")
		}
	}
	for field, id := range map[string]*string{"mechanic_id": b.MechanicID, "operator_id": b.OperatorID} {
		if id == nil {
			continue
		}
		e, err := uc.employeeRepo.GetByID(ctx, *id)
		if err != nil {
			return err
		}
		if e == nil || e.CompanyID != b.CompanyID {
			return domain.NewValidationError(field, "el empleado no existe")
		}
	}
	return nil
}

func toBreakdownLogResponse(b *entity.BreakdownLog) *dto.BreakdownLogResponse {
	return &dto.BreakdownLogResponse{
		ID:                b.ID,
		CompanyID:         b.CompanyID,
		MachineID:         b.MachineID,
		MechanicID:        b.MechanicID,
		OperatorID:        b.OperatorID,
		ProblemCategoryID: b.ProblemCategoryID,
		LineID:            b.LineID,
		BreakdownStart:    b.BreakdownStart,
		RepairingStart:    b.RepairingStart,
		LostTime:          maintenance.Duration(b.LostTime),
		Comments:          b.Comments,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
