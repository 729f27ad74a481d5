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

// ──────────────────────────────────────────────────────────────────────────────
// Department
// ──────────────────────────────────────────────────────────────────────────────

// DepartmentUseCase CRUD de departamentos de la empresa.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

func (uc *DepartmentUseCase) Create(ctx context.Context, companyID string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	now := time.Now()
	d := &entity.Department{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDepartmentResponse(d), nil
}

func (uc *DepartmentUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.DepartmentResponse, error) {
	d, err := uc.get(ctx, companyID, id)
	if err != nil || d == nil {
		return nil, err
	}
	return toDepartmentResponse(d), nil
}

func (uc *DepartmentUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.DepartmentListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDepartmentResponse(d))
	}
	return &dto.DepartmentListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *DepartmentUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	d, err := uc.get(ctx, companyID, id)
	if err != nil || d == nil {
		return nil, err
	}
	setString(&d.Name, in.Name)
	setString(&d.Code, in.Code)
	setString(&d.Description, in.Description)
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDepartmentResponse(d), nil
}

func (uc *DepartmentUseCase) Delete(ctx context.Context, companyID, id string) error {
	d, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *DepartmentUseCase) get(ctx context.Context, companyID, id string) (*entity.Department, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.CompanyID != companyID {
		return nil, nil
	}
	return d, nil
}

func toDepartmentResponse(d *entity.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:          d.ID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Designation
// ──────────────────────────────────────────────────────────────────────────────

// DesignationUseCase CRUD de cargos. El título del cargo define el rol de permisos.
type DesignationUseCase struct {
	repo     repository.DesignationRepository
	deptRepo repository.DepartmentRepository
}

// NewDesignationUseCase construye el caso de uso.
func NewDesignationUseCase(repo repository.DesignationRepository, deptRepo repository.DepartmentRepository) *DesignationUseCase {
	return &DesignationUseCase{repo: repo, deptRepo: deptRepo}
}

func (uc *DesignationUseCase) Create(ctx context.Context, companyID string, in dto.CreateDesignationRequest) (*dto.DesignationResponse, error) {
	deptID := emptyToNil(in.DepartmentID)
	if err := checkDepartment(ctx, uc.deptRepo, companyID, deptID, "department_id"); err != nil {
		return nil, err
	}
	now := time.Now()
	d := &entity.Designation{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Title:        in.Title,
		Description:  in.Description,
		DepartmentID: deptID,
		Level:        in.Level,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDesignationResponse(d), nil
}

func (uc *DesignationUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.DesignationResponse, error) {
	d, err := uc.get(ctx, companyID, id)
	if err != nil || d == nil {
		return nil, err
	}
	return toDesignationResponse(d), nil
}

func (uc *DesignationUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.DesignationListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DesignationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDesignationResponse(d))
	}
	return &dto.DesignationListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *DesignationUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateDesignationRequest) (*dto.DesignationResponse, error) {
	d, err := uc.get(ctx, companyID, id)
	if err != nil || d == nil {
		return nil, err
	}
	setString(&d.Title, in.Title)
	setString(&d.Description, in.Description)
	setRef(&d.DepartmentID, in.DepartmentID)
	if in.Level != nil {
		d.Level = *in.Level
	}
	if err := checkDepartment(ctx, uc.deptRepo, companyID, d.DepartmentID, "department_id"); err != nil {
		return nil, err
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDesignationResponse(d), nil
}

func (uc *DesignationUseCase) Delete(ctx context.Context, companyID, id string) error {
	d, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *DesignationUseCase) get(ctx context.Context, companyID, id string) (*entity.Designation, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.CompanyID != companyID {
		return nil, nil
	}
	return d, nil
}

func toDesignationResponse(d *entity.Designation) *dto.DesignationResponse {
	return &dto.DesignationResponse{
		ID:           d.ID,
		CompanyID:    d.CompanyID,
		Title:        d.Title,
		Description:  d.Description,
		DepartmentID: d.DepartmentID,
		Level:        d.Level,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Employee
// ──────────────────────────────────────────────────────────────────────────────

// EmployeeUseCase CRUD de fichas de empleado.
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	deptRepo  repository.DepartmentRepository
	desigRepo repository.DesignationRepository
	userRepo  repository.UserRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	desigRepo repository.DesignationRepository,
	userRepo repository.UserRepository,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, deptRepo: deptRepo, desigRepo: desigRepo, userRepo: userRepo}
}

func (uc *EmployeeUseCase) Create(ctx context.Context, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	now := time.Now()
	e := &entity.Employee{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		UserID:        emptyToNil(in.UserID),
		Name:          in.Name,
		DepartmentID:  emptyToNil(in.DepartmentID),
		DesignationID: emptyToNil(in.DesignationID),
		Mobile:        in.Mobile,
		EmployeeID:    in.EmployeeID,
		DateOfJoining: in.DateOfJoining.TimePtr(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.checkRefs(ctx, e); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, companyID, id)
	if err != nil || e == nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func (uc *EmployeeUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.get(ctx, companyID, id)
	if err != nil || e == nil {
		return nil, err
	}
	setString(&e.Name, in.Name)
	setRef(&e.DepartmentID, in.DepartmentID)
	setRef(&e.DesignationID, in.DesignationID)
	setString(&e.Mobile, in.Mobile)
	setString(&e.EmployeeID, in.EmployeeID)
	if in.DateOfJoining != nil {
		e.DateOfJoining = in.DateOfJoining.TimePtr()
	}
	if err := uc.checkRefs(ctx, e); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, companyID, id string) error {
	e, err := uc.get(ctx, companyID, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *EmployeeUseCase) get(ctx context.Context, companyID, id string) (*entity.Employee, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.CompanyID != companyID {
		return nil, nil
	}
	return e, nil
}

// checkRefs departamento, cargo y usuario deben ser de la misma empresa.
func (uc *EmployeeUseCase) checkRefs(ctx context.Context, e *entity.Employee) error {
	if err := checkDepartment(ctx, uc.deptRepo, e.CompanyID, e.DepartmentID, "department_id"); err != nil {
		return err
	}
	if e.DesignationID != nil {
		d, err := uc.desigRepo.GetByID(ctx, *e.DesignationID)
		if err != nil {
			return err
		}
		if d == nil || d.CompanyID != e.CompanyID {
			return domain.NewValidationError("designation_id", "el cargo no existe")
		}
	}
	if e.UserID != nil {
		u, err := uc.userRepo.GetByID(ctx, *e.UserID)
		if err != nil {
			return err
		}
		if u == nil || u.CompanyID != e.CompanyID {
			return domain.NewValidationError("user_id", "el usuario no existe")
		}
	}
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:            e.ID,
		CompanyID:     e.CompanyID,
		UserID:        e.UserID,
		Name:          e.Name,
		DepartmentID:  e.DepartmentID,
		DesignationID: e.DesignationID,
		Mobile:        e.Mobile,
		EmployeeID:    e.EmployeeID,
		DateOfJoining: dto.DatePtr(e.DateOfJoining),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func checkDepartment(ctx context.Context, repo repository.DepartmentRepository, companyID string, id *string, field string) error {
	if id == nil {
		return nil
	}
	d, err := repo.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if d == nil || d.CompanyID != companyID {
		return domain.NewValidationError(field, "el departamento no existe")
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// DeviceToken
// ──────────────────────────────────────────────────────────────────────────────

// DeviceTokenUseCase suscripciones push del usuario autenticado.
type DeviceTokenUseCase struct {
	repo repository.DeviceTokenRepository
}

// NewDeviceTokenUseCase construye el caso de uso.
func NewDeviceTokenUseCase(repo repository.DeviceTokenRepository) *DeviceTokenUseCase {
	return &DeviceTokenUseCase{repo: repo}
}

// Create registra el token del usuario. domain.ErrDuplicate si el token ya existe.
func (uc *DeviceTokenUseCase) Create(ctx context.Context, userID, companyID string, in dto.CreateDeviceTokenRequest) (*dto.DeviceTokenResponse, error) {
	t := &entity.DeviceToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		CompanyID: companyID,
		Token:     in.Token,
		P256dh:    in.P256dh,
		Auth:      in.Auth,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toDeviceTokenResponse(t), nil
}

func (uc *DeviceTokenUseCase) List(ctx context.Context, userID string) (*dto.DeviceTokenListResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeviceTokenResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toDeviceTokenResponse(t))
	}
	return &dto.DeviceTokenListResponse{Items: items}, nil
}

func (uc *DeviceTokenUseCase) GetByID(ctx context.Context, userID, id string) (*dto.DeviceTokenResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil || t.UserID != userID {
		return nil, nil
	}
	return toDeviceTokenResponse(t), nil
}

func (uc *DeviceTokenUseCase) Delete(ctx context.Context, userID, id string) error {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t == nil || t.UserID != userID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toDeviceTokenResponse(t *entity.DeviceToken) *dto.DeviceTokenResponse {
	return &dto.DeviceTokenResponse{ID: t.ID, UserID: t.UserID, Token: t.Token, CreatedAt: t.CreatedAt}
}
