package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/permission"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
	"github.com/jhoicas/factory-ops-api/pkg/jwt"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

const loginMessage = "Login successful"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegisterTxRunner crea usuario y empleado en la misma transacción.
type RegisterTxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, employees repository.EmployeeRepository) error) error
}

// TokenRevoker lista de tokens invalidados por logout.
type TokenRevoker interface {
	Revoke(tokenID string, until time.Time)
	IsRevoked(tokenID string) bool
}

// Repos agrupa los puertos de lectura que usa el caso de uso.
type Repos struct {
	Users        repository.UserRepository
	Employees    repository.EmployeeRepository
	Companies    repository.CompanyRepository
	Departments  repository.DepartmentRepository
	Designations repository.DesignationRepository
}

// AuthUseCase registro, login, logout y perfil del empleado autenticado.
type AuthUseCase struct {
	repos   Repos
	tx      RegisterTxRunner
	revoker TokenRevoker
	jwtCfg  JWTConfig
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(repos Repos, tx RegisterTxRunner, revoker TokenRevoker, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{repos: repos, tx: tx, revoker: revoker, jwtCfg: jwtCfg, log: log}
}

// Register crea la cuenta (email como usuario) y su ficha de empleado.
// Departamento y cargo deben pertenecer a la empresa indicada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewValidationError("confirm_password", domain.ErrPasswordMismatch.Error())
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if err := uc.checkOrganization(ctx, in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    in.CompanyID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	dept, desig := in.DepartmentID, in.DesignationID
	emp := &entity.Employee{
		ID:            uuid.New().String(),
		CompanyID:     in.CompanyID,
		UserID:        &user.ID,
		Name:          in.Name,
		DepartmentID:  &dept,
		DesignationID: &desig,
		Mobile:        in.Mobile,
		EmployeeID:    in.EmployeeID,
		DateOfJoining: in.DateOfJoining.TimePtr(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.tx.Run(ctx, func(users repository.UserRepository, employees repository.EmployeeRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return employees.Create(ctx, emp)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", user.CompanyID).Str("user_id", user.ID).Msg("usuario registrado")
	return &dto.RegisterResponse{User: *toUserResponse(user), Employee: *toEmployeeResponse(emp)}, nil
}

func (uc *AuthUseCase) checkOrganization(ctx context.Context, in dto.RegisterRequest) error {
	verr := &domain.ValidationError{}
	company, err := uc.repos.Companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		verr.Add("company_id", "la empresa no existe")
		return verr
	}
	dept, err := uc.repos.Departments.GetByID(ctx, in.DepartmentID)
	if err != nil {
		return err
	}
	if dept == nil || dept.CompanyID != in.CompanyID {
		verr.Add("department_id", "el departamento no pertenece a la empresa")
	}
	desig, err := uc.repos.Designations.GetByID(ctx, in.DesignationID)
	if err != nil {
		return err
	}
	if desig == nil || desig.CompanyID != in.CompanyID {
		verr.Add("designation_id", "el cargo no pertenece a la empresa")
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}

// Login verifica email/password y emite un JWT. El rol es el título del cargo del empleado
// (o "superuser").
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.repos.Users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	role := permission.RoleSuperuser
	if !user.IsSuperuser {
		title, err := uc.repos.Employees.GetDesignationTitleByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		role = permission.FromDesignation(title)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", role).Msg("login")
	return &dto.LoginResponse{Token: token, UserID: user.ID, Message: loginMessage}, nil
}

// Logout revoca el token (por jti) hasta su expiración.
func (uc *AuthUseCase) Logout(_ context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return domain.ErrUnauthorized
	}
	uc.revoker.Revoke(tokenID, expiresAt)
	return nil
}

// EmployeeDetails perfil del empleado enlazado al usuario. domain.ErrNotFound si no tiene ficha.
func (uc *AuthUseCase) EmployeeDetails(ctx context.Context, userID string) (*dto.EmployeeDetailsResponse, error) {
	p, err := uc.repos.Employees.GetProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.EmployeeDetailsResponse{Name: p.Name, Designation: p.Designation, Department: p.Department, Company: p.Company}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Email:       u.Email,
		Name:        u.Name,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
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
