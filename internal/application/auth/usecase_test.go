package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-ops-api/internal/application/auth"
	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/factory-ops-api/pkg/jwt"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

const (
	secret    = "test-secret"
	companyID = "11111111-1111-1111-1111-111111111111"
	deptID    = "22222222-2222-2222-2222-222222222222"
	desigID   = "33333333-3333-3333-3333-333333333333"
)

// ── fakes ────────────────────────────────────────────────────────────────────

type memUsers struct {
	byEmail map[string]*entity.User
	failOn  error
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if m.failOn != nil {
		return m.failOn
	}
	m.byEmail[u.Email] = u
	return nil
}
func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}
func (m *memUsers) ListByCompany(context.Context, string, int, int) ([]*entity.User, error) {
	return nil, nil
}

type memEmployees struct {
	created  []*entity.Employee
	titles   map[string]string
	profiles map[string]*entity.EmployeeProfile
	failOn   error
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	if m.failOn != nil {
		return m.failOn
	}
	m.created = append(m.created, e)
	return nil
}
func (m *memEmployees) GetByID(context.Context, string) (*entity.Employee, error)     { return nil, nil }
func (m *memEmployees) GetByUserID(context.Context, string) (*entity.Employee, error) { return nil, nil }
func (m *memEmployees) Update(context.Context, *entity.Employee) error                { return nil }
func (m *memEmployees) ListByCompany(context.Context, string, int, int) ([]*entity.Employee, error) {
	return nil, nil
}
func (m *memEmployees) Delete(context.Context, string) error { return nil }
func (m *memEmployees) GetProfileByUserID(_ context.Context, userID string) (*entity.EmployeeProfile, error) {
	return m.profiles[userID], nil
}
func (m *memEmployees) GetDesignationTitleByUserID(_ context.Context, userID string) (string, error) {
	return m.titles[userID], nil
}

type memCompanies struct{ ids map[string]bool }

func (m *memCompanies) Create(context.Context, *entity.Company) error { return nil }
func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if !m.ids[id] {
		return nil, nil
	}
	return &entity.Company{ID: id, Name: "Acme"}, nil
}
func (m *memCompanies) Update(context.Context, *entity.Company) error { return nil }
func (m *memCompanies) List(context.Context, int, int) ([]*entity.Company, error) {
	return nil, nil
}
func (m *memCompanies) Delete(context.Context, string) error { return nil }

type memDepartments struct{ owner map[string]string }

func (m *memDepartments) Create(context.Context, *entity.Department) error { return nil }
func (m *memDepartments) GetByID(_ context.Context, id string) (*entity.Department, error) {
	c, ok := m.owner[id]
	if !ok {
		return nil, nil
	}
	return &entity.Department{ID: id, CompanyID: c}, nil
}
func (m *memDepartments) Update(context.Context, *entity.Department) error { return nil }
func (m *memDepartments) ListByCompany(context.Context, string, int, int) ([]*entity.Department, error) {
	return nil, nil
}
func (m *memDepartments) Delete(context.Context, string) error { return nil }

type memDesignations struct{ owner map[string]string }

func (m *memDesignations) Create(context.Context, *entity.Designation) error { return nil }
func (m *memDesignations) GetByID(_ context.Context, id string) (*entity.Designation, error) {
	c, ok := m.owner[id]
	if !ok {
		return nil, nil
	}
	return &entity.Designation{ID: id, CompanyID: c, Title: "Mechanic"}, nil
}
func (m *memDesignations) Update(context.Context, *entity.Designation) error { return nil }
func (m *memDesignations) ListByCompany(context.Context, string, int, int) ([]*entity.Designation, error) {
	return nil, nil
}
func (m *memDesignations) Delete(context.Context, string) error { return nil }

// fakeTx ejecuta fn sobre los mismos repos y descarta lo creado si fn falla.
type fakeTx struct {
	users     *memUsers
	employees *memEmployees
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.UserRepository, repository.EmployeeRepository) error) error {
	before := make(map[string]*entity.User, len(f.users.byEmail))
	for k, v := range f.users.byEmail {
		before[k] = v
	}
	n := len(f.employees.created)
	if err := fn(f.users, f.employees); err != nil {
		f.users.byEmail = before
		f.employees.created = f.employees.created[:n]
		return err
	}
	return nil
}

type memRevoker struct{ revoked map[string]time.Time }

func (m *memRevoker) Revoke(id string, until time.Time) { m.revoked[id] = until }
func (m *memRevoker) IsRevoked(id string) bool {
	_, ok := m.revoked[id]
	return ok
}

type fixture struct {
	uc        *auth.AuthUseCase
	users     *memUsers
	employees *memEmployees
	revoker   *memRevoker
}

func newFixture() *fixture {
	users := &memUsers{byEmail: map[string]*entity.User{}}
	employees := &memEmployees{titles: map[string]string{}, profiles: map[string]*entity.EmployeeProfile{}}
	revoker := &memRevoker{revoked: map[string]time.Time{}}
	repos := auth.Repos{
		Users:        users,
		Employees:    employees,
		Companies:    &memCompanies{ids: map[string]bool{companyID: true}},
		Departments:  &memDepartments{owner: map[string]string{deptID: companyID, "dept-otra": "otra"}},
		Designations: &memDesignations{owner: map[string]string{desigID: companyID}},
	}
	uc := auth.NewAuthUseCase(repos, &fakeTx{users: users, employees: employees}, revoker,
		auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}, logger.Nop())
	return &fixture{uc: uc, users: users, employees: employees, revoker: revoker}
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:           "Rahim@Example.com",
		Password:        "s3cretpass",
		ConfirmPassword: "s3cretpass",
		Name:            "Rahim",
		CompanyID:       companyID,
		DepartmentID:    deptID,
		DesignationID:   desigID,
		Mobile:          "01711000000",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioYEmpleado(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "rahim@example.com", out.User.Email)
	assert.True(t, out.User.IsActive)
	require.Len(t, f.employees.created, 1)
	require.NotNil(t, f.employees.created[0].UserID)
	assert.Equal(t, out.User.ID, *f.employees.created[0].UserID)
	assert.NotEqual(t, "s3cretpass", f.users.byEmail["rahim@example.com"].PasswordHash)
}

func TestRegister_PasswordsDistintas(t *testing.T) {
	f := newFixture()
	in := registerReq()
	in.ConfirmPassword = "otra-cosa"

	_, err := f.uc.Register(context.Background(), in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "confirm_password")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = f.uc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_DepartamentoDeOtraEmpresa(t *testing.T) {
	f := newFixture()
	in := registerReq()
	in.DepartmentID = "dept-otra"

	_, err := f.uc.Register(context.Background(), in)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "department_id")
	assert.Empty(t, f.users.byEmail)
}

func TestRegister_FallaEmpleado_RevierteUsuario(t *testing.T) {
	f := newFixture()
	f.employees.failOn = domain.ErrDuplicate

	_, err := f.uc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, f.users.byEmail, "el usuario no debe quedar sin ficha de empleado")
}

// ── Login / Logout ───────────────────────────────────────────────────────────

func TestLogin_RolDesdeCargo(t *testing.T) {
	f := newFixture()
	reg, err := f.uc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	f.employees.titles[reg.User.ID] = "Mechanic"

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{Email: "rahim@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.UserID)
	assert.Equal(t, "Login successful", out.Message)

	claims, err := pkgjwt.ParseClaims(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "mechanic", claims.Role)
	assert.Equal(t, companyID, claims.CompanyID)
	assert.NotEmpty(t, claims.TokenID())
}

func TestLogin_Superusuario(t *testing.T) {
	f := newFixture()
	reg, err := f.uc.Register(context.Background(), registerReq())
	require.NoError(t, err)
	f.users.byEmail["rahim@example.com"].IsSuperuser = true
	f.employees.titles[reg.User.ID] = "Mechanic"

	out, err := f.uc.Login(context.Background(), dto.LoginRequest{Email: "rahim@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	_, _, role, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "superuser", role)
}

func TestLogin_Errores(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = f.uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.uc.Login(context.Background(), dto.LoginRequest{Email: "rahim@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	f.users.byEmail["rahim@example.com"].IsActive = false
	_, err = f.uc.Login(context.Background(), dto.LoginRequest{Email: "rahim@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogout_RevocaJTI(t *testing.T) {
	f := newFixture()
	exp := time.Now().Add(time.Hour)

	require.NoError(t, f.uc.Logout(context.Background(), "jti-1", exp))
	assert.True(t, f.revoker.IsRevoked("jti-1"))
	assert.Equal(t, exp, f.revoker.revoked["jti-1"])

	assert.ErrorIs(t, f.uc.Logout(context.Background(), "", exp), domain.ErrUnauthorized)
}

// ── Employee details ─────────────────────────────────────────────────────────

func TestEmployeeDetails(t *testing.T) {
	f := newFixture()
	f.employees.profiles["u1"] = &entity.EmployeeProfile{Name: "Rahim", Designation: "Mechanic", Department: "Maintenance", Company: "Acme"}

	out, err := f.uc.EmployeeDetails(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Maintenance", out.Department)

	_, err = f.uc.EmployeeDetails(context.Background(), "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
