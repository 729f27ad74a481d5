package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-ops-api/internal/application/dto"
	"github.com/jhoicas/factory-ops-api/internal/application/usecase"
	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/maintenance"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "se esperaba ValidationError, fue %v", err)
	return verr.Fields
}

func TestCompanyUseCase_CreaConIndustriaPorDefecto(t *testing.T) {
	repo := &memCompanies{byID: map[string]*entity.Company{}}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme Apparel"})
	require.NoError(t, err)
	assert.Equal(t, entity.IndustryRMG, out.IndustryType)
	assert.Nil(t, out.Email)
}

func TestCompanyUseCase_OtraEmpresaProhibida(t *testing.T) {
	repo := &memCompanies{byID: map[string]*entity.Company{
		"company-b": {ID: "company-b", Name: "B"},
	}}
	uc := usecase.NewCompanyUseCase(repo)
	ctx := context.Background()

	_, err := uc.Update(ctx, "company-a", "company-b", dto.UpdateCompanyRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, uc.Delete(ctx, "company-a", "company-b"), domain.ErrForbidden)
	assert.Equal(t, "B", repo.byID["company-b"].Name)
}

func TestLineUseCase_PisoDebeSerDeLaEmpresa(t *testing.T) {
	p := newPlant()
	uc := usecase.NewLineUseCase(p.lines, p.floors)

	_, err := uc.Create(context.Background(), "company-a", dto.CreateLineRequest{
		Name: "Line 9", OperationType: entity.OperationSewing, FloorID: "floor-b",
	})
	assert.Contains(t, fieldsOf(t, err), "floor_id")

	out, err := uc.Create(context.Background(), "company-a", dto.CreateLineRequest{
		Name: "Line 9", OperationType: entity.OperationSewing, FloorID: "floor-a",
	})
	require.NoError(t, err)
	assert.Equal(t, "floor-a", out.FloorID)
}

func TestLineUseCase_EmpresaSeResuelvePorElPiso(t *testing.T) {
	p := newPlant()
	uc := usecase.NewLineUseCase(p.lines, p.floors)
	ctx := context.Background()

	got, err := uc.GetByID(ctx, "company-a", "line-b")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = uc.GetByID(ctx, "company-a", "line-a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Line 1", got.Name)

	assert.ErrorIs(t, uc.Delete(ctx, "company-a", "line-b"), domain.ErrNotFound)
}

func TestCatalogUseCase_TipoDesconocidoNoExiste(t *testing.T) {
	p := newPlant()
	uc := usecase.NewCatalogUseCase(p.catalog)

	_, err := uc.Create(context.Background(), entity.CatalogKind("color"), "company-a", dto.CatalogItemRequest{Name: "Red"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func newMachineUseCase(p *plant, obs usecase.MachineObserver) *usecase.MachineUseCase {
	return usecase.NewMachineUseCase(p.machines, p.lines, p.catalog, obs)
}

func TestMachineUseCase_CreaActivaPorDefecto(t *testing.T) {
	p := newPlant()
	uc := newMachineUseCase(p, nil)

	out, err := uc.Create(context.Background(), "company-a", dto.CreateMachineRequest{
		MachineID:  "SEW-001",
		LineID:     strPtr("line-a"),
		CategoryID: strPtr("cat-a"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MachineActive, out.Status)
	assert.Equal(t, "company-a", out.CompanyID)
}

func TestMachineUseCase_RechazaReferenciasAjenas(t *testing.T) {
	p := newPlant()
	uc := newMachineUseCase(p, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, "company-a", dto.CreateMachineRequest{MachineID: "SEW-002", LineID: strPtr("line-b")})
	assert.Contains(t, fieldsOf(t, err), "line_id")

	_, err = uc.Create(ctx, "company-a", dto.CreateMachineRequest{MachineID: "SEW-002", CategoryID: strPtr("cat-b")})
	assert.Contains(t, fieldsOf(t, err), "category_id")
	assert.Empty(t, p.machines.byID)
}

func TestMachineUseCase_ActualizarNotificaTrasGuardar(t *testing.T) {
	p := newPlant()
	obs := &recordingObserver{}
	uc := newMachineUseCase(p, obs)
	ctx := context.Background()

	created, err := uc.Create(ctx, "company-a", dto.CreateMachineRequest{MachineID: "SEW-001", LineID: strPtr("line-a")})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "company-a", created.ID, dto.UpdateMachineRequest{Status: strPtr(entity.MachineBroken)})
	require.NoError(t, err)
	assert.Equal(t, entity.MachineBroken, out.Status)
	assert.Equal(t, entity.MachineBroken, p.machines.byID[created.ID].Status)

	require.Len(t, obs.calls, 1)
	assert.Equal(t, entity.MachineActive, obs.calls[0][0].Status)
	assert.Equal(t, entity.MachineBroken, obs.calls[0][1].Status)
}

func TestMachineUseCase_ActualizarOtraEmpresaDevuelveNil(t *testing.T) {
	p := newPlant()
	obs := &recordingObserver{}
	uc := newMachineUseCase(p, obs)
	ctx := context.Background()

	created, err := uc.Create(ctx, "company-b", dto.CreateMachineRequest{MachineID: "CUT-001"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "company-a", created.ID, dto.UpdateMachineRequest{Status: strPtr(entity.MachineBroken)})
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Empty(t, obs.calls)
}

func TestMachineUseCase_ActualizarConCadenaVaciaQuitaLinea(t *testing.T) {
	p := newPlant()
	uc := newMachineUseCase(p, nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, "company-a", dto.CreateMachineRequest{MachineID: "SEW-001", LineID: strPtr("line-a")})
	require.NoError(t, err)

	out, err := uc.Update(ctx, "company-a", created.ID, dto.UpdateMachineRequest{LineID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, out.LineID)
}

func TestMachineUseCase_ListarOrdenPermitido(t *testing.T) {
	p := newPlant()
	uc := newMachineUseCase(p, nil)
	ctx := context.Background()

	_, err := uc.List(ctx, repository.MachineFilter{CompanyID: "company-a", Ordering: "serial_no"})
	assert.Contains(t, fieldsOf(t, err), "ordering")

	_, err = uc.List(ctx, repository.MachineFilter{CompanyID: "company-a", Ordering: "-last_breakdown_start"})
	require.NoError(t, err)
	assert.Equal(t, "-last_breakdown_start", p.machines.lastFilter.Ordering)
}

func TestMachineUseCase_ListarTamanoDePagina(t *testing.T) {
	p := newPlant()
	uc := newMachineUseCase(p, nil)
	ctx := context.Background()

	out, err := uc.List(ctx, repository.MachineFilter{CompanyID: "company-a"})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Page.Limit)

	out, err = uc.List(ctx, repository.MachineFilter{CompanyID: "company-a", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, out.Page.Limit)
}

func newBreakdownUseCase(p *plant) *usecase.BreakdownLogUseCase {
	p.machines.byID["m-a"] = &entity.Machine{ID: "m-a", CompanyID: "company-a", MachineID: "SEW-001", Status: entity.MachineActive}
	p.machines.byID["m-b"] = &entity.Machine{ID: "m-b", CompanyID: "company-b", MachineID: "CUT-001", Status: entity.MachineActive}
	return usecase.NewBreakdownLogUseCase(p.breakdowns, p.machines, p.lines, p.problems, p.employees)
}

func TestBreakdownLogUseCase_Crear(t *testing.T) {
	p := newPlant()
	uc := newBreakdownUseCase(p)
	start := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	repair := start.Add(10 * time.Minute)

	out, err := uc.Create(context.Background(), "company-a", dto.CreateBreakdownLogRequest{
		MachineID:         strPtr("m-a"),
		MechanicID:        strPtr("emp-a"),
		ProblemCategoryID: strPtr("prob-1"),
		LineID:            strPtr("line-a"),
		BreakdownStart:    start,
		RepairingStart:    &repair,
		LostTime:          maintenance.Duration(45 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "company-a", out.CompanyID)
	assert.Equal(t, "0:45:00", out.LostTime.String())
	assert.Len(t, p.breakdowns.byID, 1)
}

func TestBreakdownLogUseCase_Validacion(t *testing.T) {
	start := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	early := start.Add(-time.Minute)

	cases := []struct {
		name  string
		in    dto.CreateBreakdownLogRequest
		field string
	}{
		{"sin máquina", dto.CreateBreakdownLogRequest{BreakdownStart: start}, "machine_id"},
		{"máquina de otra empresa", dto.CreateBreakdownLogRequest{MachineID: strPtr("m-b"), BreakdownStart: start}, "machine_id"},
		{"tiempo perdido negativo", dto.CreateBreakdownLogRequest{
			MachineID: strPtr("m-a"), BreakdownStart: start, LostTime: maintenance.Duration(-time.Minute),
		}, "lost_time"},
		{"reparación antes de la parada", dto.CreateBreakdownLogRequest{
			MachineID: strPtr("m-a"), BreakdownStart: start, RepairingStart: &early,
		}, "repairing_start"},
		{"línea de otra empresa", dto.CreateBreakdownLogRequest{
			MachineID: strPtr("m-a"), BreakdownStart: start, LineID: strPtr("line-b"),
		}, "line_id"},
		{"mecánico de otra empresa", dto.CreateBreakdownLogRequest{
			MachineID: strPtr("m-a"), BreakdownStart: start, MechanicID: strPtr("emp-b"),
		}, "mechanic_id"},
		{"categoría inexistente", dto.CreateBreakdownLogRequest{
			MachineID: strPtr("m-a"), BreakdownStart: start, ProblemCategoryID: strPtr("nope"),
		}, "problem_category_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlant()
			uc := newBreakdownUseCase(p)
			_, err := uc.Create(context.Background(), "company-a", tc.in)
			assert.Contains(t, fieldsOf(t, err), tc.field)
			assert.Empty(t, p.breakdowns.byID)
		})
	}
}

func TestBreakdownLogUseCase_OtraEmpresaOculta(t *testing.T) {
	p := newPlant()
	uc := newBreakdownUseCase(p)
	p.breakdowns.byID["b-1"] = &entity.BreakdownLog{ID: "b-1", CompanyID: "company-b", MachineID: strPtr("m-b")}

	got, err := uc.GetByID(context.Background(), "company-a", "b-1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, uc.Delete(context.Background(), "company-a", "b-1"), domain.ErrNotFound)
}

func TestProblemCategoryUseCase_SeveridadPorDefecto(t *testing.T) {
	p := newPlant()
	uc := usecase.NewProblemCategoryUseCase(p.problems, nil)

	out, err := uc.Create(context.Background(), dto.ProblemCategoryRequest{Name: "Oil leak"})
	require.NoError(t, err)
	assert.Equal(t, entity.SeverityMinor, out.Severity)
}

func TestUserUseCase_AcotadoALaEmpresa(t *testing.T) {
	users := &memUsers{byID: map[string]*entity.User{
		"u-a": {ID: "u-a", CompanyID: "company-a", Email: "ana@a.com", IsActive: true},
		"u-b": {ID: "u-b", CompanyID: "company-b", Email: "beto@b.com", IsActive: true},
	}}
	groups := &memGroups{list: []*entity.Group{{ID: "g-1", Name: "admin"}, {ID: "g-2", Name: "mechanic"}}}
	uc := usecase.NewUserUseCase(users, groups)
	ctx := context.Background()

	list, err := uc.List(ctx, "company-a", 10, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "ana@a.com", list.Items[0].Email)

	got, err := uc.GetByID(ctx, "company-a", "u-b")
	require.NoError(t, err)
	assert.Nil(t, got)

	gl, err := uc.ListGroups(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, gl.Items, 2)

	g, err := uc.GetGroup(ctx, "g-2")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "mechanic", g.Name)

	g, err = uc.GetGroup(ctx, "g-9")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestDeviceTokenUseCase_AcotadoAlUsuario(t *testing.T) {
	uc := usecase.NewDeviceTokenUseCase(&memDeviceTokens{byID: map[string]*entity.DeviceToken{}})
	ctx := context.Background()

	mine, err := uc.Create(ctx, "u-1", "company-a", dto.CreateDeviceTokenRequest{Token: "https://push.example/abc"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "u-2", "company-a", dto.CreateDeviceTokenRequest{Token: "https://push.example/abc"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx, "u-2")
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	got, err := uc.GetByID(ctx, "u-2", mine.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(ctx, "u-2", mine.ID), domain.ErrNotFound)
	assert.NoError(t, uc.Delete(ctx, "u-1", mine.ID))
}

func TestDesignationUseCase_DepartamentoDebeSerDeLaEmpresa(t *testing.T) {
	depts := &memDepartments{byID: map[string]*entity.Department{
		"dep-a": {ID: "dep-a", CompanyID: "company-a", Name: "Mantenimiento"},
		"dep-b": {ID: "dep-b", CompanyID: "company-b", Name: "Calidad"},
	}}
	uc := usecase.NewDesignationUseCase(&memDesignations{byID: map[string]*entity.Designation{}}, depts)
	ctx := context.Background()

	_, err := uc.Create(ctx, "company-a", dto.CreateDesignationRequest{Title: "Mechanic", DepartmentID: strPtr("dep-b")})
	assert.Contains(t, fieldsOf(t, err), "department_id")

	d, err := uc.Create(ctx, "company-a", dto.CreateDesignationRequest{Title: "Mechanic", DepartmentID: strPtr("dep-a")})
	require.NoError(t, err)
	assert.Equal(t, "dep-a", *d.DepartmentID)

	// cadena vacía desvincula el departamento
	d, err = uc.Update(ctx, "company-a", d.ID, dto.UpdateDesignationRequest{DepartmentID: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, d.DepartmentID)

	assert.ErrorIs(t, uc.Delete(ctx, "company-b", d.ID), domain.ErrNotFound)
}

func TestEmployeeUseCase_RechazaReferenciasAjenas(t *testing.T) {
	p := newPlant()
	depts := &memDepartments{byID: map[string]*entity.Department{}}
	desigs := &memDesignations{byID: map[string]*entity.Designation{
		"des-b": {ID: "des-b", CompanyID: "company-b", Title: "HR"},
	}}
	users := &memUsers{byID: map[string]*entity.User{
		"u-b": {ID: "u-b", CompanyID: "company-b"},
	}}
	uc := usecase.NewEmployeeUseCase(p.employees, depts, desigs, users)

	_, err := uc.Create(context.Background(), "company-a", dto.CreateEmployeeRequest{
		Name:          "Rahim",
		DesignationID: strPtr("des-b"),
	})
	assert.Contains(t, fieldsOf(t, err), "designation_id")

	_, err = uc.Create(context.Background(), "company-a", dto.CreateEmployeeRequest{
		Name:   "Rahim",
		UserID: strPtr("u-b"),
	})
	assert.Contains(t, fieldsOf(t, err), "user_id")

	e, err := uc.Create(context.Background(), "company-a", dto.CreateEmployeeRequest{Name: "Karim"})
	require.NoError(t, err)
	assert.Equal(t, "company-a", e.CompanyID)
}
