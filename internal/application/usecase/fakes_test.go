package usecase_test

import (
	"context"

	"github.com/jhoicas/factory-ops-api/internal/domain"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

type memCompanies struct{ byID map[string]*entity.Company }

func (m *memCompanies) Create(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return m.byID[id], nil
}
func (m *memCompanies) Update(_ context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanies) List(context.Context, int, int) ([]*entity.Company, error) { return nil, nil }
func (m *memCompanies) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memFloors struct{ byID map[string]*entity.Floor }

func (m *memFloors) Create(_ context.Context, f *entity.Floor) error {
	m.byID[f.ID] = f
	return nil
}
func (m *memFloors) GetByID(_ context.Context, id string) (*entity.Floor, error) {
	return m.byID[id], nil
}
func (m *memFloors) Update(_ context.Context, f *entity.Floor) error {
	m.byID[f.ID] = f
	return nil
}
func (m *memFloors) ListByCompany(context.Context, string, int, int) ([]*entity.Floor, error) {
	return nil, nil
}
func (m *memFloors) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memLines struct {
	floors *memFloors
	byID   map[string]*entity.Line
}

func (m *memLines) Create(_ context.Context, l *entity.Line) error {
	m.byID[l.ID] = l
	return nil
}
func (m *memLines) GetByID(_ context.Context, id string) (*entity.Line, error) {
	return m.byID[id], nil
}
func (m *memLines) Update(_ context.Context, l *entity.Line) error {
	m.byID[l.ID] = l
	return nil
}
func (m *memLines) ListByCompany(context.Context, string, int, int) ([]*entity.Line, error) {
	return nil, nil
}
func (m *memLines) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}
func (m *memLines) GetLocation(_ context.Context, id string) (*entity.LineLocation, error) {
	l := m.byID[id]
	if l == nil {
		return nil, nil
	}
	f := m.floors.byID[l.FloorID]
	return &entity.LineLocation{
		LineID:        l.ID,
		LineName:      l.Name,
		OperationType: l.OperationType,
		FloorID:       f.ID,
		FloorName:     f.Name,
		CompanyID:     f.CompanyID,
	}, nil
}

type memCatalog struct{ byID map[string]*entity.CatalogItem }

func (m *memCatalog) Create(_ context.Context, it *entity.CatalogItem) error {
	m.byID[it.ID] = it
	return nil
}
func (m *memCatalog) GetByID(_ context.Context, kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	it := m.byID[id]
	if it == nil || it.Kind != kind {
		return nil, nil
	}
	return it, nil
}
func (m *memCatalog) Update(_ context.Context, it *entity.CatalogItem) error {
	m.byID[it.ID] = it
	return nil
}
func (m *memCatalog) ListByCompany(context.Context, entity.CatalogKind, string, int, int) ([]*entity.CatalogItem, error) {
	return nil, nil
}
func (m *memCatalog) Delete(_ context.Context, _ entity.CatalogKind, id string) error {
	delete(m.byID, id)
	return nil
}

type memMachines struct {
	byID       map[string]*entity.Machine
	lastFilter repository.MachineFilter
}

func (m *memMachines) Create(_ context.Context, mc *entity.Machine) error {
	cp := *mc
	m.byID[mc.ID] = &cp
	return nil
}
func (m *memMachines) GetByID(_ context.Context, id string) (*entity.Machine, error) {
	mc, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *mc
	return &cp, nil
}
func (m *memMachines) GetDetail(_ context.Context, id string) (*entity.MachineDetail, error) {
	mc, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &entity.MachineDetail{Machine: *mc}, nil
}
func (m *memMachines) GetDetailByMachineID(context.Context, string, string) (*entity.MachineDetail, error) {
	return nil, nil
}
func (m *memMachines) Update(_ context.Context, mc *entity.Machine) error {
	cp := *mc
	m.byID[mc.ID] = &cp
	return nil
}
func (m *memMachines) List(_ context.Context, f repository.MachineFilter) ([]*entity.MachineDetail, int, error) {
	m.lastFilter = f
	out := make([]*entity.MachineDetail, 0, len(m.byID))
	for _, mc := range m.byID {
		if mc.CompanyID == f.CompanyID {
			out = append(out, &entity.MachineDetail{Machine: *mc})
		}
	}
	return out, len(out), nil
}
func (m *memMachines) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memBreakdowns struct{ byID map[string]*entity.BreakdownLog }

func (m *memBreakdowns) Create(_ context.Context, b *entity.BreakdownLog) error {
	m.byID[b.ID] = b
	return nil
}
func (m *memBreakdowns) GetByID(_ context.Context, id string) (*entity.BreakdownLog, error) {
	return m.byID[id], nil
}
func (m *memBreakdowns) Update(_ context.Context, b *entity.BreakdownLog) error {
	m.byID[b.ID] = b
	return nil
}
func (m *memBreakdowns) ListByCompany(context.Context, string, int, int) ([]*entity.BreakdownLog, error) {
	return nil, nil
}
func (m *memBreakdowns) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memProblems struct{ byID map[string]*entity.ProblemCategory }

func (m *memProblems) Create(_ context.Context, c *entity.ProblemCategory) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memProblems) GetByID(_ context.Context, id string) (*entity.ProblemCategory, error) {
	return m.byID[id], nil
}
func (m *memProblems) Update(_ context.Context, c *entity.ProblemCategory) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memProblems) List(context.Context, int, int) ([]*entity.ProblemCategory, error) {
	return nil, nil
}
func (m *memProblems) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memEmployees struct{ byID map[string]*entity.Employee }

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.byID[e.ID] = e
	return nil
}
func (m *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return m.byID[id], nil
}
func (m *memEmployees) GetByUserID(context.Context, string) (*entity.Employee, error) {
	return nil, nil
}
func (m *memEmployees) Update(_ context.Context, e *entity.Employee) error {
	m.byID[e.ID] = e
	return nil
}
func (m *memEmployees) ListByCompany(context.Context, string, int, int) ([]*entity.Employee, error) {
	return nil, nil
}
func (m *memEmployees) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}
func (m *memEmployees) GetProfileByUserID(context.Context, string) (*entity.EmployeeProfile, error) {
	return nil, nil
}
func (m *memEmployees) GetDesignationTitleByUserID(context.Context, string) (string, error) {
	return "", nil
}

type recordingObserver struct {
	calls [][2]entity.Machine
}

func (r *recordingObserver) MachineUpdated(_ context.Context, before, after *entity.Machine) {
	r.calls = append(r.calls, [2]entity.Machine{*before, *after})
}

// plant: empresa A con un piso, una línea y una categoría; empresa B con su propia línea.
type plant struct {
	floors     *memFloors
	lines      *memLines
	catalog    *memCatalog
	machines   *memMachines
	breakdowns *memBreakdowns
	problems   *memProblems
	employees  *memEmployees
}

func newPlant() *plant {
	floors := &memFloors{byID: map[string]*entity.Floor{
		"floor-a": {ID: "floor-a", CompanyID: "company-a", Name: "Floor 1"},
		"floor-b": {ID: "floor-b", CompanyID: "company-b", Name: "Floor B"},
	}}
	return &plant{
		floors: floors,
		lines: &memLines{floors: floors, byID: map[string]*entity.Line{
			"line-a": {ID: "line-a", FloorID: "floor-a", Name: "Line 1", OperationType: entity.OperationSewing},
			"line-b": {ID: "line-b", FloorID: "floor-b", Name: "Line B", OperationType: entity.OperationCutting},
		}},
		catalog: &memCatalog{byID: map[string]*entity.CatalogItem{
			"cat-a": {ID: "cat-a", CompanyID: "company-a", Kind: entity.CatalogCategory, Name: "Lockstitch"},
			"cat-b": {ID: "cat-b", CompanyID: "company-b", Kind: entity.CatalogCategory, Name: "Overlock"},
		}},
		machines:   &memMachines{byID: map[string]*entity.Machine{}},
		breakdowns: &memBreakdowns{byID: map[string]*entity.BreakdownLog{}},
		problems: &memProblems{byID: map[string]*entity.ProblemCategory{
			"prob-1": {ID: "prob-1", Name: "Needle break", Severity: entity.SeverityMinor},
		}},
		employees: &memEmployees{byID: map[string]*entity.Employee{
			"emp-a": {ID: "emp-a", CompanyID: "company-a", Name: "Rahim"},
			"emp-b": {ID: "emp-b", CompanyID: "company-b", Name: "Karim"},
		}},
	}
}

type memDepartments struct{ byID map[string]*entity.Department }

func (m *memDepartments) Create(_ context.Context, d *entity.Department) error {
	m.byID[d.ID] = d
	return nil
}
func (m *memDepartments) GetByID(_ context.Context, id string) (*entity.Department, error) {
	return m.byID[id], nil
}
func (m *memDepartments) Update(_ context.Context, d *entity.Department) error {
	m.byID[d.ID] = d
	return nil
}
func (m *memDepartments) ListByCompany(context.Context, string, int, int) ([]*entity.Department, error) {
	return nil, nil
}
func (m *memDepartments) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memDesignations struct{ byID map[string]*entity.Designation }

func (m *memDesignations) Create(_ context.Context, d *entity.Designation) error {
	m.byID[d.ID] = d
	return nil
}
func (m *memDesignations) GetByID(_ context.Context, id string) (*entity.Designation, error) {
	return m.byID[id], nil
}
func (m *memDesignations) Update(_ context.Context, d *entity.Designation) error {
	m.byID[d.ID] = d
	return nil
}
func (m *memDesignations) ListByCompany(context.Context, string, int, int) ([]*entity.Designation, error) {
	return nil, nil
}
func (m *memDesignations) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memUsers struct{ byID map[string]*entity.User }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byID[u.ID] = u
	return nil
}
func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.byID[id], nil
}
func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUsers) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.byID {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

type memGroups struct{ list []*entity.Group }

func (m *memGroups) List(context.Context, int, int) ([]*entity.Group, error) { return m.list, nil }
func (m *memGroups) GetByID(_ context.Context, id string) (*entity.Group, error) {
	for _, g := range m.list {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

type memDeviceTokens struct{ byID map[string]*entity.DeviceToken }

func (m *memDeviceTokens) Create(_ context.Context, t *entity.DeviceToken) error {
	for _, existing := range m.byID {
		if existing.Token == t.Token {
			return domain.ErrDuplicate
		}
	}
	m.byID[t.ID] = t
	return nil
}
func (m *memDeviceTokens) GetByID(_ context.Context, id string) (*entity.DeviceToken, error) {
	return m.byID[id], nil
}
func (m *memDeviceTokens) ListByUser(_ context.Context, userID string) ([]*entity.DeviceToken, error) {
	var out []*entity.DeviceToken
	for _, t := range m.byID {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (m *memDeviceTokens) ListByCompany(context.Context, string) ([]*entity.DeviceToken, error) {
	return nil, nil
}
func (m *memDeviceTokens) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}
func (m *memDeviceTokens) DeleteByToken(context.Context, string) error { return nil }
