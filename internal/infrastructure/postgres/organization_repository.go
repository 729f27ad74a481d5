package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var (
	_ repository.DepartmentRepository  = (*DepartmentRepo)(nil)
	_ repository.DesignationRepository = (*DesignationRepo)(nil)
	_ repository.EmployeeRepository    = (*EmployeeRepo)(nil)
)

// ── Department ───────────────────────────────────────────────────────────────

// DepartmentRepo departamentos sobre PostgreSQL.
type DepartmentRepo struct {
	q Querier
}

func NewDepartmentRepository(q Querier) *DepartmentRepo {
	return &DepartmentRepo{q: q}
}

const departmentColumns = `id, company_id, name, code, description, created_at, updated_at`

func (r *DepartmentRepo) Create(ctx context.Context, d *entity.Department) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO departments (`+departmentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.CompanyID, d.Name, d.Code, d.Description, d.CreatedAt, d.UpdatedAt)
	return writeErr("insert department", err)
}

func (r *DepartmentRepo) GetByID(ctx context.Context, id string) (*entity.Department, error) {
	var d entity.Department
	err := r.q.QueryRow(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id).
		Scan(&d.ID, &d.CompanyID, &d.Name, &d.Code, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

func (r *DepartmentRepo) Update(ctx context.Context, d *entity.Department) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE departments SET name = $2, code = $3, description = $4, updated_at = $5 WHERE id = $1`,
		d.ID, d.Name, d.Code, d.Description, d.UpdatedAt)
	if err != nil {
		return writeErr("update department", err)
	}
	return affected(tag)
}

func (r *DepartmentRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Department, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+departmentColumns+` FROM departments
		WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.Code, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *DepartmentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete department", err)
	}
	return affected(tag)
}

// ── Designation ──────────────────────────────────────────────────────────────

// DesignationRepo cargos sobre PostgreSQL.
type DesignationRepo struct {
	q Querier
}

func NewDesignationRepository(q Querier) *DesignationRepo {
	return &DesignationRepo{q: q}
}

const designationColumns = `id, company_id, title, description, department_id, level, created_at, updated_at`

func (r *DesignationRepo) Create(ctx context.Context, d *entity.Designation) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO designations (`+designationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.CompanyID, d.Title, d.Description, d.DepartmentID, d.Level, d.CreatedAt, d.UpdatedAt)
	return writeErr("insert designation", err)
}

func (r *DesignationRepo) GetByID(ctx context.Context, id string) (*entity.Designation, error) {
	d, err := scanDesignation(r.q.QueryRow(ctx, `SELECT `+designationColumns+` FROM designations WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get designation: %w", err)
	}
	return d, nil
}

func (r *DesignationRepo) Update(ctx context.Context, d *entity.Designation) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE designations SET title = $2, description = $3, department_id = $4, level = $5, updated_at = $6
		WHERE id = $1`,
		d.ID, d.Title, d.Description, d.DepartmentID, d.Level, d.UpdatedAt)
	if err != nil {
		return writeErr("update designation", err)
	}
	return affected(tag)
}

func (r *DesignationRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Designation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+designationColumns+` FROM designations
		WHERE company_id = $1 ORDER BY level, title LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list designations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Designation
	for rows.Next() {
		d, err := scanDesignation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan designation: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *DesignationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete designation", err)
	}
	return affected(tag)
}

func scanDesignation(s rowScanner) (*entity.Designation, error) {
	var d entity.Designation
	if err := s.Scan(&d.ID, &d.CompanyID, &d.Title, &d.Description, &d.DepartmentID, &d.Level, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// ── Employee ─────────────────────────────────────────────────────────────────

// EmployeeRepo empleados sobre PostgreSQL (pool o tx).
type EmployeeRepo struct {
	q Querier
}

func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, company_id, user_id, name, department_id, designation_id, mobile, employee_id,
	date_of_joining, created_at, updated_at`

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.CompanyID, e.UserID, e.Name, e.DepartmentID, e.DesignationID, e.Mobile, e.EmployeeID,
		e.DateOfJoining, e.CreatedAt, e.UpdatedAt)
	return writeErr("insert employee", err)
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *EmployeeRepo) GetByUserID(ctx context.Context, userID string) (*entity.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE user_id = $1`, userID)
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE employees SET user_id = $2, name = $3, department_id = $4, designation_id = $5, mobile = $6,
			employee_id = $7, date_of_joining = $8, updated_at = $9
		WHERE id = $1`,
		e.ID, e.UserID, e.Name, e.DepartmentID, e.DesignationID, e.Mobile, e.EmployeeID, e.DateOfJoining, e.UpdatedAt)
	if err != nil {
		return writeErr("update employee", err)
	}
	return affected(tag)
}

func (r *EmployeeRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+employeeColumns+` FROM employees
		WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete employee", err)
	}
	return affected(tag)
}

// GetProfileByUserID nombre del empleado con cargo, departamento y empresa resueltos.
func (r *EmployeeRepo) GetProfileByUserID(ctx context.Context, userID string) (*entity.EmployeeProfile, error) {
	query := `
		SELECT e.name, COALESCE(ds.title, ''), COALESCE(dp.name, ''), c.name
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		LEFT JOIN designations ds ON ds.id = e.designation_id
		LEFT JOIN departments dp ON dp.id = e.department_id
		WHERE e.user_id = $1`
	var p entity.EmployeeProfile
	if err := r.q.QueryRow(ctx, query, userID).Scan(&p.Name, &p.Designation, &p.Department, &p.Company); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee profile: %w", err)
	}
	return &p, nil
}

// GetDesignationTitleByUserID "" si el usuario no tiene empleado o cargo.
func (r *EmployeeRepo) GetDesignationTitleByUserID(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT COALESCE(ds.title, '')
		FROM employees e
		LEFT JOIN designations ds ON ds.id = e.designation_id
		WHERE e.user_id = $1`
	var title string
	if err := r.q.QueryRow(ctx, query, userID).Scan(&title); err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("get designation title: %w", err)
	}
	return title, nil
}

func (r *EmployeeRepo) findOne(ctx context.Context, query, arg string) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func scanEmployee(s rowScanner) (*entity.Employee, error) {
	var e entity.Employee
	err := s.Scan(&e.ID, &e.CompanyID, &e.UserID, &e.Name, &e.DepartmentID, &e.DesignationID, &e.Mobile,
		&e.EmployeeID, &e.DateOfJoining, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
