package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo máquinas sobre PostgreSQL.
type MachineRepo struct {
	q Querier
}

func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

const machineColumns = `m.id, m.company_id, m.machine_id, m.category_id, m.type_id, m.brand_id, m.supplier_id,
	m.model_number, m.serial_no, m.line_id, m.sequence, m.purchase_date, m.last_breakdown_start,
	m.last_repairing_start, m.mechanic_id, m.operator_id, m.last_problem, m.status, m.created_at, m.updated_at`

const machineDetailSelect = `
	SELECT ` + machineColumns + `,
		COALESCE(mc.name, ''), COALESCE(mt.name, ''), COALESCE(b.name, ''), COALESCE(s.name, ''),
		COALESCE(l.name, ''), COALESCE(f.name, ''), COALESCE(l.operation_type, '')
	FROM machines m
	LEFT JOIN machine_categories mc ON mc.id = m.category_id
	LEFT JOIN machine_types mt ON mt.id = m.type_id
	LEFT JOIN brands b ON b.id = m.brand_id
	LEFT JOIN suppliers s ON s.id = m.supplier_id
	LEFT JOIN lines l ON l.id = m.line_id
	LEFT JOIN floors f ON f.id = l.floor_id`

// machineOrderColumns campos de orden permitidos -> columna SQL.
var machineOrderColumns = map[string]string{
	"machine_id":           "m.machine_id",
	"purchase_date":        "m.purchase_date",
	"status":               "m.status",
	"sequence":             "m.sequence",
	"last_breakdown_start": "m.last_breakdown_start",
}

// Create domain.ErrDuplicate si machine_id ya existe.
func (r *MachineRepo) Create(ctx context.Context, m *entity.Machine) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO machines (id, company_id, machine_id, category_id, type_id, brand_id, supplier_id,
			model_number, serial_no, line_id, sequence, purchase_date, last_breakdown_start,
			last_repairing_start, mechanic_id, operator_id, last_problem, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
		m.ID, m.CompanyID, m.MachineID, m.CategoryID, m.TypeID, m.BrandID, m.SupplierID,
		m.ModelNumber, m.SerialNo, m.LineID, m.Sequence, m.PurchaseDate, m.LastBreakdownStart,
		m.LastRepairingStart, m.MechanicID, m.OperatorID, m.LastProblem, m.Status, m.CreatedAt, m.UpdatedAt)
	return writeErr("insert machine", err)
}

func (r *MachineRepo) GetByID(ctx context.Context, id string) (*entity.Machine, error) {
	var m entity.Machine
	err := scanMachine(r.q.QueryRow(ctx, `SELECT `+machineColumns+` FROM machines m WHERE m.id = $1`, id), &m)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

func (r *MachineRepo) GetDetail(ctx context.Context, id string) (*entity.MachineDetail, error) {
	return r.detail(ctx, machineDetailSelect+` WHERE m.id = $1`, id)
}

// GetDetailByMachineID busca por el código visible dentro de la empresa.
func (r *MachineRepo) GetDetailByMachineID(ctx context.Context, companyID, machineID string) (*entity.MachineDetail, error) {
	return r.detail(ctx, machineDetailSelect+` WHERE m.company_id = $1 AND m.machine_id = $2`, companyID, machineID)
}

func (r *MachineRepo) Update(ctx context.Context, m *entity.Machine) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE machines SET machine_id = $2, category_id = $3, type_id = $4, brand_id = $5, supplier_id = $6,
			model_number = $7, serial_no = $8, line_id = $9, sequence = $10, purchase_date = $11,
			last_breakdown_start = $12, last_repairing_start = $13, mechanic_id = $14, operator_id = $15,
			last_problem = $16, status = $17, updated_at = $18
		WHERE id = $1`,
		m.ID, m.MachineID, m.CategoryID, m.TypeID, m.BrandID, m.SupplierID,
		m.ModelNumber, m.SerialNo, m.LineID, m.Sequence, m.PurchaseDate,
		m.LastBreakdownStart, m.LastRepairingStart, m.MechanicID, m.OperatorID,
		m.LastProblem, m.Status, m.UpdatedAt)
	if err != nil {
		return writeErr("update machine", err)
	}
	return affected(tag)
}

// List aplica los filtros de f y devuelve la página pedida junto con el total sin paginar.
func (r *MachineRepo) List(ctx context.Context, f repository.MachineFilter) ([]*entity.MachineDetail, int, error) {
	where, args := machineWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM machines m
		LEFT JOIN machine_categories mc ON mc.id = m.category_id
		LEFT JOIN machine_types mt ON mt.id = m.type_id
		LEFT JOIN brands b ON b.id = m.brand_id
		LEFT JOIN suppliers s ON s.id = m.supplier_id
		LEFT JOIN lines l ON l.id = m.line_id
		LEFT JOIN floors f ON f.id = l.floor_id
		`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count machines: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`%s %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		machineDetailSelect, where, machineOrderBy(f.Ordering), len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var list []*entity.MachineDetail
	for rows.Next() {
		d, err := scanMachineDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, d)
	}
	return list, total, rows.Err()
}

func (r *MachineRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete machine", err)
	}
	return affected(tag)
}

func (r *MachineRepo) detail(ctx context.Context, query string, args ...any) (*entity.MachineDetail, error) {
	d, err := scanMachineDetail(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine detail: %w", err)
	}
	return d, nil
}

// machineWhere arma el WHERE con placeholders numerados; los valores nunca se interpolan.
func machineWhere(f repository.MachineFilter) (string, []any) {
	conds := []string{"m.company_id = $1"}
	args := []any{f.CompanyID}
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	contains := map[string]string{
		"m.machine_id":   f.MachineID,
		"mc.name":        f.Category,
		"mt.name":        f.Type,
		"b.name":         f.Brand,
		"m.model_number": f.ModelNumber,
		"m.serial_no":    f.SerialNo,
		"f.name":         f.Floor,
		"l.name":         f.Line,
		"s.name":         f.Supplier,
	}
	for _, col := range []string{"m.machine_id", "mc.name", "mt.name", "b.name", "m.model_number", "m.serial_no", "f.name", "l.name", "s.name"} {
		if v := strings.TrimSpace(contains[col]); v != "" {
			add(col+" ILIKE '%%' || $%d || '%%'", v)
		}
	}
	if f.PurchaseDate != nil {
		add("m.purchase_date = $%d", *f.PurchaseDate)
	}
	if f.Status != "" {
		add("m.status = $%d", f.Status)
	}
	if v := strings.TrimSpace(f.Search); v != "" {
		args = append(args, v)
		n := len(args)
		conds = append(conds, fmt.Sprintf(`(m.machine_id ILIKE '%%' || $%[1]d || '%%'
			OR m.model_number ILIKE '%%' || $%[1]d || '%%'
			OR m.serial_no ILIKE '%%' || $%[1]d || '%%'
			OR mc.name ILIKE '%%' || $%[1]d || '%%'
			OR mt.name ILIKE '%%' || $%[1]d || '%%'
			OR b.name ILIKE '%%' || $%[1]d || '%%'
			OR s.name ILIKE '%%' || $%[1]d || '%%')`, n))
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// machineOrderBy traduce el parámetro ordering; desconocido o vacío ordena por machine_id.
func machineOrderBy(ordering string) string {
	dir := "ASC"
	if strings.HasPrefix(ordering, "-") {
		dir = "DESC"
		ordering = ordering[1:]
	}
	col, ok := machineOrderColumns[ordering]
	if !ok {
		return "m.machine_id ASC"
	}
	return fmt.Sprintf("%s %s NULLS LAST, m.machine_id ASC", col, dir)
}

func scanMachine(s rowScanner, m *entity.Machine, extra ...any) error {
	dest := []any{
		&m.ID, &m.CompanyID, &m.MachineID, &m.CategoryID, &m.TypeID, &m.BrandID, &m.SupplierID,
		&m.ModelNumber, &m.SerialNo, &m.LineID, &m.Sequence, &m.PurchaseDate, &m.LastBreakdownStart,
		&m.LastRepairingStart, &m.MechanicID, &m.OperatorID, &m.LastProblem, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	}
	return s.Scan(append(dest, extra...)...)
}

func scanMachineDetail(s rowScanner) (*entity.MachineDetail, error) {
	var d entity.MachineDetail
	err := scanMachine(s, &d.Machine, &d.Category, &d.Type, &d.Brand, &d.Supplier, &d.Line, &d.Floor, &d.Operation)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
