package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var (
	_ repository.ProblemCategoryTypeRepository = (*ProblemCategoryTypeRepo)(nil)
	_ repository.ProblemCategoryRepository     = (*ProblemCategoryRepo)(nil)
	_ repository.BreakdownLogRepository        = (*BreakdownLogRepo)(nil)
)

// lost_time se guarda como INTERVAL y viaja como microsegundos enteros.
const lostTimeMicros = `(EXTRACT(EPOCH FROM b.lost_time) * 1000000)::bigint`

func toMicros(d time.Duration) int64    { return d.Microseconds() }
func fromMicros(us int64) time.Duration { return time.Duration(us) * time.Microsecond }

// ── ProblemCategoryType ──────────────────────────────────────────────────────

type ProblemCategoryTypeRepo struct {
	q Querier
}

func NewProblemCategoryTypeRepository(q Querier) *ProblemCategoryTypeRepo {
	return &ProblemCategoryTypeRepo{q: q}
}

func (r *ProblemCategoryTypeRepo) Create(ctx context.Context, t *entity.ProblemCategoryType) error {
	_, err := r.q.Exec(ctx, `INSERT INTO problem_category_types (id, name, description) VALUES ($1, $2, $3)`,
		t.ID, t.Name, t.Description)
	return writeErr("insert problem category type", err)
}

func (r *ProblemCategoryTypeRepo) GetByID(ctx context.Context, id string) (*entity.ProblemCategoryType, error) {
	var t entity.ProblemCategoryType
	err := r.q.QueryRow(ctx, `SELECT id, name, description FROM problem_category_types WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get problem category type: %w", err)
	}
	return &t, nil
}

func (r *ProblemCategoryTypeRepo) Update(ctx context.Context, t *entity.ProblemCategoryType) error {
	tag, err := r.q.Exec(ctx, `UPDATE problem_category_types SET name = $2, description = $3 WHERE id = $1`,
		t.ID, t.Name, t.Description)
	if err != nil {
		return writeErr("update problem category type", err)
	}
	return affected(tag)
}

func (r *ProblemCategoryTypeRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProblemCategoryType, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description FROM problem_category_types ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list problem category types: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProblemCategoryType
	for rows.Next() {
		var t entity.ProblemCategoryType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan problem category type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *ProblemCategoryTypeRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM problem_category_types WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete problem category type", err)
	}
	return affected(tag)
}

// ── ProblemCategory ──────────────────────────────────────────────────────────

type ProblemCategoryRepo struct {
	q Querier
}

func NewProblemCategoryRepository(q Querier) *ProblemCategoryRepo {
	return &ProblemCategoryRepo{q: q}
}

func (r *ProblemCategoryRepo) Create(ctx context.Context, c *entity.ProblemCategory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO problem_categories (id, name, description, severity, category_type_id)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.Severity, c.CategoryTypeID)
	return writeErr("insert problem category", err)
}

func (r *ProblemCategoryRepo) GetByID(ctx context.Context, id string) (*entity.ProblemCategory, error) {
	var c entity.ProblemCategory
	err := r.q.QueryRow(ctx, `
		SELECT id, name, description, severity, category_type_id FROM problem_categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Severity, &c.CategoryTypeID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get problem category: %w", err)
	}
	return &c, nil
}

func (r *ProblemCategoryRepo) Update(ctx context.Context, c *entity.ProblemCategory) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE problem_categories SET name = $2, description = $3, severity = $4, category_type_id = $5
		WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Severity, c.CategoryTypeID)
	if err != nil {
		return writeErr("update problem category", err)
	}
	return affected(tag)
}

func (r *ProblemCategoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.ProblemCategory, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, description, severity, category_type_id FROM problem_categories
		ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list problem categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProblemCategory
	for rows.Next() {
		var c entity.ProblemCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Severity, &c.CategoryTypeID); err != nil {
			return nil, fmt.Errorf("scan problem category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ProblemCategoryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM problem_categories WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete problem category", err)
	}
	return affected(tag)
}

// ── BreakdownLog ─────────────────────────────────────────────────────────────

type BreakdownLogRepo struct {
	q Querier
}

func NewBreakdownLogRepository(q Querier) *BreakdownLogRepo {
	return &BreakdownLogRepo{q: q}
}

const breakdownColumns = `b.id, b.company_id, b.machine_id, b.mechanic_id, b.operator_id, b.problem_category_id,
	b.line_id, b.breakdown_start, b.repairing_start, ` + lostTimeMicros + `, b.comments, b.created_at, b.updated_at`

func (r *BreakdownLogRepo) Create(ctx context.Context, b *entity.BreakdownLog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO breakdown_logs (id, company_id, machine_id, mechanic_id, operator_id, problem_category_id,
			line_id, breakdown_start, repairing_start, lost_time, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10 * interval '1 microsecond', $11, $12, $13)`,
		b.ID, b.CompanyID, b.MachineID, b.MechanicID, b.OperatorID, b.ProblemCategoryID,
		b.LineID, b.BreakdownStart, b.RepairingStart, toMicros(b.LostTime), b.Comments, b.CreatedAt, b.UpdatedAt)
	return writeErr("insert breakdown log", err)
}

func (r *BreakdownLogRepo) GetByID(ctx context.Context, id string) (*entity.BreakdownLog, error) {
	b, err := scanBreakdown(r.q.QueryRow(ctx, `SELECT `+breakdownColumns+` FROM breakdown_logs b WHERE b.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get breakdown log: %w", err)
	}
	return b, nil
}

func (r *BreakdownLogRepo) Update(ctx context.Context, b *entity.BreakdownLog) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE breakdown_logs SET machine_id = $2, mechanic_id = $3, operator_id = $4, problem_category_id = $5,
			line_id = $6, breakdown_start = $7, repairing_start = $8, lost_time = $9 * interval '1 microsecond',
			comments = $10, updated_at = $11
		WHERE id = $1`,
		b.ID, b.MachineID, b.MechanicID, b.OperatorID, b.ProblemCategoryID,
		b.LineID, b.BreakdownStart, b.RepairingStart, toMicros(b.LostTime), b.Comments, b.UpdatedAt)
	if err != nil {
		return writeErr("update breakdown log", err)
	}
	return affected(tag)
}

// ListByCompany paradas de la empresa, la más reciente primero.
func (r *BreakdownLogRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.BreakdownLog, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+breakdownColumns+` FROM breakdown_logs b
		WHERE b.company_id = $1
		ORDER BY b.breakdown_start DESC LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list breakdown logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.BreakdownLog
	for rows.Next() {
		b, err := scanBreakdown(rows)
		if err != nil {
			return nil, fmt.Errorf("scan breakdown log: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Delete domain.ErrReferentialIntegrity si hay consumos de repuestos contra la parada.
func (r *BreakdownLogRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM breakdown_logs WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete breakdown log", err)
	}
	return affected(tag)
}

func scanBreakdown(s rowScanner) (*entity.BreakdownLog, error) {
	var (
		b  entity.BreakdownLog
		us int64
	)
	err := s.Scan(&b.ID, &b.CompanyID, &b.MachineID, &b.MechanicID, &b.OperatorID, &b.ProblemCategoryID,
		&b.LineID, &b.BreakdownStart, &b.RepairingStart, &us, &b.Comments, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.LostTime = fromMicros(us)
	return &b, nil
}
