package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var (
	_ repository.FloorRepository = (*FloorRepo)(nil)
	_ repository.LineRepository  = (*LineRepo)(nil)
)

// FloorRepo pisos de planta.
type FloorRepo struct {
	q Querier
}

func NewFloorRepository(q Querier) *FloorRepo {
	return &FloorRepo{q: q}
}

func (r *FloorRepo) Create(ctx context.Context, f *entity.Floor) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO floors (id, company_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.CompanyID, f.Name, f.CreatedAt, f.UpdatedAt)
	return writeErr("insert floor", err)
}

func (r *FloorRepo) GetByID(ctx context.Context, id string) (*entity.Floor, error) {
	var f entity.Floor
	err := r.q.QueryRow(ctx, `SELECT id, company_id, name, created_at, updated_at FROM floors WHERE id = $1`, id).
		Scan(&f.ID, &f.CompanyID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get floor: %w", err)
	}
	return &f, nil
}

func (r *FloorRepo) Update(ctx context.Context, f *entity.Floor) error {
	tag, err := r.q.Exec(ctx, `UPDATE floors SET name = $2, updated_at = $3 WHERE id = $1`, f.ID, f.Name, f.UpdatedAt)
	if err != nil {
		return writeErr("update floor", err)
	}
	return affected(tag)
}

func (r *FloorRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Floor, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, name, created_at, updated_at FROM floors
		WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list floors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Floor
	for rows.Next() {
		var f entity.Floor
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan floor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete borra el piso; sus líneas caen por ON DELETE CASCADE.
func (r *FloorRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM floors WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete floor", err)
	}
	return affected(tag)
}

// LineRepo líneas de producción; la empresa se obtiene por join con floors.
type LineRepo struct {
	q Querier
}

func NewLineRepository(q Querier) *LineRepo {
	return &LineRepo{q: q}
}

const lineColumns = `l.id, l.floor_id, l.name, l.description, l.operation_type, l.created_at, l.updated_at`

func (r *LineRepo) Create(ctx context.Context, l *entity.Line) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO lines (id, floor_id, name, description, operation_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.FloorID, l.Name, l.Description, l.OperationType, l.CreatedAt, l.UpdatedAt)
	return writeErr("insert line", err)
}

func (r *LineRepo) GetByID(ctx context.Context, id string) (*entity.Line, error) {
	l, err := scanLine(r.q.QueryRow(ctx, `SELECT `+lineColumns+` FROM lines l WHERE l.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get line: %w", err)
	}
	return l, nil
}

func (r *LineRepo) Update(ctx context.Context, l *entity.Line) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE lines SET floor_id = $2, name = $3, description = $4, operation_type = $5, updated_at = $6
		WHERE id = $1`,
		l.ID, l.FloorID, l.Name, l.Description, l.OperationType, l.UpdatedAt)
	if err != nil {
		return writeErr("update line", err)
	}
	return affected(tag)
}

func (r *LineRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Line, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+lineColumns+`
		FROM lines l JOIN floors f ON f.id = l.floor_id
		WHERE f.company_id = $1
		ORDER BY f.name, l.name LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.Line
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Delete borra la línea; machines.line_id queda en NULL (ON DELETE SET NULL).
func (r *LineRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM lines WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete line", err)
	}
	return affected(tag)
}

func (r *LineRepo) GetLocation(ctx context.Context, id string) (*entity.LineLocation, error) {
	var loc entity.LineLocation
	err := r.q.QueryRow(ctx, `
		SELECT l.id, l.name, l.operation_type, f.id, f.name, f.company_id
		FROM lines l JOIN floors f ON f.id = l.floor_id
		WHERE l.id = $1`, id).
		Scan(&loc.LineID, &loc.LineName, &loc.OperationType, &loc.FloorID, &loc.FloorName, &loc.CompanyID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get line location: %w", err)
	}
	return &loc, nil
}

func scanLine(s rowScanner) (*entity.Line, error) {
	var l entity.Line
	if err := s.Scan(&l.ID, &l.FloorID, &l.Name, &l.Description, &l.OperationType, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
