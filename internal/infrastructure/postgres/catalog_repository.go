package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// catalogTables tabla de cada tipo de taxonomía. Solo estos nombres se interpolan en SQL.
var catalogTables = map[entity.CatalogKind]string{
	entity.CatalogCategory: "machine_categories",
	entity.CatalogType:     "machine_types",
	entity.CatalogBrand:    "brands",
	entity.CatalogSupplier: "suppliers",
}

// CatalogRepo taxonomía de máquinas: una tabla por tipo, mismas columnas.
type CatalogRepo struct {
	q Querier
}

func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func catalogTable(kind entity.CatalogKind) (string, error) {
	t, ok := catalogTables[kind]
	if !ok {
		return "", fmt.Errorf("catálogo desconocido %q", kind)
	}
	return t, nil
}

func (r *CatalogRepo) Create(ctx context.Context, it *entity.CatalogItem) error {
	table, err := catalogTable(it.Kind)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO `+table+` (id, company_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		it.ID, it.CompanyID, it.Name, it.CreatedAt, it.UpdatedAt)
	return writeErr("insert "+table, err)
}

func (r *CatalogRepo) GetByID(ctx context.Context, kind entity.CatalogKind, id string) (*entity.CatalogItem, error) {
	table, err := catalogTable(kind)
	if err != nil {
		return nil, err
	}
	it := entity.CatalogItem{Kind: kind}
	err = r.q.QueryRow(ctx, `SELECT id, company_id, name, created_at, updated_at FROM `+table+` WHERE id = $1`, id).
		Scan(&it.ID, &it.CompanyID, &it.Name, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	return &it, nil
}

func (r *CatalogRepo) Update(ctx context.Context, it *entity.CatalogItem) error {
	table, err := catalogTable(it.Kind)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, `UPDATE `+table+` SET name = $2, updated_at = $3 WHERE id = $1`, it.ID, it.Name, it.UpdatedAt)
	if err != nil {
		return writeErr("update "+table, err)
	}
	return affected(tag)
}

func (r *CatalogRepo) ListByCompany(ctx context.Context, kind entity.CatalogKind, companyID string, limit, offset int) ([]*entity.CatalogItem, error) {
	table, err := catalogTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, name, created_at, updated_at FROM `+table+`
		WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var list []*entity.CatalogItem
	for rows.Next() {
		it := entity.CatalogItem{Kind: kind}
		if err := rows.Scan(&it.ID, &it.CompanyID, &it.Name, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete las máquinas que lo referencian quedan con la referencia en NULL.
func (r *CatalogRepo) Delete(ctx context.Context, kind entity.CatalogKind, id string) error {
	table, err := catalogTable(kind)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete "+table, err)
	}
	return affected(tag)
}
