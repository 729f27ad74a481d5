package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var (
	_ repository.MachinePartRepository      = (*MachinePartRepo)(nil)
	_ repository.PurchaseItemRepository     = (*PurchaseItemRepo)(nil)
	_ repository.PartsUsageRecordRepository = (*PartsUsageRecordRepo)(nil)
)

// ── MachinePart ──────────────────────────────────────────────────────────────

// MachinePartRepo repuestos (usable con pool o tx).
type MachinePartRepo struct {
	q Querier
}

// NewMachinePartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMachinePartRepository(q Querier) *MachinePartRepo {
	return &MachinePartRepo{q: q}
}

const partColumns = `id, company_id, name, price, quantity, created_at, updated_at`

func (r *MachinePartRepo) Create(ctx context.Context, p *entity.MachinePart) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO machine_parts (`+partColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.CompanyID, p.Name, p.Price, p.Quantity, p.CreatedAt, p.UpdatedAt)
	return writeErr("insert machine part", err)
}

func (r *MachinePartRepo) GetByID(ctx context.Context, id string) (*entity.MachinePart, error) {
	return r.findOne(ctx, `SELECT `+partColumns+` FROM machine_parts WHERE id = $1`, id)
}

// GetForUpdate obtiene el repuesto y bloquea la fila para update (SELECT FOR UPDATE).
func (r *MachinePartRepo) GetForUpdate(ctx context.Context, id string) (*entity.MachinePart, error) {
	return r.findOne(ctx, `SELECT `+partColumns+` FROM machine_parts WHERE id = $1 FOR UPDATE`, id)
}

// UpdateQuantity el CHECK (quantity >= 0) del esquema respalda la regla del dominio.
func (r *MachinePartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	tag, err := r.q.Exec(ctx, `UPDATE machine_parts SET quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update part quantity: %w", err)
	}
	return affected(tag)
}

func (r *MachinePartRepo) Update(ctx context.Context, p *entity.MachinePart) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE machine_parts SET name = $2, price = $3, updated_at = $4 WHERE id = $1`,
		p.ID, p.Name, p.Price, p.UpdatedAt)
	if err != nil {
		return writeErr("update machine part", err)
	}
	return affected(tag)
}

func (r *MachinePartRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.MachinePart, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+partColumns+` FROM machine_parts
		WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list machine parts: %w", err)
	}
	defer rows.Close()

	var list []*entity.MachinePart
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan machine part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete domain.ErrReferentialIntegrity si algún consumo referencia el repuesto.
func (r *MachinePartRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM machine_parts WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete machine part", err)
	}
	return affected(tag)
}

func (r *MachinePartRepo) findOne(ctx context.Context, query, id string) (*entity.MachinePart, error) {
	p, err := scanPart(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine part: %w", err)
	}
	return p, nil
}

func scanPart(s rowScanner) (*entity.MachinePart, error) {
	var p entity.MachinePart
	if err := s.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// ── PurchaseItem ─────────────────────────────────────────────────────────────

type PurchaseItemRepo struct {
	q Querier
}

func NewPurchaseItemRepository(q Querier) *PurchaseItemRepo {
	return &PurchaseItemRepo{q: q}
}

const purchaseColumns = `id, company_id, part_id, invoice, quantity_purchased, created_at`

// Create domain.ErrDuplicate si la factura ya existe en la empresa.
func (r *PurchaseItemRepo) Create(ctx context.Context, p *entity.PurchaseItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchase_items (`+purchaseColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.CompanyID, p.PartID, p.Invoice, p.QuantityPurchased, p.CreatedAt)
	return writeErr("insert purchase item", err)
}

func (r *PurchaseItemRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseItem, error) {
	p, err := scanPurchase(r.q.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchase_items WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase item: %w", err)
	}
	return p, nil
}

func (r *PurchaseItemRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.PurchaseItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+purchaseColumns+` FROM purchase_items
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase items: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseItem
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *PurchaseItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM purchase_items WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete purchase item", err)
	}
	return affected(tag)
}

func scanPurchase(s rowScanner) (*entity.PurchaseItem, error) {
	var p entity.PurchaseItem
	if err := s.Scan(&p.ID, &p.CompanyID, &p.PartID, &p.Invoice, &p.QuantityPurchased, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// ── PartsUsageRecord ─────────────────────────────────────────────────────────

type PartsUsageRecordRepo struct {
	q Querier
}

func NewPartsUsageRecordRepository(q Querier) *PartsUsageRecordRepo {
	return &PartsUsageRecordRepo{q: q}
}

const usageColumns = `id, company_id, part_id, breakdown_id, quantity_used, usage_date, mechanic, remarks`

func (r *PartsUsageRecordRepo) Create(ctx context.Context, u *entity.PartsUsageRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO parts_usage_records (`+usageColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.CompanyID, u.PartID, u.BreakdownID, u.QuantityUsed, u.UsageDate, u.Mechanic, u.Remarks)
	return writeErr("insert parts usage record", err)
}

func (r *PartsUsageRecordRepo) GetByID(ctx context.Context, id string) (*entity.PartsUsageRecord, error) {
	u, err := scanUsage(r.q.QueryRow(ctx, `SELECT `+usageColumns+` FROM parts_usage_records WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parts usage record: %w", err)
	}
	return u, nil
}

func (r *PartsUsageRecordRepo) UpdateRemarks(ctx context.Context, id string, remarks *string) error {
	tag, err := r.q.Exec(ctx, `UPDATE parts_usage_records SET remarks = $2 WHERE id = $1`, id, remarks)
	if err != nil {
		return fmt.Errorf("update usage remarks: %w", err)
	}
	return affected(tag)
}

func (r *PartsUsageRecordRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.PartsUsageRecord, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+usageColumns+` FROM parts_usage_records
		WHERE company_id = $1 ORDER BY usage_date DESC LIMIT $2 OFFSET $3`, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts usage records: %w", err)
	}
	defer rows.Close()

	var list []*entity.PartsUsageRecord
	for rows.Next() {
		u, err := scanUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parts usage record: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *PartsUsageRecordRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM parts_usage_records WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete parts usage record", err)
	}
	return affected(tag)
}

// TotalCost suma quantity_used * price de los consumos en paradas de lineID con inicio en [from, to).
func (r *PartsUsageRecordRepo) TotalCost(ctx context.Context, companyID, lineID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(u.quantity_used * p.price), 0)
		FROM parts_usage_records u
		JOIN machine_parts p ON p.id = u.part_id
		JOIN breakdown_logs b ON b.id = u.breakdown_id
		WHERE u.company_id = $1
		  AND b.line_id = $2
		  AND b.breakdown_start >= $3
		  AND b.breakdown_start < $4`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, companyID, lineID, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total cost: %w", err)
	}
	return total, nil
}

func scanUsage(s rowScanner) (*entity.PartsUsageRecord, error) {
	var u entity.PartsUsageRecord
	err := s.Scan(&u.ID, &u.CompanyID, &u.PartID, &u.BreakdownID, &u.QuantityUsed, &u.UsageDate, &u.Mechanic, &u.Remarks)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
