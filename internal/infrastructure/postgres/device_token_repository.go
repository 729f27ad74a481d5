package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var _ repository.DeviceTokenRepository = (*DeviceTokenRepo)(nil)

// DeviceTokenRepo suscripciones push sobre PostgreSQL.
type DeviceTokenRepo struct {
	q Querier
}

func NewDeviceTokenRepository(q Querier) *DeviceTokenRepo {
	return &DeviceTokenRepo{q: q}
}

const deviceTokenColumns = `id, user_id, company_id, token, p256dh, auth, created_at`

// Create domain.ErrDuplicate si el token ya está registrado.
func (r *DeviceTokenRepo) Create(ctx context.Context, t *entity.DeviceToken) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO device_tokens (`+deviceTokenColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.UserID, t.CompanyID, t.Token, t.P256dh, t.Auth, t.CreatedAt)
	return writeErr("insert device token", err)
}

func (r *DeviceTokenRepo) GetByID(ctx context.Context, id string) (*entity.DeviceToken, error) {
	t, err := scanDeviceToken(r.q.QueryRow(ctx, `SELECT `+deviceTokenColumns+` FROM device_tokens WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get device token: %w", err)
	}
	return t, nil
}

func (r *DeviceTokenRepo) ListByUser(ctx context.Context, userID string) ([]*entity.DeviceToken, error) {
	return r.list(ctx, `SELECT `+deviceTokenColumns+` FROM device_tokens WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// ListByCompany destinatarios de las notificaciones de la empresa.
func (r *DeviceTokenRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.DeviceToken, error) {
	return r.list(ctx, `SELECT `+deviceTokenColumns+` FROM device_tokens WHERE company_id = $1`, companyID)
}

func (r *DeviceTokenRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM device_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete device token: %w", err)
	}
	return affected(tag)
}

// DeleteByToken borra una suscripción caducada; no falla si ya no existe.
func (r *DeviceTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM device_tokens WHERE token = $1`, token); err != nil {
		return fmt.Errorf("delete device token by token: %w", err)
	}
	return nil
}

func (r *DeviceTokenRepo) list(ctx context.Context, query, arg string) ([]*entity.DeviceToken, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list device tokens: %w", err)
	}
	defer rows.Close()

	var list []*entity.DeviceToken
	for rows.Next() {
		t, err := scanDeviceToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scan device token: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanDeviceToken(s rowScanner) (*entity.DeviceToken, error) {
	var t entity.DeviceToken
	if err := s.Scan(&t.ID, &t.UserID, &t.CompanyID, &t.Token, &t.P256dh, &t.Auth, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
