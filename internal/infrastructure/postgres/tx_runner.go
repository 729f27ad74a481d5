package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/factory-ops-api/internal/application/auth"
	"github.com/jhoicas/factory-ops-api/internal/application/inventory"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner    = (*TxRunner)(nil)
	_ auth.RegisterTxRunner = (*RegisterTxRunner)(nil)
)

// TxRunner ejecuta callbacks del motor de stock dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	partRepo repository.MachinePartRepository,
	purchaseRepo repository.PurchaseItemRepository,
	usageRepo repository.PartsUsageRecordRepository,
) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(NewMachinePartRepository(tx), NewPurchaseItemRepository(tx), NewPartsUsageRecordRepository(tx))
	})
}

// RegisterTxRunner crea usuario y empleado en una sola transacción.
type RegisterTxRunner struct {
	pool *pgxpool.Pool
}

func NewRegisterTxRunner(pool *pgxpool.Pool) *RegisterTxRunner {
	return &RegisterTxRunner{pool: pool}
}

func (r *RegisterTxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	employees repository.EmployeeRepository,
) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(NewUserRepository(tx), NewEmployeeRepository(tx))
	})
}

func inTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
