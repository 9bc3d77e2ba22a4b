package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/magasin-pro/internal/application/dataset"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// Ensure TxRunner implements dataset.TxRunner.
var _ dataset.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Si fn devuelve error no se persiste nada de lo hecho dentro del callback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	supplierRepo := NewSupplierRepository(tx)
	productRepo := NewProductRepository(tx)
	stockRepo := NewStockRepository(tx)

	if err := fn(supplierRepo, productRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
