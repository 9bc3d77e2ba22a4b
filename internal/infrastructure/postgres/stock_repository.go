package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en un magasin. Devuelve nil si no hay fila.
func (r *StockRepo) Get(productID, storeID string) (*entity.Stock, error) {
	query := `
		SELECT product_id, store_id, quantity, updated_at
		FROM stocks WHERE product_id = $1 AND store_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, storeID).Scan(
		&s.ProductID, &s.StoreID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Accumulate suma delta a la cantidad existente en una sola sentencia.
// Si la fila no existía se crea con quantity = delta. Dos importaciones
// concurrentes del mismo producto se serializan en la fila, nunca se
// pierde ninguno de los dos incrementos. xmax = 0 distingue fila nueva.
func (r *StockRepo) Accumulate(productID, storeID string, delta int) (bool, error) {
	query := `
		INSERT INTO stocks (product_id, store_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, store_id)
		DO UPDATE SET quantity = stocks.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING (xmax = 0) AS inserted`
	var inserted bool
	err := r.q.QueryRow(context.Background(), query, productID, storeID, delta).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("accumulate stock: %w", err)
	}
	return inserted, nil
}

// Set fija la cantidad exacta (upsert por producto y magasin).
func (r *StockRepo) Set(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (product_id, store_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, store_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.StoreID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// List lista el stock bajo el scope con paginación, con el nombre y la
// referencia del producto resueltos en la misma consulta.
func (r *StockRepo) List(scope domain.Scope, limit, offset int) ([]repository.StockRow, error) {
	query := `
		SELECT s.product_id, p.name, p.reference, s.store_id, s.quantity, s.updated_at
		FROM stocks s
		JOIN products p ON p.id = s.product_id`
	args := []any{}
	if !scope.All {
		query += ` WHERE s.store_id = $1`
		args = append(args, scope.StoreID)
	}
	query += fmt.Sprintf(` ORDER BY s.updated_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Reference,
			&row.StoreID, &row.Quantity, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListLowStock devuelve las filas de stock en o por debajo del seuil d'alerte del producto.
func (r *StockRepo) ListLowStock(scope domain.Scope) ([]repository.LowStockRow, error) {
	query := `
		SELECT s.product_id, p.name, p.reference, s.store_id, s.quantity, p.alert_threshold
		FROM stocks s
		JOIN products p ON p.id = s.product_id
		WHERE s.quantity <= p.alert_threshold`
	args := []any{}
	if !scope.All {
		query += ` AND s.store_id = $1`
		args = append(args, scope.StoreID)
	}
	query += ` ORDER BY s.quantity ASC, p.name ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Reference,
			&row.StoreID, &row.Quantity, &row.AlertThreshold); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
