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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para fournisseurs. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo fournisseur.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, store_id, name, address, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.StoreID, supplier.Name, supplier.Address, supplier.Contact,
		supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un fournisseur por ID.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, store_id, name, address, contact, created_at, updated_at
		FROM suppliers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByStoreAndName obtiene un fournisseur por magasin y nombre.
func (r *SupplierRepo) GetByStoreAndName(storeID, name string) (*entity.Supplier, error) {
	query := `
		SELECT id, store_id, name, address, contact, created_at, updated_at
		FROM suppliers WHERE store_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, storeID, name))
}

// GetOrCreate inserta el fournisseur si no existe para (store_id, name).
// El INSERT ... ON CONFLICT DO NOTHING no devuelve fila cuando otro writer
// ganó la carrera; en ese caso se recarga la fila existente. No hay ventana
// check-then-insert: la unicidad la garantiza el constraint.
func (r *SupplierRepo) GetOrCreate(supplier *entity.Supplier) (bool, error) {
	query := `
		INSERT INTO suppliers (id, store_id, name, address, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (store_id, name) DO NOTHING
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		supplier.ID, supplier.StoreID, supplier.Name, supplier.Address, supplier.Contact,
		supplier.CreatedAt,
	).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("get or create supplier: %w", err)
	}

	existing, err := r.GetByStoreAndName(supplier.StoreID, supplier.Name)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, fmt.Errorf("get or create supplier: fila desaparecida tras conflicto")
	}
	*supplier = *existing
	return false, nil
}

// Update actualiza un fournisseur existente.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, address = $3, contact = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Address, supplier.Contact, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista fournisseurs bajo el scope con paginación.
func (r *SupplierRepo) List(scope domain.Scope, limit, offset int) ([]*entity.Supplier, error) {
	query := `
		SELECT id, store_id, name, address, contact, created_at, updated_at
		FROM suppliers`
	args := []any{}
	if !scope.All {
		query += ` WHERE store_id = $1`
		args = append(args, scope.StoreID)
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.Address, &s.Contact, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un fournisseur por ID.
func (r *SupplierRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) scanOne(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.StoreID, &s.Name, &s.Address, &s.Contact, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}
