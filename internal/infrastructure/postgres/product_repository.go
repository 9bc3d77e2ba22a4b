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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, store_id, name, reference, category, unit_price, alert_threshold, supplier_id, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, store_id, name, reference, category, unit_price, alert_threshold, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.StoreID, product.Name, product.Reference, product.Category,
		product.UnitPrice, product.AlertThreshold, product.SupplierID,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		// El fournisseur pudo borrarse entre la validación del caso de uso y el insert.
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByStoreAndReference obtiene un producto por magasin y référence.
func (r *ProductRepo) GetByStoreAndReference(storeID, reference string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND reference = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, storeID, reference))
}

// Upsert inserta o actualiza por la clave natural (store_id, reference) en una
// sola sentencia. Ni store_id ni reference aparecen en el SET: la identidad de
// la fila nunca cambia. xmax = 0 distingue fila nueva de fila actualizada.
func (r *ProductRepo) Upsert(product *entity.Product) (bool, error) {
	query := `
		INSERT INTO products (id, store_id, name, reference, category, unit_price, alert_threshold, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (store_id, reference) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			unit_price = EXCLUDED.unit_price,
			alert_threshold = EXCLUDED.alert_threshold,
			supplier_id = EXCLUDED.supplier_id,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`
	var inserted bool
	err := r.q.QueryRow(context.Background(), query,
		product.ID, product.StoreID, product.Name, product.Reference, product.Category,
		product.UnitPrice, product.AlertThreshold, product.SupplierID, product.CreatedAt,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert product: %w", err)
	}
	return inserted, nil
}

// Update actualiza un producto existente. La référence y el magasin no se modifican.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, unit_price = $4, alert_threshold = $5, supplier_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.UnitPrice,
		product.AlertThreshold, product.SupplierID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos bajo el scope aplicando filtros, búsqueda y orden.
func (r *ProductRepo) List(scope domain.Scope, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	where, args := buildProductWhere(scope, filter)
	query += where
	query += ` ORDER BY ` + productOrderBy(filter.OrderBy)
	query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Reference, &p.Category,
			&p.UnitPrice, &p.AlertThreshold, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta productos bajo el scope con los mismos filtros que List.
func (r *ProductRepo) Count(scope domain.Scope, filter repository.ProductFilter) (int, error) {
	query := `SELECT count(*) FROM products`
	where, args := buildProductWhere(scope, filter)
	query += where
	var n int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.StoreID, &p.Name, &p.Reference, &p.Category,
		&p.UnitPrice, &p.AlertThreshold, &p.SupplierID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func buildProductWhere(scope domain.Scope, filter repository.ProductFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if !scope.All {
		add("store_id = $%d", scope.StoreID)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.SupplierID != "" {
		add("supplier_id = $%d", filter.SupplierID)
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR reference ILIKE $%d OR category ILIKE $%d)", n, n, n))
	}
	if len(conds) == 0 {
		return "", args
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}

// productOrderBy traduce el parámetro de orden a SQL con lista blanca;
// cualquier valor no reconocido cae al orden por defecto.
func productOrderBy(orderBy string) string {
	switch orderBy {
	case "nom":
		return "name ASC"
	case "-nom":
		return "name DESC"
	case "prix_unitaire":
		return "unit_price ASC"
	case "-prix_unitaire":
		return "unit_price DESC"
	case "created_at":
		return "created_at ASC"
	default:
		return "created_at DESC"
	}
}
