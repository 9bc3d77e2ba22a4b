package repository

import (
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
)

// ProductFilter parámetros de búsqueda y paginación para listar productos.
// OrderBy acepta nom, prix_unitaire, created_at con prefijo "-" para descendente;
// las implementaciones ignoran cualquier otro valor y usan -created_at.
type ProductFilter struct {
	Category   string
	SupplierID string
	Search     string // busca en nombre, référence y categoría
	OrderBy    string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByStoreAndReference(storeID, reference string) (*entity.Product, error)
	// Upsert inserta o actualiza de forma atómica por (store_id, reference).
	// Rellena ID y timestamps en el entity y devuelve true si creó la fila.
	Upsert(product *entity.Product) (created bool, err error)
	Update(product *entity.Product) error
	List(scope domain.Scope, filter ProductFilter) ([]*entity.Product, error)
	Count(scope domain.Scope, filter ProductFilter) (int, error)
	Delete(id string) error
}
