package repository

import (
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByStoreAndName(storeID, name string) (*entity.Supplier, error)
	// GetOrCreate resuelve el fournisseur por (store_id, name) de forma
	// atómica: inserta si no existe y recarga la fila ganadora si otro
	// writer la creó primero. Rellena el entity y devuelve true si creó.
	GetOrCreate(supplier *entity.Supplier) (created bool, err error)
	Update(supplier *entity.Supplier) error
	List(scope domain.Scope, limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
