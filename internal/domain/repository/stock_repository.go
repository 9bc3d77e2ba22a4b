package repository

import (
	"time"

	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
)

// StockRow fila del join stock+producto para los listados: una cantidad
// sin el nombre y la referencia del producto no le dice nada a nadie.
type StockRow struct {
	ProductID   string
	ProductName string
	Reference   string
	StoreID     string
	Quantity    int
	UpdatedAt   time.Time
}

// LowStockRow fila cruda del join stock+producto para el informe de alertas.
// Lo produce la DB; el use case lo convierte en DTO.
type LowStockRow struct {
	ProductID      string
	ProductName    string
	Reference      string
	StoreID        string
	Quantity       int
	AlertThreshold int
}

// StockRepository define el puerto para consultar/actualizar stock por magasin+producto.
// Accumulate se usa dentro de transacciones de importación.
type StockRepository interface {
	Get(productID, storeID string) (*entity.Stock, error)
	// Accumulate suma delta a la cantidad existente de forma atómica,
	// creando la fila con quantity=delta si no existía.
	// Devuelve true si creó la fila.
	Accumulate(productID, storeID string, delta int) (created bool, err error)
	// Set fija la cantidad exacta (upsert), usado por ajustes manuales.
	Set(stock *entity.Stock) error
	List(scope domain.Scope, limit, offset int) ([]StockRow, error)
	// ListLowStock devuelve los productos cuya cantidad está en o por
	// debajo de su seuil d'alerte, bajo el scope dado.
	ListLowStock(scope domain.Scope) ([]LowStockRow, error)
}
