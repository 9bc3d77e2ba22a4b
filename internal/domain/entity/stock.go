package entity

import "time"

// Stock representa la cantidad disponible de un producto en un magasin.
// La clave natural es (ProductID, StoreID); no hay id propio.
type Stock struct {
	ProductID string
	StoreID   string
	Quantity  int
	UpdatedAt time.Time
}

// BelowThreshold indica si la cantidad está en o por debajo del seuil del producto.
func (s *Stock) BelowThreshold(threshold int) bool {
	return s.Quantity <= threshold
}
