package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un magasin.
// Reference es única por magasin; SupplierID es opcional.
type Product struct {
	ID             string
	StoreID        string
	Name           string
	Reference      string // référence única por magasin
	Category       string
	UnitPrice      decimal.Decimal // prix unitaire de venta
	AlertThreshold int             // seuil d'alerte para stock bajo
	SupplierID     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
