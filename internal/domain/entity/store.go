package entity

import "time"

// Store representa un magasin (punto de venta). Todos los recursos del
// catálogo viven particionados por magasin.
type Store struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
