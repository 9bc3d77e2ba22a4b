package entity

import "time"

// Supplier representa un fournisseur. El nombre es único dentro de cada
// magasin; dos magasins pueden tener cada uno su "Fournisseur Général".
type Supplier struct {
	ID        string
	StoreID   string
	Name      string
	Address   string
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
