package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleVendeur = "vendeur"
)

// User representa un usuario del sistema. StoreID es nil para usuarios
// sin magasin asignado (p. ej. superusuarios globales).
type User struct {
	ID           string
	StoreID      *string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, manager, vendeur
	Superuser    bool   // acceso global, sin partición por magasin
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanImport indica si el rol del usuario autoriza importar datasets.
func (u *User) CanImport() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}
