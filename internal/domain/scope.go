package domain

// Scope delimita las consultas al magasin del usuario autenticado.
// Un superusuario opera sin partición (All=true); cualquier otro usuario
// sólo ve los recursos de su propio magasin.
type Scope struct {
	StoreID string
	All     bool
}

// ScopeAll devuelve un scope sin restricción de magasin.
func ScopeAll() Scope { return Scope{All: true} }

// ScopeStore devuelve un scope limitado a un magasin concreto.
func ScopeStore(storeID string) Scope { return Scope{StoreID: storeID} }

// Allows indica si un recurso perteneciente a storeID es visible bajo el scope.
func (s Scope) Allows(storeID string) bool {
	return s.All || s.StoreID == storeID
}
