package dto

import "time"

// CreateFournisseurRequest entrada para crear un fournisseur.
type CreateFournisseurRequest struct {
	Nom       string `json:"nom" validate:"required,min=1,max=200"`
	Adresse   string `json:"adresse"`
	Contact   string `json:"contact"`
	MagasinID string `json:"magasin_id"`
}

// UpdateFournisseurRequest entrada para actualizar un fournisseur (parcial).
type UpdateFournisseurRequest struct {
	Nom     *string `json:"nom" validate:"omitempty,min=1,max=200"`
	Adresse *string `json:"adresse"`
	Contact *string `json:"contact"`
}

// FournisseurResponse salida de un fournisseur.
type FournisseurResponse struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Adresse   string    `json:"adresse"`
	Contact   string    `json:"contact"`
	MagasinID string    `json:"magasin_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FournisseurListResponse lista paginada de fournisseurs.
type FournisseurListResponse struct {
	Items []FournisseurResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
