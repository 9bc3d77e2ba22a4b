package dto

import "time"

// CreateMagasinRequest entrada para crear un magasin.
type CreateMagasinRequest struct {
	Nom       string `json:"nom" validate:"required,min=1,max=200"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
}

// UpdateMagasinRequest entrada para actualizar un magasin (parcial).
type UpdateMagasinRequest struct {
	Nom       *string `json:"nom" validate:"omitempty,min=1,max=200"`
	Adresse   *string `json:"adresse"`
	Telephone *string `json:"telephone"`
}

// MagasinResponse salida de un magasin.
type MagasinResponse struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Adresse   string    `json:"adresse"`
	Telephone string    `json:"telephone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MagasinListResponse lista paginada de magasins.
type MagasinListResponse struct {
	Items []MagasinResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
