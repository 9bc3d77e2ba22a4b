package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProduitRequest entrada para crear un producto. MagasinID solo lo
// puede fijar un superusuario; el resto de usuarios usan su propio magasin.
type CreateProduitRequest struct {
	Nom           string          `json:"nom" validate:"required,min=1,max=200"`
	Reference     string          `json:"reference" validate:"required,min=1,max=100"`
	Categorie     string          `json:"categorie" validate:"required,min=1,max=100"`
	PrixUnitaire  decimal.Decimal `json:"prix_unitaire"`
	SeuilAlerte   int             `json:"seuil_alerte"`
	FournisseurID *string         `json:"fournisseur"`
	MagasinID     string          `json:"magasin_id"`
}

// UpdateProduitRequest entrada para actualizar un producto (parcial).
// La référence y el magasin no se modifican nunca.
type UpdateProduitRequest struct {
	Nom           *string          `json:"nom" validate:"omitempty,min=1,max=200"`
	Categorie     *string          `json:"categorie" validate:"omitempty,min=1,max=100"`
	PrixUnitaire  *decimal.Decimal `json:"prix_unitaire"`
	SeuilAlerte   *int             `json:"seuil_alerte"`
	FournisseurID *string          `json:"fournisseur"`
}

// ProduitResponse salida de un producto.
type ProduitResponse struct {
	ID            string          `json:"id"`
	Nom           string          `json:"nom"`
	Reference     string          `json:"reference"`
	Categorie     string          `json:"categorie"`
	PrixUnitaire  decimal.Decimal `json:"prix_unitaire"`
	SeuilAlerte   int             `json:"seuil_alerte"`
	FournisseurID *string         `json:"fournisseur"`
	MagasinID     string          `json:"magasin_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProduitFilterRequest filtros de listado de productos.
type ProduitFilterRequest struct {
	Categorie     string `query:"categorie"`
	FournisseurID string `query:"fournisseur"`
	Search        string `query:"search"`
	Ordering      string `query:"ordering"`
	PageRequest
}

// ProduitListResponse lista paginada de productos.
type ProduitListResponse struct {
	Items []ProduitResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
