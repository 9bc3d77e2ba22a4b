package dto

import "time"

// SetStockRequest entrada para fijar la cantidad de stock de un producto.
// El magasin se deduce del producto: el stock vive en el magasin del produit.
type SetStockRequest struct {
	ProduitID string `json:"produit_id" validate:"required"`
	Quantite  int    `json:"quantite" validate:"min=0"`
}

// StockResponse salida de una fila de stock, con el producto identificado
// por nombre y referencia.
type StockResponse struct {
	ProduitID string    `json:"produit_id"`
	Nom       string    `json:"nom"`
	Reference string    `json:"reference"`
	MagasinID string    `json:"magasin_id"`
	Quantite  int       `json:"quantite"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockListResponse lista paginada de stock.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// AlerteStockResponse fila del informe de stock bajo (quantité <= seuil).
type AlerteStockResponse struct {
	ProduitID   string `json:"produit_id"`
	Nom         string `json:"nom"`
	Reference   string `json:"reference"`
	MagasinID   string `json:"magasin_id"`
	Quantite    int    `json:"quantite"`
	SeuilAlerte int    `json:"seuil_alerte"`
}

// AlertesResponse informe de alertas de stock.
type AlertesResponse struct {
	Items []AlerteStockResponse `json:"items"`
	Total int                   `json:"total"`
}
