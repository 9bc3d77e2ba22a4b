// Package report construye el informe de alertas de stock: productos cuya
// cantidad está en o por debajo de su seuil d'alerte, en JSON o PDF.
package report

import "context"

// AlertPDFRow es una línea del informe PDF, ya con el nombre del magasin
// resuelto.
type AlertPDFRow struct {
	Reference string
	Produit   string
	Magasin   string
	Quantite  int
	Seuil     int
}

// AlertPDFGenerator genera el documento PDF del informe. scopeLabel es el
// nombre del magasin o la etiqueta de "todos" para el encabezado.
type AlertPDFGenerator interface {
	GenerateAlertsPDF(ctx context.Context, scopeLabel string, rows []AlertPDFRow) ([]byte, error)
}
