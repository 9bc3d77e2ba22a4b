package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// AllStoresLabel encabeza el PDF cuando el informe cubre todos los magasins.
const AllStoresLabel = "Tous les magasins"

// ReportUseCase arma el informe de alertas de stock bajo el scope del caller.
type ReportUseCase struct {
	stockRepo repository.StockRepository
	storeRepo repository.StoreRepository
	pdf       AlertPDFGenerator
}

func NewReportUseCase(stockRepo repository.StockRepository, storeRepo repository.StoreRepository, pdf AlertPDFGenerator) *ReportUseCase {
	return &ReportUseCase{stockRepo: stockRepo, storeRepo: storeRepo, pdf: pdf}
}

// Alerts devuelve en JSON los productos con cantidad <= seuil d'alerte.
func (uc *ReportUseCase) Alerts(scope domain.Scope) (*dto.AlertesResponse, error) {
	rows, err := uc.stockRepo.ListLowStock(scope)
	if err != nil {
		return nil, fmt.Errorf("error listando alertas de stock: %w", err)
	}

	items := make([]dto.AlerteStockResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.AlerteStockResponse{
			ProduitID:   r.ProductID,
			Nom:         r.ProductName,
			Reference:   r.Reference,
			MagasinID:   r.StoreID,
			Quantite:    r.Quantity,
			SeuilAlerte: r.AlertThreshold,
		})
	}
	return &dto.AlertesResponse{Items: items, Total: len(items)}, nil
}

// AlertsPDF genera el informe en PDF, con los nombres de magasin resueltos.
func (uc *ReportUseCase) AlertsPDF(ctx context.Context, scope domain.Scope) ([]byte, error) {
	rows, err := uc.stockRepo.ListLowStock(scope)
	if err != nil {
		return nil, fmt.Errorf("error listando alertas de stock: %w", err)
	}

	names, err := uc.storeNames(scope)
	if err != nil {
		return nil, err
	}

	label := AllStoresLabel
	if !scope.All {
		if name, ok := names[scope.StoreID]; ok {
			label = name
		}
	}

	pdfRows := make([]AlertPDFRow, 0, len(rows))
	for _, r := range rows {
		magasin := names[r.StoreID]
		if magasin == "" {
			magasin = r.StoreID
		}
		pdfRows = append(pdfRows, AlertPDFRow{
			Reference: r.Reference,
			Produit:   r.ProductName,
			Magasin:   magasin,
			Quantite:  r.Quantity,
			Seuil:     r.AlertThreshold,
		})
	}

	return uc.pdf.GenerateAlertsPDF(ctx, label, pdfRows)
}

// storeNames resuelve id -> nombre de magasin para el scope dado.
func (uc *ReportUseCase) storeNames(scope domain.Scope) (map[string]string, error) {
	names := map[string]string{}
	if scope.All {
		stores, err := uc.storeRepo.List(0, 0)
		if err != nil {
			return nil, fmt.Errorf("error listando magasins: %w", err)
		}
		for _, s := range stores {
			names[s.ID] = s.Name
		}
		return names, nil
	}

	store, err := uc.storeRepo.GetByID(scope.StoreID)
	if err != nil {
		return nil, fmt.Errorf("error consultando magasin: %w", err)
	}
	if store != nil {
		names[store.ID] = store.Name
	}
	return names, nil
}
