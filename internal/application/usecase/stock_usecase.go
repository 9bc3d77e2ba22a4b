package usecase

import (
	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// StockUseCase consulta y ajuste manual de stock bajo el scope del usuario.
// Los incrementos por importación de dataset van por el caso de uso de dataset.
type StockUseCase struct {
	repo        repository.StockRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{repo: repo, productRepo: productRepo}
}

// List lista el stock visible bajo el scope con paginación.
func (uc *StockUseCase) List(scope domain.Scope, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, row := range list {
		items = append(items, dto.StockResponse{
			ProduitID: row.ProductID,
			Nom:       row.ProductName,
			Reference: row.Reference,
			MagasinID: row.StoreID,
			Quantite:  row.Quantity,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Get obtiene el stock de un producto bajo el scope. Devuelve nil si el
// producto no es visible o no tiene fila de stock.
func (uc *StockUseCase) Get(scope domain.Scope, productID string) (*dto.StockResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !scope.Allows(product.StoreID) {
		return nil, nil
	}
	stock, err := uc.repo.Get(productID, product.StoreID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	resp := toStockResponse(stock, product)
	return &resp, nil
}

// Set fija la cantidad exacta de stock de un producto (ajuste manual).
// El producto debe ser visible bajo el scope; la fila se crea si no existía.
func (uc *StockUseCase) Set(scope domain.Scope, in dto.SetStockRequest) (*dto.StockResponse, error) {
	if in.Quantite < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProduitID)
	if err != nil {
		return nil, err
	}
	if product == nil || !scope.Allows(product.StoreID) {
		return nil, domain.ErrNotFound
	}
	stock := &entity.Stock{
		ProductID: product.ID,
		StoreID:   product.StoreID,
		Quantity:  in.Quantite,
	}
	if err := uc.repo.Set(stock); err != nil {
		return nil, err
	}
	// Releer para devolver el updated_at que fijó la DB
	saved, err := uc.repo.Get(product.ID, product.StoreID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = stock
	}
	resp := toStockResponse(saved, product)
	return &resp, nil
}

func toStockResponse(s *entity.Stock, p *entity.Product) dto.StockResponse {
	return dto.StockResponse{
		ProduitID: s.ProductID,
		Nom:       p.Name,
		Reference: p.Reference,
		MagasinID: s.StoreID,
		Quantite:  s.Quantity,
		UpdatedAt: s.UpdatedAt,
	}
}
