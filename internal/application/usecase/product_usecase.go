package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, siempre bajo el scope
// del usuario. El stock se maneja aparte (importación o ajuste manual).
type ProductUseCase struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create crea un nuevo producto en el magasin del scope. Un superusuario
// debe indicar magasin_id en la petición; el resto lo ignora y usa el suyo.
func (uc *ProductUseCase) Create(scope domain.Scope, in dto.CreateProduitRequest) (*dto.ProduitResponse, error) {
	storeID := scope.StoreID
	if scope.All {
		storeID = in.MagasinID
	}
	if storeID == "" {
		return nil, domain.ErrNoStore
	}

	existing, err := uc.repo.GetByStoreAndReference(storeID, in.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if err := uc.checkSupplier(in.FournisseurID, storeID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		StoreID:        storeID,
		Name:           in.Nom,
		Reference:      in.Reference,
		Category:       in.Categorie,
		UnitPrice:      in.PrixUnitaire,
		AlertThreshold: in.SeuilAlerte,
		SupplierID:     in.FournisseurID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProduitResponse(product), nil
}

// GetByID obtiene un producto visible bajo el scope. Devuelve nil si no
// existe o pertenece a otro magasin.
func (uc *ProductUseCase) GetByID(scope domain.Scope, id string) (*dto.ProduitResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !scope.Allows(product.StoreID) {
		return nil, nil
	}
	return toProduitResponse(product), nil
}

// Update actualiza un producto bajo el scope. La référence y el magasin
// no se modifican nunca.
func (uc *ProductUseCase) Update(scope domain.Scope, id string, in dto.UpdateProduitRequest) (*dto.ProduitResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !scope.Allows(product.StoreID) {
		return nil, nil
	}
	if in.Nom != nil {
		product.Name = *in.Nom
	}
	if in.Categorie != nil {
		product.Category = *in.Categorie
	}
	if in.PrixUnitaire != nil {
		product.UnitPrice = *in.PrixUnitaire
	}
	if in.SeuilAlerte != nil {
		product.AlertThreshold = *in.SeuilAlerte
	}
	if in.FournisseurID != nil {
		if *in.FournisseurID == "" {
			product.SupplierID = nil
		} else {
			if err := uc.checkSupplier(in.FournisseurID, product.StoreID); err != nil {
				return nil, err
			}
			product.SupplierID = in.FournisseurID
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProduitResponse(product), nil
}

// List lista productos bajo el scope con filtros, búsqueda y orden.
func (uc *ProductUseCase) List(scope domain.Scope, in dto.ProduitFilterRequest) (*dto.ProduitListResponse, error) {
	in.DefaultPage()
	filter := repository.ProductFilter{
		Category:   in.Categorie,
		SupplierID: in.FournisseurID,
		Search:     in.Search,
		OrderBy:    in.Ordering,
		Limit:      in.Limit,
		Offset:     in.Offset,
	}
	list, err := uc.repo.List(scope, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(scope, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProduitResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProduitResponse(p))
	}
	return &dto.ProduitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Delete elimina un producto bajo el scope.
func (uc *ProductUseCase) Delete(scope domain.Scope, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || !scope.Allows(product.StoreID) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// checkSupplier valida que el fournisseur exista y pertenezca al magasin dado.
func (uc *ProductUseCase) checkSupplier(supplierID *string, storeID string) error {
	if supplierID == nil || *supplierID == "" {
		return nil
	}
	supplier, err := uc.supplierRepo.GetByID(*supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	if supplier.StoreID != storeID {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProduitResponse(p *entity.Product) *dto.ProduitResponse {
	if p == nil {
		return nil
	}
	return &dto.ProduitResponse{
		ID:            p.ID,
		Nom:           p.Name,
		Reference:     p.Reference,
		Categorie:     p.Category,
		PrixUnitaire:  p.UnitPrice,
		SeuilAlerte:   p.AlertThreshold,
		FournisseurID: p.SupplierID,
		MagasinID:     p.StoreID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
