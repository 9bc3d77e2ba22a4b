package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para fournisseurs bajo el scope del usuario.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un fournisseur en el magasin del scope. Un superusuario debe
// indicar magasin_id; el resto usa el suyo. El nombre es único por magasin.
func (uc *SupplierUseCase) Create(scope domain.Scope, in dto.CreateFournisseurRequest) (*dto.FournisseurResponse, error) {
	storeID := scope.StoreID
	if scope.All {
		storeID = in.MagasinID
	}
	if storeID == "" {
		return nil, domain.ErrNoStore
	}

	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		Name:      in.Nom,
		Address:   in.Adresse,
		Contact:   in.Contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toFournisseurResponse(supplier), nil
}

// GetByID obtiene un fournisseur visible bajo el scope.
func (uc *SupplierUseCase) GetByID(scope domain.Scope, id string) (*dto.FournisseurResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !scope.Allows(supplier.StoreID) {
		return nil, nil
	}
	return toFournisseurResponse(supplier), nil
}

// Update actualiza un fournisseur bajo el scope.
func (uc *SupplierUseCase) Update(scope domain.Scope, id string, in dto.UpdateFournisseurRequest) (*dto.FournisseurResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || !scope.Allows(supplier.StoreID) {
		return nil, nil
	}
	if in.Nom != nil {
		supplier.Name = *in.Nom
	}
	if in.Adresse != nil {
		supplier.Address = *in.Adresse
	}
	if in.Contact != nil {
		supplier.Contact = *in.Contact
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toFournisseurResponse(supplier), nil
}

// List lista fournisseurs bajo el scope con paginación.
func (uc *SupplierUseCase) List(scope domain.Scope, page dto.PageRequest) (*dto.FournisseurListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(scope, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FournisseurResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toFournisseurResponse(s))
	}
	return &dto.FournisseurListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un fournisseur bajo el scope.
func (uc *SupplierUseCase) Delete(scope domain.Scope, id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil || !scope.Allows(supplier.StoreID) {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toFournisseurResponse(s *entity.Supplier) *dto.FournisseurResponse {
	if s == nil {
		return nil
	}
	return &dto.FournisseurResponse{
		ID:        s.ID,
		Nom:       s.Name,
		Adresse:   s.Address,
		Contact:   s.Contact,
		MagasinID: s.StoreID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
