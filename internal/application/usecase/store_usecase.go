package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/magasin-pro/internal/application/dto"
	"github.com/jhoicas/magasin-pro/internal/domain"
	"github.com/jhoicas/magasin-pro/internal/domain/entity"
	"github.com/jhoicas/magasin-pro/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para magasins. La restricción a admin se
// aplica en el router; aquí solo hay lógica de negocio.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea un magasin.
func (uc *StoreUseCase) Create(in dto.CreateMagasinRequest) (*dto.MagasinResponse, error) {
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Nom,
		Address:   in.Adresse,
		Phone:     in.Telephone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toMagasinResponse(store), nil
}

// GetByID obtiene un magasin por ID.
func (uc *StoreUseCase) GetByID(id string) (*dto.MagasinResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toMagasinResponse(store), nil
}

// List lista magasins con paginación.
func (uc *StoreUseCase) List(page dto.PageRequest) (*dto.MagasinListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MagasinResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toMagasinResponse(s))
	}
	return &dto.MagasinListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update actualiza un magasin.
func (uc *StoreUseCase) Update(id string, in dto.UpdateMagasinRequest) (*dto.MagasinResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	if in.Nom != nil {
		store.Name = *in.Nom
	}
	if in.Adresse != nil {
		store.Address = *in.Adresse
	}
	if in.Telephone != nil {
		store.Phone = *in.Telephone
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toMagasinResponse(store), nil
}

// Delete elimina un magasin.
func (uc *StoreUseCase) Delete(id string) error {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMagasinResponse(s *entity.Store) *dto.MagasinResponse {
	if s == nil {
		return nil
	}
	return &dto.MagasinResponse{
		ID:        s.ID,
		Nom:       s.Name,
		Adresse:   s.Address,
		Telephone: s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
