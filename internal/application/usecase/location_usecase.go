package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones.
type LocationUseCase struct {
	repo          repository.LocationRepository
	warehouseRepo repository.WarehouseRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, warehouseRepo repository.WarehouseRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, warehouseRepo: warehouseRepo}
}

// Create crea una ubicación; si trae bodega, la bodega debe existir.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" || !entity.ValidLocationType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.WarehouseID != "" {
		wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	location := &entity.Location{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Type:        in.Type,
		WarehouseID: in.WarehouseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// Update actualiza una ubicación.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Type != nil {
		if !entity.ValidLocationType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		location.Type = *in.Type
	}
	if in.WarehouseID != nil {
		location.WarehouseID = *in.WarehouseID
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones, opcionalmente filtradas por bodega.
func (uc *LocationUseCase) List(warehouseID string, limit, offset int) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una ubicación por ID.
func (uc *LocationUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Type:        l.Type,
		WarehouseID: l.WarehouseID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
