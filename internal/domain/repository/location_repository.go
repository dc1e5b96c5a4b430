package repository

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List(warehouseID string, limit, offset int) ([]*entity.Location, error)
	Update(location *entity.Location) error
	Delete(id string) error
}
