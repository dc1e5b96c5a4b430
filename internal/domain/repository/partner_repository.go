package repository

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// PartnerRepository define el puerto de persistencia para Partner.
type PartnerRepository interface {
	Create(partner *entity.Partner) error
	GetByID(id string) (*entity.Partner, error)
	List(partnerType string, limit, offset int) ([]*entity.Partner, error)
	Update(partner *entity.Partner) error
	Delete(id string) error
}
