package repository

import "github.com/tu-usuario/stockmaster/internal/domain/entity"

// ReorderRuleRepository define el puerto de persistencia para ReorderRule.
type ReorderRuleRepository interface {
	Create(rule *entity.ReorderRule) error
	GetByID(id string) (*entity.ReorderRule, error)
	List(limit, offset int) ([]*entity.ReorderRule, error)
	Update(rule *entity.ReorderRule) error
	Delete(id string) error
}
