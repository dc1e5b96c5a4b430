package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// ReorderRuleUseCase maneja el CRUD de reglas de reorden.
type ReorderRuleUseCase struct {
	repo          repository.ReorderRuleRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewReorderRuleUseCase construye el caso de uso.
func NewReorderRuleUseCase(repo repository.ReorderRuleRepository, productRepo repository.ProductRepository, warehouseRepo repository.WarehouseRepository) *ReorderRuleUseCase {
	return &ReorderRuleUseCase{repo: repo, productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// Create crea una regla de reorden. MinQty debe ser >= 0; si WarehouseID viene
// vacío la regla aplica al stock global del producto.
func (uc *ReorderRuleUseCase) Create(in dto.CreateReorderRuleRequest) (*dto.ReorderRuleResponse, error) {
	if in.ProductID == "" || in.MinQty.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
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
	rule := &entity.ReorderRule{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		MinQty:      in.MinQty,
		MaxQty:      in.MaxQty,
		ReorderQty:  in.ReorderQty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	return toReorderRuleResponse(rule), nil
}

// GetByID obtiene una regla por ID.
func (uc *ReorderRuleUseCase) GetByID(id string) (*dto.ReorderRuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	return toReorderRuleResponse(rule), nil
}

// Update actualiza solo los campos presentes en la solicitud.
func (uc *ReorderRuleUseCase) Update(id string, in dto.UpdateReorderRuleRequest) (*dto.ReorderRuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrNotFound
	}
	if in.MinQty != nil {
		if in.MinQty.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		rule.MinQty = *in.MinQty
	}
	if in.MaxQty != nil {
		rule.MaxQty = *in.MaxQty
	}
	if in.ReorderQty != nil {
		rule.ReorderQty = *in.ReorderQty
	}
	if rule.MaxQty.GreaterThan(decimal.Zero) && rule.MaxQty.LessThan(rule.MinQty) {
		return nil, domain.ErrInvalidInput
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	return toReorderRuleResponse(rule), nil
}

// List lista reglas paginadas.
func (uc *ReorderRuleUseCase) List(limit, offset int) (*dto.ReorderRuleListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReorderRuleResponse, 0, len(list))
	for _, rule := range list {
		items = append(items, *toReorderRuleResponse(rule))
	}
	return &dto.ReorderRuleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una regla por ID.
func (uc *ReorderRuleUseCase) Delete(id string) error {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toReorderRuleResponse(rule *entity.ReorderRule) *dto.ReorderRuleResponse {
	return &dto.ReorderRuleResponse{
		ID:          rule.ID,
		ProductID:   rule.ProductID,
		WarehouseID: rule.WarehouseID,
		MinQty:      rule.MinQty,
		MaxQty:      rule.MaxQty,
		ReorderQty:  rule.ReorderQty,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}
}
