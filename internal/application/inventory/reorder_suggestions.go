package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/application/dto"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

// ReorderSuggestionUseCase genera la lista de productos bajo su punto de reorden
// con la cantidad sugerida de pedido, a partir de las reglas y del stock derivado.
type ReorderSuggestionUseCase struct {
	ruleRepo    repository.ReorderRuleRepository
	moveRepo    repository.MoveRepository
	productRepo repository.ProductRepository
}

// NewReorderSuggestionUseCase construye el caso de uso.
func NewReorderSuggestionUseCase(
	ruleRepo repository.ReorderRuleRepository,
	moveRepo repository.MoveRepository,
	productRepo repository.ProductRepository,
) *ReorderSuggestionUseCase {
	return &ReorderSuggestionUseCase{ruleRepo: ruleRepo, moveRepo: moveRepo, productRepo: productRepo}
}

// GenerateSuggestions recorre las reglas de reorden, calcula el stock actual del
// producto (acotado a la bodega de la regla cuando la tiene) y devuelve las que
// están por debajo de min_qty, ordenadas por mayor déficit primero.
// Cantidad sugerida: reorder_qty si está definida; si no, hasta max_qty; si
// tampoco, hasta min_qty.
func (uc *ReorderSuggestionUseCase) GenerateSuggestions(ctx context.Context) ([]dto.ReorderSuggestionDTO, error) {
	rules, err := uc.ruleRepo.List(500, 0)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReorderSuggestionDTO, 0)
	for _, rule := range rules {
		var in, out decimal.Decimal
		if rule.WarehouseID != "" {
			in, err = uc.moveRepo.SumInByWarehouse(ctx, rule.ProductID, rule.WarehouseID)
			if err != nil {
				return nil, err
			}
			out, err = uc.moveRepo.SumOutByWarehouse(ctx, rule.ProductID, rule.WarehouseID)
			if err != nil {
				return nil, err
			}
		} else {
			in, err = uc.moveRepo.SumIn(ctx, rule.ProductID, nil)
			if err != nil {
				return nil, err
			}
			out, err = uc.moveRepo.SumOut(ctx, rule.ProductID, nil)
			if err != nil {
				return nil, err
			}
		}
		current := in.Sub(out)
		if current.GreaterThanOrEqual(rule.MinQty) {
			continue
		}

		suggested := rule.ReorderQty
		if !suggested.IsPositive() {
			if rule.MaxQty.IsPositive() {
				suggested = rule.MaxQty.Sub(current)
			} else {
				suggested = rule.MinQty.Sub(current)
			}
		}

		sku, name := rule.ProductID, ""
		if p, err := uc.productRepo.GetByID(rule.ProductID); err == nil && p != nil {
			sku, name = p.SKU, p.Name
		}
		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			RuleID:       rule.ID,
			ProductID:    rule.ProductID,
			SKU:          sku,
			ProductName:  name,
			WarehouseID:  rule.WarehouseID,
			CurrentStock: current,
			MinQty:       rule.MinQty,
			SuggestedQty: suggested,
		})
	}

	// Mayor déficit primero
	sort.SliceStable(suggestions, func(i, j int) bool {
		defI := suggestions[i].MinQty.Sub(suggestions[i].CurrentStock)
		defJ := suggestions[j].MinQty.Sub(suggestions[j].CurrentStock)
		return defI.GreaterThan(defJ)
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
