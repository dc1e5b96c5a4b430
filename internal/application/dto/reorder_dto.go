package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReorderRuleRequest entrada para crear una regla de reorden.
type CreateReorderRuleRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id"`
	MinQty      decimal.Decimal `json:"min_qty"`
	MaxQty      decimal.Decimal `json:"max_qty"`
	ReorderQty  decimal.Decimal `json:"reorder_qty"`
}

// UpdateReorderRuleRequest entrada para actualizar una regla de reorden.
type UpdateReorderRuleRequest struct {
	MinQty     *decimal.Decimal `json:"min_qty"`
	MaxQty     *decimal.Decimal `json:"max_qty"`
	ReorderQty *decimal.Decimal `json:"reorder_qty"`
}

// ReorderRuleResponse salida de una regla de reorden.
type ReorderRuleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id,omitempty"`
	MinQty      decimal.Decimal `json:"min_qty"`
	MaxQty      decimal.Decimal `json:"max_qty"`
	ReorderQty  decimal.Decimal `json:"reorder_qty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ReorderRuleListResponse lista paginada de reglas.
type ReorderRuleListResponse struct {
	Items []ReorderRuleResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ReorderSuggestionDTO producto bajo su punto de reorden con la cantidad sugerida de pedido.
type ReorderSuggestionDTO struct {
	RuleID       string          `json:"rule_id"`
	ProductID    string          `json:"product_id"`
	SKU          string          `json:"sku"`
	ProductName  string          `json:"product_name"`
	WarehouseID  string          `json:"warehouse_id,omitempty"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinQty       decimal.Decimal `json:"min_qty"`
	SuggestedQty decimal.Decimal `json:"suggested_qty"`
	Priority     int             `json:"priority"` // 1 = más urgente
}
