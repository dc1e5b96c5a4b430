package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.ReorderRuleRepository = (*ReorderRuleRepo)(nil)

// ReorderRuleRepo implementación del puerto ReorderRuleRepository sobre PostgreSQL (usable con pool o tx).
type ReorderRuleRepo struct {
	q Querier
}

// NewReorderRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReorderRuleRepository(q Querier) *ReorderRuleRepo {
	return &ReorderRuleRepo{q: q}
}

// Create persiste una regla. Una por (product_id, warehouse_id).
func (r *ReorderRuleRepo) Create(rule *entity.ReorderRule) error {
	query := `
		INSERT INTO reorder_rules (id, product_id, warehouse_id, min_qty, max_qty, reorder_qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.ProductID, nullableString(rule.WarehouseID),
		rule.MinQty, rule.MaxQty, rule.ReorderQty, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reorder rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *ReorderRuleRepo) GetByID(id string) (*entity.ReorderRule, error) {
	query := `
		SELECT id, product_id, warehouse_id, min_qty, max_qty, reorder_qty, created_at, updated_at
		FROM reorder_rules WHERE id = $1`
	var rule entity.ReorderRule
	var warehouseID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rule.ID, &rule.ProductID, &warehouseID,
		&rule.MinQty, &rule.MaxQty, &rule.ReorderQty, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reorder rule: %w", err)
	}
	rule.WarehouseID = stringOrEmpty(warehouseID)
	return &rule, nil
}

// List lista reglas con paginación.
func (r *ReorderRuleRepo) List(limit, offset int) ([]*entity.ReorderRule, error) {
	query := `
		SELECT id, product_id, warehouse_id, min_qty, max_qty, reorder_qty, created_at, updated_at
		FROM reorder_rules ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reorder rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReorderRule
	for rows.Next() {
		var rule entity.ReorderRule
		var warehouseID *string
		if err := rows.Scan(&rule.ID, &rule.ProductID, &warehouseID,
			&rule.MinQty, &rule.MaxQty, &rule.ReorderQty, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reorder rule: %w", err)
		}
		rule.WarehouseID = stringOrEmpty(warehouseID)
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Update actualiza una regla existente.
func (r *ReorderRuleRepo) Update(rule *entity.ReorderRule) error {
	query := `
		UPDATE reorder_rules SET min_qty = $2, max_qty = $3, reorder_qty = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.MinQty, rule.MaxQty, rule.ReorderQty, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reorder rule: %w", err)
	}
	return nil
}

// Delete elimina una regla por ID.
func (r *ReorderRuleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reorder_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reorder rule: %w", err)
	}
	return nil
}
