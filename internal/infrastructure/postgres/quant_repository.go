package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.QuantRepository = (*QuantRepo)(nil)

// QuantRepo implementación del puerto QuantRepository sobre PostgreSQL (usable con pool o tx).
type QuantRepo struct {
	q Querier
}

// NewQuantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuantRepository(q Querier) *QuantRepo {
	return &QuantRepo{q: q}
}

// GetByID obtiene un quant por ID.
func (r *QuantRepo) GetByID(ctx context.Context, id string) (*entity.StockQuant, error) {
	query := `
		SELECT id, product_id, location_id, quantity, reserved_qty, updated_at
		FROM stock_quants WHERE id = $1`
	var q entity.StockQuant
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.ProductID, &q.LocationID, &q.Quantity, &q.ReservedQty, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quant: %w", err)
	}
	return &q, nil
}

// Get obtiene el quant de un producto en una ubicación; nil si no existe.
func (r *QuantRepo) Get(ctx context.Context, productID, locationID string) (*entity.StockQuant, error) {
	query := `
		SELECT id, product_id, location_id, quantity, reserved_qty, updated_at
		FROM stock_quants WHERE product_id = $1 AND location_id = $2`
	var q entity.StockQuant
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&q.ID, &q.ProductID, &q.LocationID, &q.Quantity, &q.ReservedQty, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quant by product and location: %w", err)
	}
	return &q, nil
}

// GetForUpdate bloquea la fila del quant (SELECT FOR UPDATE). Si no existe,
// devuelve un quant en cero listo para el Upsert posterior; el bloqueo real
// contra inserciones concurrentes lo da el constraint único (product_id, location_id).
func (r *QuantRepo) GetForUpdate(ctx context.Context, productID, locationID string) (*entity.StockQuant, error) {
	query := `
		SELECT id, product_id, location_id, quantity, reserved_qty, updated_at
		FROM stock_quants WHERE product_id = $1 AND location_id = $2 FOR UPDATE`
	var q entity.StockQuant
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&q.ID, &q.ProductID, &q.LocationID, &q.Quantity, &q.ReservedQty, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockQuant{
				ID:          uuid.New().String(),
				ProductID:   productID,
				LocationID:  locationID,
				Quantity:    decimal.Zero,
				ReservedQty: decimal.Zero,
				UpdatedAt:   time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("lock quant: %w", err)
	}
	return &q, nil
}

// Upsert inserta o actualiza el quant por (product_id, location_id).
func (r *QuantRepo) Upsert(ctx context.Context, quant *entity.StockQuant) error {
	query := `
		INSERT INTO stock_quants (id, product_id, location_id, quantity, reserved_qty, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reserved_qty = EXCLUDED.reserved_qty, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		quant.ID, quant.ProductID, quant.LocationID, quant.Quantity, quant.ReservedQty, quant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert quant: %w", err)
	}
	return nil
}

// List lista quants con paginación, opcionalmente filtrados por ubicación.
func (r *QuantRepo) List(ctx context.Context, locationID string, limit, offset int) ([]*entity.StockQuant, error) {
	query := `
		SELECT id, product_id, location_id, quantity, reserved_qty, updated_at
		FROM stock_quants`
	args := []any{}
	pos := 1
	if locationID != "" {
		query += fmt.Sprintf(" WHERE location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY updated_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quants: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockQuant
	for rows.Next() {
		var q entity.StockQuant
		if err := rows.Scan(&q.ID, &q.ProductID, &q.LocationID, &q.Quantity, &q.ReservedQty, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quant: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}
