package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.MoveRepository = (*MoveRepo)(nil)

// MoveRepo implementación del puerto MoveRepository sobre PostgreSQL (usable con pool o tx).
// La tabla stock_moves es append-only; no hay UPDATE ni DELETE.
type MoveRepo struct {
	q Querier
}

// NewMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMoveRepository(q Querier) *MoveRepo {
	return &MoveRepo{q: q}
}

// Create persiste un move. Lados externos (source/dest vacíos) se guardan como NULL.
func (r *MoveRepo) Create(ctx context.Context, move *entity.StockMove) error {
	query := `
		INSERT INTO stock_moves (id, product_id, source_loc_id, dest_loc_id, quantity, date, operation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		move.ID, move.ProductID,
		nullableString(move.SourceLocID), nullableString(move.DestLocID),
		move.Quantity, move.Date, nullableString(move.OperationID),
	)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// GetByID obtiene un move por ID.
func (r *MoveRepo) GetByID(ctx context.Context, id string) (*entity.StockMove, error) {
	query := `
		SELECT id, product_id, source_loc_id, dest_loc_id, quantity, date, operation_id
		FROM stock_moves WHERE id = $1`
	var m entity.StockMove
	var sourceLocID, destLocID, operationID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ProductID, &sourceLocID, &destLocID, &m.Quantity, &m.Date, &operationID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock move: %w", err)
	}
	m.SourceLocID = stringOrEmpty(sourceLocID)
	m.DestLocID = stringOrEmpty(destLocID)
	m.OperationID = stringOrEmpty(operationID)
	return &m, nil
}

// List lista moves con paginación, opcionalmente por producto, más recientes primero.
func (r *MoveRepo) List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockMove, error) {
	query := `
		SELECT id, product_id, source_loc_id, dest_loc_id, quantity, date, operation_id
		FROM stock_moves`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" WHERE product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		var sourceLocID, destLocID, operationID *string
		if err := rows.Scan(&m.ID, &m.ProductID, &sourceLocID, &destLocID, &m.Quantity, &m.Date, &operationID); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		m.SourceLocID = stringOrEmpty(sourceLocID)
		m.DestLocID = stringOrEmpty(destLocID)
		m.OperationID = stringOrEmpty(operationID)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SumIn suma las cantidades que entraron a la ubicación (nil = todas las ubicaciones internas y externas).
func (r *MoveRepo) SumIn(ctx context.Context, productID string, locationID *string) (decimal.Decimal, error) {
	return r.sum(ctx, "dest_loc_id", productID, locationID)
}

// SumOut suma las cantidades que salieron de la ubicación (nil = todas).
func (r *MoveRepo) SumOut(ctx context.Context, productID string, locationID *string) (decimal.Decimal, error) {
	return r.sum(ctx, "source_loc_id", productID, locationID)
}

func (r *MoveRepo) sum(ctx context.Context, sideColumn, productID string, locationID *string) (decimal.Decimal, error) {
	var query string
	args := []any{productID}
	if locationID != nil {
		query = fmt.Sprintf(`SELECT COALESCE(SUM(quantity), 0) FROM stock_moves WHERE product_id = $1 AND %s = $2`, sideColumn)
		args = append(args, *locationID)
	} else {
		// Red completa: solo cuentan los lados internos (no NULL) para no duplicar.
		query = fmt.Sprintf(`SELECT COALESCE(SUM(quantity), 0) FROM stock_moves WHERE product_id = $1 AND %s IS NOT NULL`, sideColumn)
	}
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock moves: %w", err)
	}
	return sum, nil
}

// SumInByWarehouse suma las entradas a cualquier ubicación de la bodega.
func (r *MoveRepo) SumInByWarehouse(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	return r.sumByWarehouse(ctx, "dest_loc_id", productID, warehouseID)
}

// SumOutByWarehouse suma las salidas desde cualquier ubicación de la bodega.
func (r *MoveRepo) SumOutByWarehouse(ctx context.Context, productID, warehouseID string) (decimal.Decimal, error) {
	return r.sumByWarehouse(ctx, "source_loc_id", productID, warehouseID)
}

func (r *MoveRepo) sumByWarehouse(ctx context.Context, sideColumn, productID, warehouseID string) (decimal.Decimal, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(m.quantity), 0)
		FROM stock_moves m
		JOIN locations loc ON loc.id = m.%s
		WHERE m.product_id = $1 AND loc.warehouse_id = $2`, sideColumn)
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock moves by warehouse: %w", err)
	}
	return sum, nil
}
