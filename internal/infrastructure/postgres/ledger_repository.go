package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del puerto LedgerRepository sobre PostgreSQL (usable con pool o tx).
// La tabla stock_ledger es append-only.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste una entrada del ledger.
func (r *LedgerRepo) Create(ctx context.Context, entry *entity.StockLedger) error {
	query := `
		INSERT INTO stock_ledger (id, product_id, location_id, change_qty, resulting_qty, move_id, operation_id, performed_by_id, reason, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, nullableString(entry.LocationID),
		entry.ChangeQty, entry.ResultingQty,
		nullableString(entry.MoveID), nullableString(entry.OperationID),
		nullableString(entry.PerformedByID), entry.Reason, entry.Date,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *LedgerRepo) GetByID(ctx context.Context, id string) (*entity.StockLedger, error) {
	query := `
		SELECT id, product_id, location_id, change_qty, resulting_qty, move_id, operation_id, performed_by_id, reason, date
		FROM stock_ledger WHERE id = $1`
	var e entity.StockLedger
	var locationID, moveID, operationID, performedByID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.ProductID, &locationID, &e.ChangeQty, &e.ResultingQty,
		&moveID, &operationID, &performedByID, &e.Reason, &e.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	e.LocationID = stringOrEmpty(locationID)
	e.MoveID = stringOrEmpty(moveID)
	e.OperationID = stringOrEmpty(operationID)
	e.PerformedByID = stringOrEmpty(performedByID)
	return &e, nil
}

// List lista entradas con paginación, opcionalmente por producto, más recientes primero.
func (r *LedgerRepo) List(ctx context.Context, productID string, limit, offset int) ([]*entity.StockLedger, error) {
	query := `
		SELECT id, product_id, location_id, change_qty, resulting_qty, move_id, operation_id, performed_by_id, reason, date
		FROM stock_ledger`
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
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLedger
	for rows.Next() {
		var e entity.StockLedger
		var locationID, moveID, operationID, performedByID *string
		if err := rows.Scan(&e.ID, &e.ProductID, &locationID, &e.ChangeQty, &e.ResultingQty,
			&moveID, &operationID, &performedByID, &e.Reason, &e.Date); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.LocationID = stringOrEmpty(locationID)
		e.MoveID = stringOrEmpty(moveID)
		e.OperationID = stringOrEmpty(operationID)
		e.PerformedByID = stringOrEmpty(performedByID)
		list = append(list, &e)
	}
	return list, rows.Err()
}
