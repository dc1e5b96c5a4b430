package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stockmaster/internal/domain"
	"github.com/tu-usuario/stockmaster/internal/domain/entity"
	"github.com/tu-usuario/stockmaster/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación del puerto OperationRepository sobre PostgreSQL (usable con pool o tx).
type OperationRepo struct {
	q Querier
}

// NewOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOperationRepository(q Querier) *OperationRepo {
	return &OperationRepo{q: q}
}

// Create persiste la cabecera de una operación. Las líneas se insertan con CreateLine.
func (r *OperationRepo) Create(ctx context.Context, op *entity.StockOperation) error {
	query := `
		INSERT INTO stock_operations (id, reference, operation_type, status, source_loc_id, dest_loc_id, partner_id, created_by_id, scheduled_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		op.ID, op.Reference, op.OperationType, op.Status,
		nullableString(op.SourceLocID), nullableString(op.DestLocID),
		nullableString(op.PartnerID), nullableString(op.CreatedByID),
		op.ScheduledDate, op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de demanda.
func (r *OperationRepo) CreateLine(ctx context.Context, line *entity.StockOperationLine) error {
	query := `
		INSERT INTO stock_operation_lines (id, operation_id, product_id, demand_qty, done_qty)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.OperationID, line.ProductID, line.DemandQty, line.DoneQty,
	)
	if err != nil {
		return fmt.Errorf("insert operation line: %w", err)
	}
	return nil
}

// GetByID carga la operación con sus líneas; nil si no existe.
func (r *OperationRepo) GetByID(ctx context.Context, id string) (*entity.StockOperation, error) {
	query := `
		SELECT id, reference, operation_type, status, source_loc_id, dest_loc_id, partner_id, created_by_id, scheduled_date, created_at, updated_at
		FROM stock_operations WHERE id = $1`
	var op entity.StockOperation
	var sourceLocID, destLocID, partnerID, createdByID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&op.ID, &op.Reference, &op.OperationType, &op.Status,
		&sourceLocID, &destLocID, &partnerID, &createdByID,
		&op.ScheduledDate, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation: %w", err)
	}
	op.SourceLocID = stringOrEmpty(sourceLocID)
	op.DestLocID = stringOrEmpty(destLocID)
	op.PartnerID = stringOrEmpty(partnerID)
	op.CreatedByID = stringOrEmpty(createdByID)

	lines, err := r.linesByOperation(ctx, op.ID)
	if err != nil {
		return nil, err
	}
	op.Lines = lines
	return &op, nil
}

func (r *OperationRepo) linesByOperation(ctx context.Context, operationID string) ([]entity.StockOperationLine, error) {
	query := `
		SELECT id, operation_id, product_id, demand_qty, done_qty
		FROM stock_operation_lines WHERE operation_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("list operation lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.StockOperationLine
	for rows.Next() {
		var l entity.StockOperationLine
		if err := rows.Scan(&l.ID, &l.OperationID, &l.ProductID, &l.DemandQty, &l.DoneQty); err != nil {
			return nil, fmt.Errorf("scan operation line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List lista operaciones (sin líneas) con paginación, filtrables por estado y tipo.
func (r *OperationRepo) List(ctx context.Context, status, operationType string, limit, offset int) ([]*entity.StockOperation, error) {
	query := `
		SELECT id, reference, operation_type, status, source_loc_id, dest_loc_id, partner_id, created_by_id, scheduled_date, created_at, updated_at
		FROM stock_operations`
	args := []any{}
	pos := 1
	where := ""
	if status != "" {
		where += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	if operationType != "" {
		if where == "" {
			where = fmt.Sprintf(" WHERE operation_type = $%d", pos)
		} else {
			where += fmt.Sprintf(" AND operation_type = $%d", pos)
		}
		args = append(args, operationType)
		pos++
	}
	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOperation
	for rows.Next() {
		var op entity.StockOperation
		var sourceLocID, destLocID, partnerID, createdByID *string
		if err := rows.Scan(&op.ID, &op.Reference, &op.OperationType, &op.Status,
			&sourceLocID, &destLocID, &partnerID, &createdByID,
			&op.ScheduledDate, &op.CreatedAt, &op.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan operation: %w", err)
		}
		op.SourceLocID = stringOrEmpty(sourceLocID)
		op.DestLocID = stringOrEmpty(destLocID)
		op.PartnerID = stringOrEmpty(partnerID)
		op.CreatedByID = stringOrEmpty(createdByID)
		list = append(list, &op)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la operación.
func (r *OperationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_operations SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update operation status: %w", err)
	}
	return nil
}

// UpdateLineDone fija la cantidad hecha de una línea.
func (r *OperationRepo) UpdateLineDone(ctx context.Context, lineID string, doneQty decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stock_operation_lines SET done_qty = $2 WHERE id = $1`,
		lineID, doneQty,
	)
	if err != nil {
		return fmt.Errorf("update line done qty: %w", err)
	}
	return nil
}

// AcquireReferenceLock toma un advisory lock transaccional por tipo de operación.
// Serializa la generación de referencias concurrentes del mismo tipo; se libera
// solo con el commit/rollback de la transacción.
func (r *OperationRepo) AcquireReferenceLock(ctx context.Context, operationType string) error {
	_, err := r.q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext('stockmaster:ref:' || $1))`,
		operationType,
	)
	if err != nil {
		return fmt.Errorf("acquire reference lock: %w", err)
	}
	return nil
}

// LastReferenceByType devuelve la referencia más reciente del tipo ("" si no hay).
func (r *OperationRepo) LastReferenceByType(ctx context.Context, operationType string) (string, error) {
	var ref string
	err := r.q.QueryRow(ctx,
		`SELECT reference FROM stock_operations WHERE operation_type = $1 ORDER BY created_at DESC, id DESC LIMIT 1`,
		operationType,
	).Scan(&ref)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last reference by type: %w", err)
	}
	return ref, nil
}

// OutstandingDemand suma demand_qty - done_qty de líneas del producto en otras
// operaciones no terminadas con la misma ubicación origen.
func (r *OperationRepo) OutstandingDemand(ctx context.Context, productID, sourceLocID, excludeOpID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(l.demand_qty - l.done_qty), 0)
		FROM stock_operation_lines l
		JOIN stock_operations o ON o.id = l.operation_id
		WHERE l.product_id = $1
		  AND o.source_loc_id = $2
		  AND o.id <> $3
		  AND o.status IN ('draft', 'waiting', 'ready')`
	var sum decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, sourceLocID, excludeOpID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("outstanding demand: %w", err)
	}
	return sum, nil
}

// CountByStatus devuelve el número de operaciones por estado.
func (r *OperationRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM stock_operations GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count operations by status: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan operation count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
