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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL (usable con pool o tx).
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación. WarehouseID vacío se guarda como NULL.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, name, type, warehouse_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Type,
		nullableString(location.WarehouseID), location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT id, name, type, warehouse_id, created_at, updated_at
		FROM locations WHERE id = $1`
	var loc entity.Location
	var warehouseID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&loc.ID, &loc.Name, &loc.Type, &warehouseID, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	loc.WarehouseID = stringOrEmpty(warehouseID)
	return &loc, nil
}

// List lista ubicaciones con paginación, opcionalmente filtradas por bodega.
func (r *LocationRepo) List(warehouseID string, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, name, type, warehouse_id, created_at, updated_at
		FROM locations`
	args := []any{}
	pos := 1
	if warehouseID != "" {
		query += fmt.Sprintf(" WHERE warehouse_id = $%d", pos)
		args = append(args, warehouseID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var loc entity.Location
		var whID *string
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Type, &whID, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		loc.WarehouseID = stringOrEmpty(whID)
		list = append(list, &loc)
	}
	return list, rows.Err()
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, type = $3, warehouse_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Type,
		nullableString(location.WarehouseID), location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete elimina una ubicación por ID.
func (r *LocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
