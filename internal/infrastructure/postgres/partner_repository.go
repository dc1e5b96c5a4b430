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

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación del puerto PartnerRepository sobre PostgreSQL (usable con pool o tx).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// Create persiste un tercero.
func (r *PartnerRepo) Create(partner *entity.Partner) error {
	query := `
		INSERT INTO partners (id, name, type, contact, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.Name, partner.Type, partner.Contact, partner.CreatedAt, partner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero por ID.
func (r *PartnerRepo) GetByID(id string) (*entity.Partner, error) {
	query := `
		SELECT id, name, type, contact, created_at, updated_at
		FROM partners WHERE id = $1`
	var p entity.Partner
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Type, &p.Contact, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return &p, nil
}

// List lista terceros con paginación, opcionalmente filtrados por tipo.
func (r *PartnerRepo) List(partnerType string, limit, offset int) ([]*entity.Partner, error) {
	query := `
		SELECT id, name, type, contact, created_at, updated_at
		FROM partners`
	args := []any{}
	pos := 1
	if partnerType != "" {
		query += fmt.Sprintf(" WHERE type = $%d", pos)
		args = append(args, partnerType)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Partner
	for rows.Next() {
		var p entity.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Contact, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un tercero existente.
func (r *PartnerRepo) Update(partner *entity.Partner) error {
	query := `
		UPDATE partners SET name = $2, type = $3, contact = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.Name, partner.Type, partner.Contact, partner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

// Delete elimina un tercero por ID.
func (r *PartnerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}
