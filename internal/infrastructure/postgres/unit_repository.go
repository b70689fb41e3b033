package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementação de UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste uma unidade nova.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, name, abbreviation, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Abbreviation, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtém uma unidade por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	query := `
		SELECT id, name, COALESCE(abbreviation, ''), created_at, updated_at
		FROM units WHERE id = $1`
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Name, &u.Abbreviation, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// Update atualiza uma unidade existente.
func (r *UnitRepo) Update(unit *entity.Unit) error {
	query := `
		UPDATE units SET name = $2, abbreviation = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		unit.ID, unit.Name, unit.Abbreviation, unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// List lista unidades ordenadas por nome.
func (r *UnitRepo) List(limit, offset int) ([]*entity.Unit, error) {
	query := `
		SELECT id, name, COALESCE(abbreviation, ''), created_at, updated_at
		FROM units ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete remove uma unidade por ID.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}
