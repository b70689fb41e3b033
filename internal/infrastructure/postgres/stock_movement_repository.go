package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação de StockMovementRepository sobre
// PostgreSQL (usável com pool ou tx). O ledger é append-only: este
// adaptador não expõe UPDATE nem DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create grava um lançamento no ledger.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, quantity, type, reason, date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Quantity, movement.Type,
		movement.Reason, movement.Date, movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento por ID.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, quantity, type, reason, date, COALESCE(user_id::text, ''), created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Quantity, &m.Type, &m.Reason, &m.Date, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// List lista o ledger, mais recente primeiro, com filtros opcionais por
// produto e intervalo de datas.
func (r *StockMovementRepo) List(productID string, from, to *time.Time, limit, offset int) ([]repository.MovementDetail, error) {
	query := `
		SELECT m.id, m.product_id, m.quantity, m.type, m.reason, m.date, COALESCE(m.user_id::text, ''), m.created_at, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id`

	var conds []string
	var args []any
	if productID != "" {
		args = append(args, productID)
		conds = append(conds, "m.product_id = $"+strconv.Itoa(len(args)))
	}
	if from != nil {
		args = append(args, *from)
		conds = append(conds, "m.date >= $"+strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, "m.date <= $"+strconv.Itoa(len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += "\n\t\tWHERE " + c
		} else {
			query += " AND " + c
		}
	}
	args = append(args, limit)
	query += "\n\t\tORDER BY m.date DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var list []repository.MovementDetail
	for rows.Next() {
		var d repository.MovementDetail
		if err := rows.Scan(&d.ID, &d.ProductID, &d.Quantity, &d.Type, &d.Reason, &d.Date, &d.UserID, &d.CreatedAt, &d.ProductName); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
