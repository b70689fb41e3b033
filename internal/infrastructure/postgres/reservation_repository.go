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

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementação de ReservationRepository sobre PostgreSQL.
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste uma reserva nova.
func (r *ReservationRepo) Create(reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, name, phone, date, people, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.Name, reservation.Phone, reservation.Date,
		reservation.People, reservation.Notes, reservation.Status,
		reservation.CreatedAt, reservation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtém uma reserva por ID.
func (r *ReservationRepo) GetByID(id string) (*entity.Reservation, error) {
	query := `
		SELECT id, name, phone, date, people, COALESCE(notes, ''), status, created_at, updated_at
		FROM reservations WHERE id = $1`
	var res entity.Reservation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&res.ID, &res.Name, &res.Phone, &res.Date, &res.People, &res.Notes, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// Update atualiza uma reserva existente (tipicamente o status).
func (r *ReservationRepo) Update(reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET name = $2, phone = $3, date = $4, people = $5, notes = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		reservation.ID, reservation.Name, reservation.Phone, reservation.Date,
		reservation.People, reservation.Notes, reservation.Status, reservation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

// List lista reservas ordenadas por data, com filtros opcionais por
// intervalo e status.
func (r *ReservationRepo) List(from, to *time.Time, status string, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT id, name, phone, date, people, COALESCE(notes, ''), status, created_at, updated_at
		FROM reservations`

	var conds []string
	var args []any
	if from != nil {
		args = append(args, *from)
		conds = append(conds, "date >= $"+strconv.Itoa(len(args)))
	}
	if to != nil {
		args = append(args, *to)
		conds = append(conds, "date <= $"+strconv.Itoa(len(args)))
	}
	if status != "" {
		args = append(args, status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			query += "\n\t\tWHERE " + c
		} else {
			query += " AND " + c
		}
	}
	args = append(args, limit)
	query += "\n\t\tORDER BY date LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(&res.ID, &res.Name, &res.Phone, &res.Date, &res.People, &res.Notes, &res.Status, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}
