package repository

import (
	"time"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
)

// ReservationRepository define a porta de persistência de Reservation.
type ReservationRepository interface {
	Create(reservation *entity.Reservation) error
	GetByID(id string) (*entity.Reservation, error)
	Update(reservation *entity.Reservation) error
	// List filtra por intervalo de datas e status (opcionais), ordenado por data.
	List(from, to *time.Time, status string, limit, offset int) ([]*entity.Reservation, error)
}
