package dto

import "time"

// CreateReservationRequest body do POST público de reservas.
type CreateReservationRequest struct {
	Name   string    `json:"name" validate:"required"`
	Phone  string    `json:"phone" validate:"required"`
	Date   time.Time `json:"date" validate:"required"`
	People int       `json:"people" validate:"required,min=1"`
	Notes  string    `json:"notes"`
}

// UpdateReservationStatusRequest muda o status de uma reserva (protegido).
type UpdateReservationStatusRequest struct {
	Status string `json:"status"` // pendente | confirmada | cancelada
}

// ReservationResponse saída de uma reserva.
type ReservationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      time.Time `json:"date"`
	People    int       `json:"people"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
