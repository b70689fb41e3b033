package entity

import "time"

// Status possíveis de uma reserva.
const (
	ReservationPending   = "pendente"
	ReservationConfirmed = "confirmada"
	ReservationCancelled = "cancelada"
)

// Reservation reserva de mesa feita pela página pública.
type Reservation struct {
	ID        string
	Name      string
	Phone     string
	Date      time.Time
	People    int
	Notes     string
	Status    string // pendente, confirmada, cancelada
	CreatedAt time.Time
	UpdatedAt time.Time
}
