package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

// ReservationUseCase reservas de mesa: criação pública e gestão interna.
type ReservationUseCase struct {
	repo repository.ReservationRepository
}

// NewReservationUseCase constrói o caso de uso.
func NewReservationUseCase(repo repository.ReservationRepository) *ReservationUseCase {
	return &ReservationUseCase{repo: repo}
}

// Create cria uma reserva pendente (endpoint público, sem autenticação).
func (uc *ReservationUseCase) Create(in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if in.Name == "" || in.Phone == "" || in.People < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.Date.Before(time.Now()) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	reservation := &entity.Reservation{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Date:      in.Date,
		People:    in.People,
		Notes:     in.Notes,
		Status:    entity.ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(reservation); err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

// UpdateStatus confirma ou cancela uma reserva. Reserva cancelada não pode
// voltar a outro status.
func (uc *ReservationUseCase) UpdateStatus(id, status string) (*dto.ReservationResponse, error) {
	switch status {
	case entity.ReservationPending, entity.ReservationConfirmed, entity.ReservationCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}
	reservation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrNotFound
	}
	if reservation.Status == entity.ReservationCancelled {
		return nil, domain.ErrConflict
	}
	reservation.Status = status
	reservation.UpdatedAt = time.Now()
	if err := uc.repo.Update(reservation); err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

// GetByID obtém uma reserva por ID.
func (uc *ReservationUseCase) GetByID(id string) (*dto.ReservationResponse, error) {
	reservation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrNotFound
	}
	return toReservationResponse(reservation), nil
}

// List lista reservas filtrando por intervalo de datas e status (opcionais).
func (uc *ReservationUseCase) List(from, to *time.Time, status string, limit, offset int) ([]dto.ReservationResponse, error) {
	list, err := uc.repo.List(from, to, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toReservationResponse(r))
	}
	return out, nil
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	return &dto.ReservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Date:      r.Date,
		People:    r.People,
		Notes:     r.Notes,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
