package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
)

// UnitUseCase casos de uso CRUD para unidades de medida.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase constrói o caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create cria uma unidade.
func (uc *UnitUseCase) Create(in dto.UnitRequest) (*dto.UnitResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	unit := &entity.Unit{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Abbreviation: in.Abbreviation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// GetByID obtém uma unidade por ID.
func (uc *UnitUseCase) GetByID(id string) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return toUnitResponse(unit), nil
}

// Update atualiza nome e abreviação.
func (uc *UnitUseCase) Update(id string, in dto.UnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit.Name = in.Name
	unit.Abbreviation = in.Abbreviation
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista unidades com paginação.
func (uc *UnitUseCase) List(limit, offset int) ([]dto.UnitResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUnitResponse(u))
	}
	return out, nil
}

// Delete remove uma unidade por ID.
func (uc *UnitUseCase) Delete(id string) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:           u.ID,
		Name:         u.Name,
		Abbreviation: u.Abbreviation,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
