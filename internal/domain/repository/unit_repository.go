package repository

import "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"

// UnitRepository define a porta de persistência de Unit.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	List(limit, offset int) ([]*entity.Unit, error)
	Delete(id string) error
}
