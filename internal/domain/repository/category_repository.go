package repository

import "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"

// CategoryRepository define a porta de persistência de Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}
