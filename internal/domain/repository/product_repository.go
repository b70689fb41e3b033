package repository

import "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"

// ProductRepository define a porta de persistência de Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
