package repository

import "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"

// SupplierRepository define a porta de persistência de Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
