package repository

import "github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"

// UserRepository define a porta de persistência de User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
