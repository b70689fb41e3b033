package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleEstoquista = "estoquista"
	RoleAtendente  = "atendente"
)

// User representa um usuário do sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano no domínio depois de persistir
	Name         string
	Role         string // admin, estoquista, atendente
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
