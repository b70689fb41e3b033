package entity

import "time"

// Supplier representa um fornecedor.
type Supplier struct {
	ID        string
	Name      string
	CNPJ      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
