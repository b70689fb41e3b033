package dto

import "time"

// ── Categorias ────────────────────────────────────────────────────────────────

// CategoryRequest entrada para criar/atualizar uma categoria.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// CategoryResponse saída de uma categoria.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ── Fornecedores ──────────────────────────────────────────────────────────────

// SupplierRequest entrada para criar/atualizar um fornecedor.
type SupplierRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	CNPJ  string `json:"cnpj"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// SupplierResponse saída de um fornecedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ── Unidades ──────────────────────────────────────────────────────────────────

// UnitRequest entrada para criar/atualizar uma unidade de medida.
type UnitRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Abbreviation string `json:"abbreviation"`
}

// UnitResponse saída de uma unidade.
type UnitResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
