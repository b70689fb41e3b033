package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id" validate:"required"`
	SupplierID  string          `json:"supplier_id"`
	UnitID      string          `json:"unit_id"`
	Visible     bool            `json:"visible"`
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	AvgPrice    *decimal.Decimal `json:"avg_price"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *string          `json:"category_id"`
	SupplierID  *string          `json:"supplier_id"`
	UnitID      *string          `json:"unit_id"`
	Visible     *bool            `json:"visible"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	AvgPrice    decimal.Decimal `json:"avg_price"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	UnitID      string          `json:"unit_id,omitempty"`
	Visible     bool            `json:"visible"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
