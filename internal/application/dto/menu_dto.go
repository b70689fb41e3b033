package dto

import "github.com/shopspring/decimal"

// MenuItemDTO produto visível no cardápio público.
type MenuItemDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

// MenuCategoryDTO categoria do cardápio com seus produtos.
type MenuCategoryDTO struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []MenuItemDTO `json:"items"`
}

// MenuResponse resposta de GET /api/menu (público).
type MenuResponse struct {
	Categories []MenuCategoryDTO `json:"categories"`
}
