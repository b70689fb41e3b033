package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do restaurante (insumo ou item de cardápio).
// AvgPrice é o custo médio usado pela valorização de estoque (CMV);
// Price é o preço de venda exibido no cardápio.
type Product struct {
	ID          string
	Name        string
	Description string
	AvgPrice    decimal.Decimal
	Price       decimal.Decimal
	CategoryID  string
	SupplierID  string // opcional
	UnitID      string // opcional
	Visible     bool   // aparece no cardápio público
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
