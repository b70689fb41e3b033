package repository

import (
	"context"
	"time"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockItemDetail linha de listagem com produto e categoria populados
// (o consumidor do GET /api/stock precisa do preço médio e do nome da
// categoria para compatibilidade com o fluxo antigo de CMV no cliente).
type StockItemDetail struct {
	entity.StockItem
	ProductName  string
	AvgPrice     decimal.Decimal
	CategoryName string
	UnitName     string
}

// ValuationRow linha mínima consumida pelo motor de CMV.
type ValuationRow struct {
	ProductID    string
	ProductName  string
	AvgPrice     decimal.Decimal
	CategoryName string
	Status       string
	Quantity     decimal.Decimal
	CreatedAt    time.Time
}

// StockItemRepository define a porta de persistência dos itens de estoque.
// GetByProductForUpdate é usado dentro de transação para travar a linha
// (SELECT FOR UPDATE) durante a conciliação.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByProduct(productID string) (*entity.StockItem, error)
	GetByProductForUpdate(productID string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	Delete(id string) error
	ListDetailed(ctx context.Context, limit, offset int) ([]StockItemDetail, error)
	// ListForValuation devolve os itens com created_at dentro de [start, end]
	// já populados com preço médio do produto e nome da categoria.
	ListForValuation(ctx context.Context, start, end time.Time) ([]ValuationRow, error)
}
