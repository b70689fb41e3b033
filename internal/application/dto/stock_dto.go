package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Contagem diária ───────────────────────────────────────────────────────────

// DailyCountItem um item da submissão de contagem física.
// Status e Reason são opcionais (vazio = não informado).
type DailyCountItem struct {
	ProductID       string          `json:"product_id"`
	CountedQuantity decimal.Decimal `json:"counted_quantity"`
	Status          string          `json:"status,omitempty"`
	Reason          string          `json:"reason,omitempty"`
}

// Resultados possíveis de um item da contagem.
const (
	CountItemOK      = "ok"
	CountItemSkipped = "skipped"
	CountItemFailed  = "failed"
)

// Códigos de falha por item.
const (
	CountCodeInvalidQuantity = "INVALID_QUANTITY"
	CountCodeInvalidStatus   = "INVALID_STATUS"
	CountCodeProductNotFound = "PRODUCT_NOT_FOUND"
	CountCodeItemNotFound    = "ITEM_NOT_FOUND"
	CountCodeInternal        = "INTERNAL"
)

// CountItemResult resultado individual de um item do lote.
type CountItemResult struct {
	ProductID  string           `json:"product_id"`
	Result     string           `json:"result"` // ok | skipped | failed
	Code       string           `json:"code,omitempty"`
	Message    string           `json:"message,omitempty"`
	Delta      *decimal.Decimal `json:"delta,omitempty"` // counted - current (apenas em ok)
	MovementID string           `json:"movement_id,omitempty"`
}

// DailyCountResult resumo de sucesso parcial do lote.
type DailyCountResult struct {
	Message          string            `json:"message"`
	Processed        int               `json:"processed"`
	CreatedMovements int               `json:"created_movements"`
	Failed           int               `json:"failed"`
	Items            []CountItemResult `json:"items"`
}

// ── Itens de estoque (CRUD) ───────────────────────────────────────────────────

// CreateStockItemRequest entrada para criar um item de estoque.
type CreateStockItemRequest struct {
	ProductID  string          `json:"product_id"`
	CategoryID string          `json:"category_id"`
	UnitID     string          `json:"unit_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	StockMin   decimal.Decimal `json:"stock_min"`
	StockMax   decimal.Decimal `json:"stock_max"`
	Status     string          `json:"status,omitempty"`
}

// UpdateStockItemRequest entrada para atualizar um item (campos opcionais).
type UpdateStockItemRequest struct {
	CategoryID *string          `json:"category_id"`
	UnitID     *string          `json:"unit_id"`
	Quantity   *decimal.Decimal `json:"quantity"`
	StockMin   *decimal.Decimal `json:"stock_min"`
	StockMax   *decimal.Decimal `json:"stock_max"`
	Status     *string          `json:"status"`
}

// StockItemResponse item de estoque com produto e categoria populados.
type StockItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	UnitID       string          `json:"unit_id,omitempty"`
	UnitName     string          `json:"unit_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	StockMin     decimal.Decimal `json:"stock_min"`
	StockMax     decimal.Decimal `json:"stock_max"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockItemListResponse lista paginada de itens.
type StockItemListResponse struct {
	Items []StockItemResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// ── Movimentos ────────────────────────────────────────────────────────────────

// RegisterMovementRequest body do POST /api/stock/movements.
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Type      string          `json:"type"` // entrada | saida
	Reason    string          `json:"reason,omitempty"`
}

// MovementResponse lançamento do ledger com nome do produto populado.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Type        string          `json:"type"`
	Reason      string          `json:"reason"`
	Date        time.Time       `json:"date"`
	UserID      string          `json:"user_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
