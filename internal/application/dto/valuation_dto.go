package dto

import "github.com/shopspring/decimal"

// PeriodDTO intervalo de datas do relatório.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ValuationLineDTO custo de uma linha do inventário no período.
type ValuationLineDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	Status       string          `json:"status"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgPrice     decimal.Decimal `json:"avg_price"`
	Weight       decimal.Decimal `json:"weight"`
	Cost         decimal.Decimal `json:"cost"`
}

// ValuationReportDTO resposta de GET /api/stock/valuation.
// CMVPercent é nil quando a receita não foi informada ou é zero
// (resultado "não computável", nunca Infinity/NaN).
type ValuationReportDTO struct {
	Period     PeriodDTO          `json:"period"`
	TotalCost  decimal.Decimal    `json:"total_cost"`
	Revenue    *decimal.Decimal   `json:"revenue,omitempty"`
	CMVPercent *decimal.Decimal   `json:"cmv_percent,omitempty"`
	ItemCount  int                `json:"item_count"`
	Items      []ValuationLineDTO `json:"items"`
}
