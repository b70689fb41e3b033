package inventory

import (
	"context"
	"time"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/repository"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/domain/valuation"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var oneHundred = decimal.NewFromInt(100)

// ValuationUseCase calcula o custo ponderado do inventário num período e,
// quando a receita é informada, o percentual de CMV contra ela.
type ValuationUseCase struct {
	itemRepo repository.StockItemRepository
	draft    valuation.DraftCategorySet
}

// NewValuationUseCase constrói o caso de uso com o conjunto de categorias
// de chope engatado já normalizado.
func NewValuationUseCase(itemRepo repository.StockItemRepository, draftCategories []string) *ValuationUseCase {
	return &ValuationUseCase{
		itemRepo: itemRepo,
		draft:    valuation.NewDraftCategorySet(draftCategories),
	}
}

// Report valoriza os itens criados dentro de [start, end]. O fim é estendido
// ao último instante do dia para que o intervalo seja inclusivo. CMVPercent
// fica nil quando a receita não foi informada ou é zero.
func (uc *ValuationUseCase) Report(ctx context.Context, start, end time.Time, revenue *decimal.Decimal) (*dto.ValuationReportDTO, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())

	rows, err := uc.itemRepo.ListForValuation(ctx, start, endOfDay)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	items := make([]dto.ValuationLineDTO, 0, len(rows))
	for _, row := range rows {
		weight := valuation.Weight(uc.draft, row.CategoryName, row.Status)
		cost := valuation.ItemCost(uc.draft, row.AvgPrice, row.Quantity, row.CategoryName, row.Status)
		total = total.Add(cost)
		items = append(items, dto.ValuationLineDTO{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			CategoryName: row.CategoryName,
			Status:       row.Status,
			Quantity:     row.Quantity,
			AvgPrice:     row.AvgPrice,
			Weight:       weight,
			Cost:         cost,
		})
	}

	report := &dto.ValuationReportDTO{
		Period: dto.PeriodDTO{
			StartDate: start.Format(dateLayout),
			EndDate:   end.Format(dateLayout),
		},
		TotalCost: total,
		Revenue:   revenue,
		ItemCount: len(items),
		Items:     items,
	}

	// Receita ausente ou zero: percentual não computável, nunca Inf/NaN.
	if revenue != nil && revenue.GreaterThan(decimal.Zero) {
		pct := total.Div(*revenue).Mul(oneHundred)
		report.CMVPercent = &pct
	}

	return report, nil
}
