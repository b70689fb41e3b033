package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/shopspring/decimal"
)

// CMVReportUseCase gera o relatório de CMV em PDF para download:
// o mesmo cálculo do endpoint de valorização, renderizado para impressão.
type CMVReportUseCase struct {
	valuation      *inventory.ValuationUseCase
	generator      CMVReportGenerator
	restaurantName string
}

// NewCMVReportUseCase constrói o caso de uso.
func NewCMVReportUseCase(valuation *inventory.ValuationUseCase, generator CMVReportGenerator, restaurantName string) *CMVReportUseCase {
	return &CMVReportUseCase{
		valuation:      valuation,
		generator:      generator,
		restaurantName: restaurantName,
	}
}

// Download calcula a valorização do período e devolve o PDF com um nome de
// arquivo baseado nas datas.
func (uc *CMVReportUseCase) Download(ctx context.Context, start, end time.Time, revenue *decimal.Decimal) (pdfBytes []byte, filename string, err error) {
	report, err := uc.valuation.Report(ctx, start, end, revenue)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateCMVReport(ctx, uc.restaurantName, report)
	if err != nil {
		return nil, "", fmt.Errorf("relatório cmv: geração falhou: %w", err)
	}
	filename = fmt.Sprintf("cmv_%s_%s.pdf", report.Period.StartDate, report.Period.EndDate)
	return pdfBytes, filename, nil
}
