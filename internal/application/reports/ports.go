package reports

import (
	"context"

	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
)

// CMVReportGenerator gera a representação em PDF do relatório de
// valorização. Implementado na infraestrutura (Maroto).
type CMVReportGenerator interface {
	GenerateCMVReport(ctx context.Context, restaurantName string, report *dto.ValuationReportDTO) ([]byte, error)
}
