package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/reports"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/metrics"
	"github.com/shopspring/decimal"
)

// ValuationHandler maneja o relatório de valorização (CMV).
type ValuationHandler struct {
	uc       *inventory.ValuationUseCase
	reportUC *reports.CMVReportUseCase
	metrics  *metrics.Metrics
}

// NewValuationHandler constrói o handler.
func NewValuationHandler(uc *inventory.ValuationUseCase, reportUC *reports.CMVReportUseCase, m *metrics.Metrics) *ValuationHandler {
	return &ValuationHandler{uc: uc, reportUC: reportUC, metrics: m}
}

// parsePeriod lê start_date, end_date e revenue da query string.
func parsePeriod(c *fiber.Ctx) (start, end time.Time, revenue *decimal.Decimal, err error) {
	start, err = time.Parse("2006-01-02", c.Query("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, nil, err
	}
	end, err = time.Parse("2006-01-02", c.Query("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, nil, err
	}
	if s := c.Query("revenue"); s != "" {
		r, derr := decimal.NewFromString(s)
		if derr != nil {
			return time.Time{}, time.Time{}, nil, derr
		}
		revenue = &r
	}
	return start, end, revenue, nil
}

// Report godoc
// @Summary      Valorização ponderada do estoque (CMV)
// @Description  Soma avg_price × quantity × peso(status) dos itens do
//               período. Com revenue informado devolve também cmv_percent.
// @Tags         valuation
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true   "YYYY-MM-DD"
// @Param        end_date    query  string  true   "YYYY-MM-DD (inclusivo)"
// @Param        revenue     query  number  false  "receita do período"
// @Success      200  {object}  dto.ValuationReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/valuation [get]
func (h *ValuationHandler) Report(c *fiber.Ctx) error {
	start, end, revenue, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date e end_date no formato YYYY-MM-DD; revenue numérico"})
	}
	report, err := h.uc.Report(c.Context(), start, end, revenue)
	if err != nil {
		return domainError(c, err)
	}
	h.metrics.ValuationRequests.Inc()
	return c.JSON(report)
}

// DownloadPDF godoc
// @Summary      Relatório de CMV em PDF
// @Tags         valuation
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  true   "YYYY-MM-DD"
// @Param        end_date    query  string  true   "YYYY-MM-DD (inclusivo)"
// @Param        revenue     query  number  false  "receita do período"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/cmv/pdf [get]
func (h *ValuationHandler) DownloadPDF(c *fiber.Ctx) error {
	start, end, revenue, err := parsePeriod(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date e end_date no formato YYYY-MM-DD; revenue numérico"})
	}
	pdfBytes, filename, err := h.reportUC.Download(c.Context(), start, end, revenue)
	if err != nil {
		return domainError(c, err)
	}
	h.metrics.ValuationRequests.Inc()
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
