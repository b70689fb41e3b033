package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/metrics"
)

// MovementHandler maneja o ledger de movimentos (protegido).
type MovementHandler struct {
	uc      *inventory.MovementUseCase
	metrics *metrics.Metrics
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *inventory.MovementUseCase, m *metrics.Metrics) *MovementHandler {
	return &MovementHandler{uc: uc, metrics: m}
}

// Register godoc
// @Summary      Registrar movimento manual (entrada/saida)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, quantity, type, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.uc.Register(c.Context(), userID, in)
	if err != nil {
		return domainError(c, err)
	}
	h.metrics.MovementsCreated.WithLabelValues(mov.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// List godoc
// @Summary      Histórico do ledger de movimentos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "filtrar por produto"
// @Param        start_date  query  string  false  "data inicial (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "data final (YYYY-MM-DD, inclusiva)"
// @Param        limit       query  int     false  "máx. itens (default 20)"
// @Param        offset      query  int     false  "deslocamento"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	var from, to *time.Time
	if s := c.Query("start_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date: use o formato YYYY-MM-DD"})
		}
		from = &t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date: use o formato YYYY-MM-DD"})
		}
		// Fim inclusivo: estende ao último instante do dia.
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}

	list, err := h.uc.History(c.Context(), c.Query("product_id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": list})
}
