package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/inventory"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/usecase"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/pkg/metrics"
)

// StockHandler maneja os itens de estoque e a contagem diária (protegido).
type StockHandler struct {
	itemUC  *usecase.StockItemUseCase
	countUC *inventory.DailyCountUseCase
	metrics *metrics.Metrics
}

// NewStockHandler constrói o handler.
func NewStockHandler(itemUC *usecase.StockItemUseCase, countUC *inventory.DailyCountUseCase, m *metrics.Metrics) *StockHandler {
	return &StockHandler{itemUC: itemUC, countUC: countUC, metrics: m}
}

// DailyCount godoc
// @Summary      Submeter contagem física diária
// @Description  Concilia as quantidades contadas com o estoque corrente:
//               cada delta não nulo gera um lançamento no ledger e a
//               quantidade é sobrescrita. Sucesso parcial: falhas são
//               reportadas item a item.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []dto.DailyCountItem  true  "itens contados"
// @Success      200   {object}  dto.DailyCountResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/daily-count [post]
func (h *StockHandler) DailyCount(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var items []dto.DailyCountItem
	if err := c.BodyParser(&items); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "esperado um array de itens contados"})
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BATCH", Message: "a contagem não tem itens"})
	}

	result, err := h.countUC.Run(c.Context(), userID, items)
	if err != nil {
		return domainError(c, err)
	}

	h.metrics.CountBatches.Inc()
	for _, r := range result.Items {
		h.metrics.CountItemsProcessed.WithLabelValues(r.Result).Inc()
	}

	return c.JSON(result)
}

// Create godoc
// @Summary      Criar item de estoque
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "item"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.itemUC.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List godoc
// @Summary      Listar itens de estoque
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. itens (default 20)"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {object}  dto.StockItemListResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()
	list, err := h.itemUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obter item de estoque
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do item"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.itemUC.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(item)
}

// Update godoc
// @Summary      Atualizar item de estoque
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do item"
// @Param        body  body  dto.UpdateStockItemRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	item, err := h.itemUC.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(item)
}

// Delete godoc
// @Summary      Remover item de estoque
// @Tags         stock
// @Security     Bearer
// @Param        id  path  string  true  "ID do item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.itemUC.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
