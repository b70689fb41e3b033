package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/dto"
	"github.com/ludsonalmeida/vrtd-inventory-sub000/internal/application/usecase"
)

// PublicHandler maneja as rotas públicas: cardápio e criação de reservas.
type PublicHandler struct {
	menuUC        *usecase.MenuUseCase
	reservationUC *usecase.ReservationUseCase
}

// NewPublicHandler constrói o handler.
func NewPublicHandler(menuUC *usecase.MenuUseCase, reservationUC *usecase.ReservationUseCase) *PublicHandler {
	return &PublicHandler{menuUC: menuUC, reservationUC: reservationUC}
}

// Menu godoc
// @Summary      Cardápio público
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.MenuResponse
// @Router       /api/menu [get]
func (h *PublicHandler) Menu(c *fiber.Ctx) error {
	menu, err := h.menuUC.Menu()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(menu)
}

// CreateReservation godoc
// @Summary      Criar reserva de mesa (público)
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "reserva"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *PublicHandler) CreateReservation(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	reservation, err := h.reservationUC.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reservation)
}

// ReservationHandler maneja a gestão interna de reservas (protegido).
type ReservationHandler struct {
	uc *usecase.ReservationUseCase
}

// NewReservationHandler constrói o handler.
func NewReservationHandler(uc *usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// List lista reservas com filtros opcionais (from, to, status).
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	page.DefaultPage()

	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: use o formato YYYY-MM-DD"})
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: use o formato YYYY-MM-DD"})
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}

	list, err := h.uc.List(from, to, c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "reservations": list})
}

// GetByID obtém uma reserva.
func (h *ReservationHandler) GetByID(c *fiber.Ctx) error {
	reservation, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(reservation)
}

// UpdateStatus confirma ou cancela uma reserva.
func (h *ReservationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateReservationStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	reservation, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(reservation)
}
