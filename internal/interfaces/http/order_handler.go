package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

// OrderHandler maneja las peticiones HTTP del servicio de órdenes.
type OrderHandler struct {
	create *order.CreateOrderUseCase
	list   *order.ListOrdersUseCase
	log    *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(create *order.CreateOrderUseCase, list *order.ListOrdersUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{create: create, list: list, log: log}
}

// Create godoc
// @Summary      Crear orden
// @Description  Valida usuario y producto, descuenta el stock y persiste la orden.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Usuario, producto y cantidad"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse  "Insufficient stock | User or product not found"
// @Failure      500   {object}  dto.ErrorResponse  "Order creation failed"
// @Router       /orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "Invalid request body")
	}
	out, err := h.create.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "user_id, product_id and quantity must be positive integers")
		case errors.Is(err, domain.ErrInsufficientStock):
			return errorJSON(c, fiber.StatusBadRequest, CodeInsufficientStock, "Insufficient stock")
		case domain.IsReferenceNotFound(err):
			return errorJSON(c, fiber.StatusBadRequest, CodeReferenceNotFound, "User or product not found")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("crear orden")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Order creation failed")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes (la más reciente primero)
// @Tags         orders
// @Produce      json
// @Success      200  {array}   dto.OrderResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.list.List(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar órdenes")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Failed to fetch orders")
	}
	return c.JSON(out)
}
