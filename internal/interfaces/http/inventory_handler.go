package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/application/usecase"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP del servicio de inventario.
type InventoryHandler struct {
	uc  *usecase.InventoryUseCase
	log *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.internal(c, err, "listar inventario", "Failed to fetch inventory")
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Stock de un producto
// @Tags         inventory
// @Produce      json
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventory/{product_id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidID, "product_id must be a positive integer")
	}
	out, err := h.uc.Get(c.UserContext(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "Inventory item not found")
		}
		return h.internal(c, err, "obtener inventario", "Failed to fetch inventory")
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar cantidad (escritura absoluta)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        product_id  path  int                     true  "ID del producto"
// @Param        body        body  dto.SetQuantityRequest  true  "Cantidad"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventory/{product_id} [put]
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidID, "product_id must be a positive integer")
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "Invalid request body")
	}
	if in.Quantity == nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Quantity is required")
	}
	if err := h.uc.SetQuantity(c.UserContext(), productID, *in.Quantity); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Quantity must not be negative")
		case errors.Is(err, domain.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "Inventory item not found")
		}
		return h.internal(c, err, "fijar inventario", "Failed to update inventory")
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// AddStock godoc
// @Summary      Agregar stock (crea la fila o suma)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /inventory [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "Invalid request body")
	}
	if in.ProductID == nil || in.Quantity == nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Product ID and quantity are required")
	}
	out, err := h.uc.AddStock(c.UserContext(), *in.ProductID, *in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "product_id must be positive and quantity must not be negative")
		}
		return h.internal(c, err, "agregar inventario", "Failed to add inventory")
	}
	return c.JSON(out)
}

// Reserve godoc
// @Summary      Reservar stock (descuento atómico condicionado)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        product_id  path  int                 true  "ID del producto"
// @Param        body        body  dto.ReserveRequest  true  "Cantidad a reservar"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /inventory/{product_id}/reserve [post]
func (h *InventoryHandler) Reserve(c *fiber.Ctx) error {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidID, "product_id must be a positive integer")
	}
	var in dto.ReserveRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "Invalid request body")
	}
	out, err := h.uc.Reserve(c.UserContext(), productID, in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Quantity must be a positive integer")
		case errors.Is(err, domain.ErrNotFound):
			return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "Inventory item not found")
		case errors.Is(err, domain.ErrInsufficientStock):
			return errorJSON(c, fiber.StatusConflict, CodeInsufficientStock, "Insufficient stock")
		}
		return h.internal(c, err, "reservar inventario", "Failed to reserve inventory")
	}
	return c.JSON(out)
}

func (h *InventoryHandler) internal(c *fiber.Ctx, err error, op, message string) error {
	h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg(op)
	return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, message)
}
