package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/application/usecase"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP del catálogo.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "Invalid request body")
	}
	if in.Name == "" || in.Price == nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Name and price are required")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Name is required and price must not be negative")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("crear producto")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Failed to create product")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidID, "id must be a positive integer")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "Product not found")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("obtener producto")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Failed to fetch product")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar productos")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Failed to fetch products")
	}
	return c.JSON(out)
}
