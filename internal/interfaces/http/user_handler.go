package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/internal/application/usecase"
	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

// UserHandler maneja las peticiones HTTP de usuarios.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Nombre y email"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "Invalid request body")
	}
	if in.Name == "" || in.Email == "" {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Name and email are required")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "Name and email are required")
		case errors.Is(err, domain.ErrDuplicate):
			return errorJSON(c, fiber.StatusConflict, CodeDuplicate, "Email already exists")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("crear usuario")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Failed to create user")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidID, "id must be a positive integer")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errorJSON(c, fiber.StatusNotFound, CodeNotFound, "User not found")
		}
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("obtener usuario")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Failed to fetch user")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("listar usuarios")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Failed to fetch users")
	}
	return c.JSON(out)
}
