package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecomicro/internal/application/dto"
)

// Códigos de error devueltos en dto.ErrorResponse.Code.
const (
	CodeValidation        = "VALIDATION"
	CodeInvalidBody       = "INVALID_BODY"
	CodeInvalidID         = "INVALID_ID"
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicate         = "DUPLICATE"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeReferenceNotFound = "REFERENCE_NOT_FOUND"
	CodeInternal          = "INTERNAL"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message, Code: code})
}

// ErrorHandler maneja los errores que no resolvió un handler (ruta inexistente, panic recuperado, etc.).
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"
	code := CodeInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
		switch status {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest:
			code = CodeValidation
		}
	}
	return errorJSON(c, status, code, message)
}

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
