package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecomicro/pkg/logger"
	"github.com/jhoicas/ecomicro/pkg/requestid"
)

// LocalRequestID key de c.Locals con el identificador de correlación.
const LocalRequestID = "request_id"

const maxRequestIDLen = 128

// RequestIDMiddleware acepta X-Request-ID entrante o genera uno, lo devuelve en la respuesta
// y lo deja en c.Locals y en c.UserContext() para propagarlo a los servicios colaboradores.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestid.Header)
		if id == "" || len(id) > maxRequestIDLen {
			id = requestid.New()
		}
		c.Set(requestid.Header, id)
		c.Locals(LocalRequestID, id)
		c.SetUserContext(requestid.NewContext(c.UserContext(), id))
		return c.Next()
	}
}

// GetRequestID devuelve el identificador de la petición (después de RequestIDMiddleware).
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// AccessLogMiddleware registra una línea por petición: método, ruta, status, latencia y request_id.
func AccessLogMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", GetRequestID(c)).
			Msg("petición HTTP")
		return nil
	}
}
