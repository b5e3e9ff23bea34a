package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/ecomicro/docs"
	"github.com/jhoicas/ecomicro/internal/application/dto"
	"github.com/jhoicas/ecomicro/pkg/config"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// NewApp construye la aplicación Fiber común a los cuatro servicios:
// recover, request id, log de acceso, CORS para el frontend de administración,
// GET /health y, si está habilitada, la documentación Swagger en /docs.
func NewApp(cfg *config.Config, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           time.Second * 60,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(RequestIDMiddleware())
	app.Use(AccessLogMiddleware(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	if cfg.Swagger.Enabled {
		docs.SwaggerInfo.Title = cfg.App.Name
		app.Get("/openapi.json", func(c *fiber.Ctx) error {
			doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
			if err != nil {
				return fiber.NewError(fiber.StatusNotFound, "documentation not registered")
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(doc)
		})
		// El middleware de Swagger entra en pánico si el archivo no existe.
		if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Swagger.FilePath,
				Path:     "docs",
				Title:    cfg.App.Name,
			}))
		} else {
			log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})
	return app
}

// Serve escucha en addr hasta recibir SIGINT/SIGTERM y apaga el servidor ordenadamente.
func Serve(app *fiber.App, addr string, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
		errCh <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
		return err
	}
	return nil
}
