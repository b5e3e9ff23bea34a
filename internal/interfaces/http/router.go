package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/application/usecase"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

// RouterDeps dependencias para el router. Cada servicio llena solo las suyas;
// un grupo de rutas se registra únicamente si sus casos de uso están presentes.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	UserUC      *usecase.UserUseCase
	InventoryUC *usecase.InventoryUseCase
	CreateOrder *order.CreateOrderUseCase
	ListOrders  *order.ListOrdersUseCase
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	if deps.ProductUC != nil {
		products := app.Group("/products")
		productHandler := NewProductHandler(deps.ProductUC, log)
		products.Get("/", productHandler.List)
		products.Post("/", productHandler.Create)
		products.Get("/:id", productHandler.GetByID)
	}

	if deps.UserUC != nil {
		users := app.Group("/users")
		userHandler := NewUserHandler(deps.UserUC, log)
		users.Get("/", userHandler.List)
		users.Post("/", userHandler.Create)
		users.Get("/:id", userHandler.GetByID)
	}

	if deps.InventoryUC != nil {
		inventory := app.Group("/inventory")
		inventoryHandler := NewInventoryHandler(deps.InventoryUC, log)
		inventory.Get("/", inventoryHandler.List)
		inventory.Post("/", inventoryHandler.AddStock)
		inventory.Get("/:product_id", inventoryHandler.Get)
		inventory.Put("/:product_id", inventoryHandler.SetQuantity)
		inventory.Post("/:product_id/reserve", inventoryHandler.Reserve)
	}

	if deps.CreateOrder != nil && deps.ListOrders != nil {
		orders := app.Group("/orders")
		orderHandler := NewOrderHandler(deps.CreateOrder, deps.ListOrders, log)
		orders.Get("/", orderHandler.List)
		orders.Post("/", orderHandler.Create)
	}
}
