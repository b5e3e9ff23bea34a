// order-service creación y listado de órdenes: GET/POST /orders.
// Consulta user-service, product-service e inventory-service por HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/ecomicro/internal/application/order"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
	"github.com/jhoicas/ecomicro/internal/infrastructure/cache"
	"github.com/jhoicas/ecomicro/internal/infrastructure/memory"
	"github.com/jhoicas/ecomicro/internal/infrastructure/postgres"
	"github.com/jhoicas/ecomicro/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/ecomicro/internal/interfaces/http"
	"github.com/jhoicas/ecomicro/pkg/config"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

func main() {
	cfg, err := config.Load(config.ServiceDefaults{Name: "order-service", Port: 8084, DBName: "orderdb"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})
	strategy, err := order.ParseStrategy(cfg.Order.StockStrategy)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de órdenes")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Str("strategy", string(strategy)).
		Str("user_service", cfg.Services.UserURL).
		Str("product_service", cfg.Services.ProductURL).
		Str("inventory_service", cfg.Services.InventoryURL).
		Msg("iniciando servicio")

	ctx := context.Background()
	var orders repository.OrderRepository
	if cfg.DB.Driver == config.DriverMemory {
		orders = memory.NewOrderStore()
	} else {
		pool, _, err := postgres.Open(ctx, cfg.DB, postgres.OrdersSchema)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		orders = postgres.NewOrderRepository(pool)
	}

	hc := remote.NewHTTPClient(cfg.Services.Timeout)
	var users order.UserLookup = remote.NewUserClient(hc, cfg.Services.UserURL)
	var products order.ProductLookup = remote.NewProductClient(hc, cfg.Services.ProductURL)
	inventory := remote.NewInventoryClient(hc, cfg.Services.InventoryURL)

	if cfg.Cache.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Cache.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		users = cache.NewUserLookup(users, rdb, cfg.Cache.TTL, log)
		products = cache.NewProductLookup(products, rdb, cfg.Cache.TTL, log)
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("caché de consultas habilitada")
	}

	app := httpRouter.NewApp(cfg, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateOrder: order.NewCreateOrderUseCase(users, products, inventory, orders, strategy, log),
		ListOrders:  order.NewListOrdersUseCase(orders),
		Log:         log,
	})

	if err := httpRouter.Serve(app, cfg.HTTP.Addr(), log); err != nil {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("servicio detenido")
}
