// product-service catálogo de productos: GET/POST /products, GET /products/:id.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/ecomicro/internal/application/usecase"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
	"github.com/jhoicas/ecomicro/internal/infrastructure/memory"
	"github.com/jhoicas/ecomicro/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ecomicro/internal/interfaces/http"
	"github.com/jhoicas/ecomicro/pkg/config"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

func main() {
	cfg, err := config.Load(config.ServiceDefaults{Name: "product-service", Port: 8081, DBName: "productdb"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando servicio")

	ctx := context.Background()
	var repo repository.ProductRepository
	if cfg.DB.Driver == config.DriverMemory {
		var seed []entity.Product
		if cfg.DB.Seed {
			seed = memory.SampleProducts
		}
		repo = memory.NewProductStore(seed...)
	} else {
		pool, seeded, err := postgres.Open(ctx, cfg.DB, postgres.ProductsSchema)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		log.Info().Bool("seeded", seeded).Msg("tabla products lista")
		repo = postgres.NewProductRepository(pool)
	}

	app := httpRouter.NewApp(cfg, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC: usecase.NewProductUseCase(repo),
		Log:       log,
	})

	if err := httpRouter.Serve(app, cfg.HTTP.Addr(), log); err != nil {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("servicio detenido")
}
