// user-service registro de usuarios: GET/POST /users, GET /users/:id.
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
	cfg, err := config.Load(config.ServiceDefaults{Name: "user-service", Port: 8083, DBName: "userdb"})
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
	var repo repository.UserRepository
	if cfg.DB.Driver == config.DriverMemory {
		var seed []entity.User
		if cfg.DB.Seed {
			seed = memory.SampleUsers
		}
		repo = memory.NewUserStore(seed...)
	} else {
		pool, seeded, err := postgres.Open(ctx, cfg.DB, postgres.UsersSchema)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		log.Info().Bool("seeded", seeded).Msg("tabla users lista")
		repo = postgres.NewUserRepository(pool)
	}

	app := httpRouter.NewApp(cfg, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC: usecase.NewUserUseCase(repo),
		Log:    log,
	})

	if err := httpRouter.Serve(app, cfg.HTTP.Addr(), log); err != nil {
		log.Error().Err(err).Msg("servidor HTTP finalizado")
	}
	log.Info().Msg("servicio detenido")
}
