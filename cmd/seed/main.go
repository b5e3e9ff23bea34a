// seed carga un catálogo CSV (name,price,quantity) en los servicios de productos e inventario.
//
// Uso: go run ./cmd/seed -file catalog.csv [-charset utf-8|latin1] [-dry-run]
// Las URLs salen de PRODUCT_SERVICE_URL e INVENTORY_SERVICE_URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/ecomicro/internal/infrastructure/remote"
	"github.com/jhoicas/ecomicro/pkg/config"
	"github.com/jhoicas/ecomicro/pkg/logger"
	"github.com/jhoicas/ecomicro/pkg/requestid"
)

func main() {
	file := flag.String("file", "catalog.csv", "ruta del CSV name,price,quantity")
	charset := flag.String("charset", "utf-8", "codificación del archivo: utf-8 o latin1")
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo, no llama a los servicios")
	flag.Parse()

	cfg, err := config.Load(config.ServiceDefaults{Name: "seed"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name})

	if err := run(cfg, log, *file, *charset, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
}

// run lee el catálogo y lo importa. Los recursos abiertos se liberan antes de volver a main.
func run(cfg *config.Config, log *logger.Logger, file, charset string, dryRun bool) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()

	rows, err := readCatalog(f, charset)
	if err != nil {
		return fmt.Errorf("catálogo inválido: %w", err)
	}
	log.Info().Int("filas", len(rows)).Bool("dry_run", dryRun).Msg("catálogo leído")
	if dryRun {
		for _, r := range rows {
			fmt.Printf("%d\t%s\t%s\t%d\n", r.Line, r.Name, r.Price.StringFixed(2), r.Quantity)
		}
		return nil
	}

	hc := remote.NewHTTPClient(cfg.Services.Timeout)
	defer hc.CloseIdleConnections()
	products := remote.NewProductClient(hc, cfg.Services.ProductURL)
	inventory := remote.NewInventoryClient(hc, cfg.Services.InventoryURL)

	ctx := requestid.NewContext(context.Background(), requestid.New())
	if err := importRows(ctx, rows, products, inventory, log); err != nil {
		return fmt.Errorf("importación interrumpida: %w", err)
	}
	log.Info().Int("productos", len(rows)).Msg("catálogo importado")
	return nil
}
