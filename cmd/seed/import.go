package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/pkg/logger"
)

type productCreator interface {
	CreateProduct(ctx context.Context, name string, price decimal.Decimal) (*entity.Product, error)
}

type stockAdder interface {
	AddStock(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error)
}

// importRows crea cada producto y luego su stock. Se detiene en el primer error;
// las filas anteriores quedan importadas.
func importRows(ctx context.Context, rows []catalogRow, products productCreator, inventory stockAdder, log *logger.Logger) error {
	for _, r := range rows {
		p, err := products.CreateProduct(ctx, r.Name, r.Price)
		if err != nil {
			return fmt.Errorf("línea %d: crear producto %q: %w", r.Line, r.Name, err)
		}
		it, err := inventory.AddStock(ctx, p.ID, r.Quantity)
		if err != nil {
			return fmt.Errorf("línea %d: stock de producto %d: %w", r.Line, p.ID, err)
		}
		log.Info().Int64("product_id", p.ID).Str("name", p.Name).Int64("quantity", it.Quantity).Msg("producto importado")
	}
	return nil
}
