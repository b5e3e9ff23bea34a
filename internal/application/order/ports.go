package order

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// UserLookup consulta de usuarios. Devuelve domain.ErrNotFound si el usuario no existe.
type UserLookup interface {
	GetUser(ctx context.Context, id int64) (*entity.User, error)
}

// ProductLookup consulta de productos. Devuelve domain.ErrNotFound si el producto no existe.
type ProductLookup interface {
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}

// InventoryGateway acceso al dueño del stock.
//
//   - GetStock y SetQuantity: lectura y escritura absoluta (check-then-set).
//   - Reserve: descuento atómico condicionado (reserve-first).
//
// Not found: domain.ErrNotFound. Reserve sin stock suficiente: domain.ErrInsufficientStock.
type InventoryGateway interface {
	GetStock(ctx context.Context, productID int64) (*entity.InventoryItem, error)
	SetQuantity(ctx context.Context, productID, quantity int64) error
	Reserve(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error)
}

// Strategy forma de descontar el stock al crear una orden.
type Strategy string

const (
	// StrategyReserveFirst reserva de forma atómica en inventario y solo entonces guarda la orden.
	StrategyReserveFirst Strategy = "reserve-first"
	// StrategyCheckThenSet lee el stock, guarda la orden y escribe stock leído - cantidad.
	// Dos órdenes concurrentes pueden leer el mismo valor y vender de más.
	StrategyCheckThenSet Strategy = "check-then-set"
)

// ParseStrategy valida el valor de ORDER_STOCK_STRATEGY.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyReserveFirst, StrategyCheckThenSet:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("estrategia de stock desconocida: %q", s)
	}
}
