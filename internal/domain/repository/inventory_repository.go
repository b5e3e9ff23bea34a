package repository

import (
	"context"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia del stock por producto.
type InventoryRepository interface {
	// Get devuelve domain.ErrNotFound si el producto no tiene fila de inventario.
	Get(ctx context.Context, productID int64) (*entity.InventoryItem, error)
	// List devuelve todas las filas ordenadas por product_id.
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	// Set fija la cantidad (escritura absoluta, gana el último). domain.ErrNotFound si no hay fila.
	Set(ctx context.Context, productID, quantity int64) error
	// Add crea la fila o suma quantity a la existente y devuelve el resultado.
	Add(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error)
	// Reserve descuenta quantity en una sola operación atómica solo si hay stock suficiente.
	// Errores: domain.ErrNotFound, domain.ErrInsufficientStock. Nunca deja la cantidad bajo cero.
	Reserve(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error)
}
