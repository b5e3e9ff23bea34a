package repository

import (
	"context"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order. Solo inserciones.
type OrderRepository interface {
	// Append inserta la orden; el almacenamiento asigna ID y CreatedAt.
	Append(ctx context.Context, userID, productID, quantity int64) (*entity.Order, error)
	// List devuelve todas las órdenes, la más reciente primero.
	List(ctx context.Context) ([]*entity.Order, error)
}
