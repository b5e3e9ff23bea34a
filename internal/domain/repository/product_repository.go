package repository

import (
	"context"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y completa su ID.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve domain.ErrNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve todos los productos ordenados por ID.
	List(ctx context.Context) ([]*entity.Product, error)
}
