package repository

import (
	"context"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y completa su ID. Email repetido: domain.ErrDuplicate.
	Create(ctx context.Context, user *entity.User) error
	// GetByID devuelve domain.ErrNotFound si no existe.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por ID.
	List(ctx context.Context) ([]*entity.User, error)
}
