package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Entidades referenciadas por una orden.
const (
	EntityUser      = "user"
	EntityProduct   = "product"
	EntityInventory = "inventory"
)

// ReferenceNotFoundError una orden referencia un usuario, producto o registro de inventario inexistente.
// errors.Is(err, ErrNotFound) es verdadero.
type ReferenceNotFoundError struct {
	Entity string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("referencia no encontrada: %s", e.Entity)
}

// Is permite comparar contra ErrNotFound.
func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewReferenceNotFound construye el error para la entidad indicada.
func NewReferenceNotFound(entity string) error {
	return &ReferenceNotFoundError{Entity: entity}
}

// IsReferenceNotFound indica si err (o alguno de los que envuelve) es un ReferenceNotFoundError.
func IsReferenceNotFound(err error) bool {
	var ref *ReferenceNotFoundError
	return errors.As(err, &ref)
}
