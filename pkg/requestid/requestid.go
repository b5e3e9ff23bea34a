// Package requestid genera y propaga el identificador de correlación entre servicios.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header cabecera HTTP usada para propagar el identificador.
const Header = "X-Request-ID"

type ctxKey struct{}

// New genera un identificador nuevo (UUID v4).
func New() string {
	return uuid.New().String()
}

// NewContext devuelve una copia de ctx que transporta id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext devuelve el identificador de ctx o "" si no hay.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
