package entity

import "time"

// Order orden de compra. Inmutable una vez creada; ID y CreatedAt los asigna el almacenamiento.
// UserID y ProductID no se validan en la capa de persistencia.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64
	CreatedAt time.Time
}
