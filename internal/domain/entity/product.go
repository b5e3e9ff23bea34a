package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Solo se agregan filas (no hay update ni delete).
type Product struct {
	ID    int64
	Name  string
	Price decimal.Decimal // NUMERIC(10,2)
}
