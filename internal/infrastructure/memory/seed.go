package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
)

// Filas de ejemplo equivalentes a las que siembra PostgreSQL en una base vacía.
var (
	SampleProducts = []entity.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("1500.00")},
		{Name: "Phone", Price: decimal.RequireFromString("700.00")},
	}
	SampleUsers = []entity.User{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	}
	SampleInventory = map[int64]int64{1: 10, 2: 20}
)
