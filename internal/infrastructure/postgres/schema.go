package postgres

import (
	"context"
	"fmt"
)

// Schema DDL de la tabla propia de un servicio y las filas de ejemplo para una base vacía.
type Schema struct {
	Table string
	DDL   string
	Seed  string
}

// Esquemas de cada servicio (cada uno tiene su propia base de datos).
var (
	ProductsSchema = Schema{
		Table: "products",
		DDL: `
			CREATE TABLE IF NOT EXISTS products (
				id    BIGSERIAL PRIMARY KEY,
				name  VARCHAR(100) NOT NULL,
				price NUMERIC(10,2) NOT NULL
			)`,
		Seed: `INSERT INTO products (name, price) VALUES ('Laptop', 1500.00), ('Phone', 700.00)`,
	}
	UsersSchema = Schema{
		Table: "users",
		DDL: `
			CREATE TABLE IF NOT EXISTS users (
				id    BIGSERIAL PRIMARY KEY,
				name  VARCHAR(100) NOT NULL,
				email VARCHAR(100) NOT NULL UNIQUE
			)`,
		Seed: `INSERT INTO users (name, email) VALUES ('Alice', 'alice@example.com'), ('Bob', 'bob@example.com')`,
	}
	InventorySchema = Schema{
		Table: "inventory",
		DDL: `
			CREATE TABLE IF NOT EXISTS inventory (
				product_id BIGINT PRIMARY KEY,
				quantity   BIGINT NOT NULL CHECK (quantity >= 0)
			)`,
		Seed: `INSERT INTO inventory (product_id, quantity) VALUES (1, 10), (2, 20)`,
	}
	OrdersSchema = Schema{
		Table: "orders",
		DDL: `
			CREATE TABLE IF NOT EXISTS orders (
				id         BIGSERIAL PRIMARY KEY,
				user_id    BIGINT NOT NULL,
				product_id BIGINT NOT NULL,
				quantity   BIGINT NOT NULL CHECK (quantity > 0),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`,
	}
)

// Bootstrap crea la tabla si no existe y, si seed es true y la tabla está vacía, inserta las filas de ejemplo.
// Devuelve true si se insertaron filas.
func Bootstrap(ctx context.Context, runner *TxRunner, s Schema, seed bool) (bool, error) {
	seeded := false
	err := runner.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, s.DDL); err != nil {
			return fmt.Errorf("crear tabla %s: %w", s.Table, err)
		}
		if !seed || s.Seed == "" {
			return nil
		}
		var count int64
		if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM "+s.Table).Scan(&count); err != nil {
			return fmt.Errorf("contar %s: %w", s.Table, err)
		}
		if count > 0 {
			return nil
		}
		if _, err := q.Exec(ctx, s.Seed); err != nil {
			return fmt.Errorf("datos de ejemplo %s: %w", s.Table, err)
		}
		seeded = true
		return nil
	})
	return seeded, err
}
