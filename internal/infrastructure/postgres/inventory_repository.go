package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el stock actual de un producto.
func (r *InventoryRepo) Get(ctx context.Context, productID int64) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx,
		`SELECT product_id, quantity FROM inventory WHERE product_id = $1`, productID,
	).Scan(&it.ProductID, &it.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &it, nil
}

// List lista el inventario completo por product_id.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	rows, err := r.q.Query(ctx, `SELECT product_id, quantity FROM inventory ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.InventoryItem, 0)
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Set fija la cantidad sin leerla antes (gana el último que escribe).
func (r *InventoryRepo) Set(ctx context.Context, productID, quantity int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE inventory SET quantity = $2 WHERE product_id = $1`, productID, quantity)
	if err != nil {
		return fmt.Errorf("set inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Add inserta la fila o suma la cantidad a la existente. Desborde de BIGINT: domain.ErrInvalidInput.
func (r *InventoryRepo) Add(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error) {
	query := `
		INSERT INTO inventory (product_id, quantity)
		VALUES ($1, $2)
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = inventory.quantity + EXCLUDED.quantity
		RETURNING product_id, quantity`
	var it entity.InventoryItem
	if err := r.q.QueryRow(ctx, query, productID, quantity).Scan(&it.ProductID, &it.Quantity); err != nil {
		if isOutOfRange(err) {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("add inventory: %w", err)
	}
	return &it, nil
}

// Reserve descuenta quantity solo si hay stock suficiente, en una única sentencia.
// Si no se afecta ninguna fila se distingue entre producto inexistente y stock insuficiente;
// las filas de inventario nunca se eliminan, así que esa segunda lectura no cambia el resultado.
func (r *InventoryRepo) Reserve(ctx context.Context, productID, quantity int64) (*entity.InventoryItem, error) {
	query := `
		UPDATE inventory
		SET quantity = quantity - $2
		WHERE product_id = $1 AND quantity >= $2
		RETURNING product_id, quantity`
	var it entity.InventoryItem
	err := r.q.QueryRow(ctx, query, productID, quantity).Scan(&it.ProductID, &it.Quantity)
	if err == nil {
		return &it, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reserve inventory: %w", err)
	}
	if _, err := r.Get(ctx, productID); err != nil {
		return nil, err
	}
	return nil, domain.ErrInsufficientStock
}
