package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Append inserta la orden; id y created_at los asigna la base.
func (r *OrderRepo) Append(ctx context.Context, userID, productID, quantity int64) (*entity.Order, error) {
	query := `
		INSERT INTO orders (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, product_id, quantity, created_at`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, userID, productID, quantity).Scan(
		&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &o, nil
}

// List devuelve todas las órdenes, la más reciente primero (id desempata).
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, product_id, quantity, created_at
		FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
