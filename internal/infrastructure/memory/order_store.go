package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderStore)(nil)

// OrderStore órdenes en memoria, solo inserciones.
type OrderStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   []entity.Order
	now    func() time.Time
}

// NewOrderStore crea un almacén vacío.
func NewOrderStore() *OrderStore {
	return &OrderStore{now: time.Now}
}

// Append asigna el siguiente id y created_at y guarda la orden.
func (s *OrderStore) Append(_ context.Context, userID, productID, quantity int64) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	o := entity.Order{
		ID:        s.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: s.now().UTC(),
	}
	s.rows = append(s.rows, o)
	return &o, nil
}

// List devuelve las órdenes en orden inverso de inserción (created_at DESC, id DESC).
func (s *OrderStore) List(_ context.Context) ([]*entity.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Order, 0, len(s.rows))
	for i := len(s.rows) - 1; i >= 0; i-- {
		o := s.rows[i]
		list = append(list, &o)
	}
	return list, nil
}
