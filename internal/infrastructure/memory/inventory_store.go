package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryStore)(nil)

// InventoryStore stock por producto en memoria. Reserve es atómico bajo el mutex.
type InventoryStore struct {
	mu   sync.Mutex
	rows map[int64]int64
}

// NewInventoryStore crea el almacén con las cantidades iniciales por product_id.
func NewInventoryStore(seed map[int64]int64) *InventoryStore {
	rows := make(map[int64]int64, len(seed))
	for id, q := range seed {
		rows[id] = q
	}
	return &InventoryStore{rows: rows}
}

// Get devuelve el stock del producto o domain.ErrNotFound.
func (s *InventoryStore) Get(_ context.Context, productID int64) (*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.rows[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.InventoryItem{ProductID: productID, Quantity: q}, nil
}

// List devuelve todas las filas ordenadas por product_id.
func (s *InventoryStore) List(_ context.Context) ([]*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*entity.InventoryItem, 0, len(s.rows))
	for id, q := range s.rows {
		list = append(list, &entity.InventoryItem{ProductID: id, Quantity: q})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductID < list[j].ProductID })
	return list, nil
}

// Set fija la cantidad. No crea filas: domain.ErrNotFound si el producto no existe.
func (s *InventoryStore) Set(_ context.Context, productID, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[productID]; !ok {
		return domain.ErrNotFound
	}
	s.rows[productID] = quantity
	return nil
}

// Add crea la fila o suma quantity a la existente.
// Si la suma desborda int64 devuelve domain.ErrInvalidInput sin modificar la fila.
func (s *InventoryStore) Add(_ context.Context, productID, quantity int64) (*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity < 0 || quantity > math.MaxInt64-s.rows[productID] {
		return nil, domain.ErrInvalidInput
	}
	s.rows[productID] += quantity
	return &entity.InventoryItem{ProductID: productID, Quantity: s.rows[productID]}, nil
}

// Reserve descuenta quantity solo si alcanza el stock.
// Errores: domain.ErrNotFound, domain.ErrInsufficientStock.
func (s *InventoryStore) Reserve(_ context.Context, productID, quantity int64) (*entity.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.rows[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if q < quantity {
		return nil, domain.ErrInsufficientStock
	}
	s.rows[productID] = q - quantity
	return &entity.InventoryItem{ProductID: productID, Quantity: q - quantity}, nil
}
