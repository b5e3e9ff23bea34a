package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore catálogo en memoria (DB_DRIVER=memory y tests).
type ProductStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   []entity.Product
}

// NewProductStore crea el catálogo con las filas dadas; los IDs se asignan en orden.
func NewProductStore(seed ...entity.Product) *ProductStore {
	s := &ProductStore{}
	for _, p := range seed {
		p := p
		_ = s.Create(context.Background(), &p)
	}
	return s
}

// Create asigna el id y redondea el precio a dos decimales.
func (s *ProductStore) Create(_ context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	product.ID = s.nextID
	product.Price = product.Price.Round(2)
	s.rows = append(s.rows, *product)
	return nil
}

// GetByID obtiene un producto por ID. domain.ErrNotFound si no existe.
func (s *ProductStore) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.rows {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve los productos ordenados por id.
func (s *ProductStore) List(_ context.Context) ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.Product, 0, len(s.rows))
	for _, p := range s.rows {
		p := p
		list = append(list, &p)
	}
	return list, nil
}
