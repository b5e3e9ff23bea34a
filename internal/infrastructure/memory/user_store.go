package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/ecomicro/internal/domain"
	"github.com/jhoicas/ecomicro/internal/domain/entity"
	"github.com/jhoicas/ecomicro/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore usuarios en memoria con email único.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   []entity.User
}

// NewUserStore crea el almacén con las filas dadas.
func NewUserStore(seed ...entity.User) *UserStore {
	s := &UserStore{}
	for _, u := range seed {
		u := u
		_ = s.Create(context.Background(), &u)
	}
	return s
}

// Create asigna el id. Email repetido: domain.ErrDuplicate.
func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.rows {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.rows = append(s.rows, *user)
	return nil
}

// GetByID obtiene un usuario por ID. domain.ErrNotFound si no existe.
func (s *UserStore) GetByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.rows {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve los usuarios ordenados por id.
func (s *UserStore) List(_ context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*entity.User, 0, len(s.rows))
	for _, u := range s.rows {
		u := u
		list = append(list, &u)
	}
	return list, nil
}
