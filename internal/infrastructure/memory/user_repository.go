package memory

import (
	"sync"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo almacén de usuarios en memoria. Garantiza unicidad de username,
// igual que el índice único del adaptador PostgreSQL.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]*entity.User // id -> agregado
}

// NewUserRepository construye el almacén vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]*entity.User)}
}

// Save es upsert por identidad; rechaza un username ya tomado por otro id.
func (r *UserRepo) Save(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.users {
		if id != user.ID() && u.Username() == user.Username() {
			return domain.NewConflict("Username already exists.")
		}
	}
	r.users[user.ID()] = user
	return nil
}

// FindByID devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[id], nil
}

// FindByUsername devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}
