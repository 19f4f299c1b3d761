package repository

import "github.com/lotolabs-arg/StoreFlow/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La unicidad de username la garantiza la implementación, no la entidad.
type UserRepository interface {
	Save(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
}
