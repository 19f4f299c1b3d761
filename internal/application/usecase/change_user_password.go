package usecase

import (
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// ChangeUserPassword cambia el password del propio actor.
type ChangeUserPassword struct {
	userRepo repository.UserRepository
}

// NewChangeUserPassword construye el caso de uso.
func NewChangeUserPassword(userRepo repository.UserRepository) *ChangeUserPassword {
	return &ChangeUserPassword{userRepo: userRepo}
}

// Execute aplica el cambio sobre el agregado (que rechaza repetir el password
// actual) y persiste.
func (uc *ChangeUserPassword) Execute(actor *entity.User, newPassword string) error {
	if err := actor.ChangePassword(newPassword); err != nil {
		return err
	}
	return uc.userRepo.Save(actor)
}
