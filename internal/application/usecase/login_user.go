package usecase

import (
	"github.com/lotolabs-arg/StoreFlow/internal/application/session"
	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
)

// LoginUser autentica a un usuario y lo registra en la sesión.
type LoginUser struct {
	userRepo repository.UserRepository
	session  *session.Context
}

// NewLoginUser construye el caso de uso.
func NewLoginUser(userRepo repository.UserRepository, sess *session.Context) *LoginUser {
	return &LoginUser{userRepo: userRepo, session: sess}
}

// Execute busca el usuario por username y valida el password. Username
// inexistente y password incorrecto fallan con el MISMO mensaje: la respuesta
// no debe revelar si el username existe. La sesión solo se toca en éxito.
func (uc *LoginUser) Execute(username, password string) (*entity.User, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewUnauthorized("Invalid credentials.")
	}

	ok, err := user.Authenticate(password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NewUnauthorized("Invalid credentials.")
	}

	uc.session.SetCurrentUser(user)
	return user, nil
}
