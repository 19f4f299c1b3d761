package entity

import (
	"time"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/guard"
)

// UserRole es el rol del usuario dentro del sistema. Conjunto cerrado.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleSeller UserRole = "SELLER"
)

// IsValid reporta si el rol pertenece al conjunto cerrado.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleSeller
}

// ParseUserRole convierte un string en UserRole validando pertenencia.
func ParseUserRole(s string) (UserRole, error) {
	r := UserRole(s)
	if !r.IsValid() {
		return "", domain.NewValidation("User Role '" + s + "' is not valid.")
	}
	return r, nil
}

// User representa un usuario del sistema (administrador o vendedor).
// El password se guarda tal como llega: el hashing pertenece al borde de
// persistencia, no a este núcleo (la autenticación compara igualdad exacta).
type User struct {
	base

	username string
	password string
	role     UserRole
}

// NewUser construye un usuario validando username, password y rol.
func NewUser(username, password string, role UserRole) (*User, error) {
	if err := guard.NotEmpty(username, "Username"); err != nil {
		return nil, err
	}
	if err := guard.NotEmpty(password, "Password"); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, domain.NewValidation("User Role cannot be null.")
	}

	return &User{
		base:     newBase(),
		username: username,
		password: password,
		role:     role,
	}, nil
}

// RehydrateUser reconstruye el agregado desde persistencia.
func RehydrateUser(id string, createdAt time.Time, username, password string, role UserRole) *User {
	return &User{
		base:     rehydratedBase(id, createdAt),
		username: username,
		password: password,
		role:     role,
	}
}

// Authenticate compara el password candidato contra el almacenado.
// Sin efectos secundarios: devuelve el resultado y nada más.
func (u *User) Authenticate(candidatePassword string) (bool, error) {
	if err := guard.NotEmpty(candidatePassword, "Candidate password"); err != nil {
		return false, err
	}
	return u.password == candidatePassword, nil
}

// ChangePassword reemplaza el password. Repetir el actual es un conflicto
// explícito, no un no-op silencioso.
func (u *User) ChangePassword(newPassword string) error {
	if err := guard.NotEmpty(newPassword, "New password"); err != nil {
		return err
	}
	if newPassword == u.password {
		return domain.NewConflict("New password cannot be the same as the old one.")
	}
	u.password = newPassword
	return nil
}

// IsAdmin reporta si el usuario tiene rol ADMIN.
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

func (u *User) Username() string { return u.username }
func (u *User) Role() UserRole   { return u.role }

// Password expone el valor almacenado para el adaptador de persistencia.
func (u *User) Password() string { return u.password }

// Equals compara por identidad.
func (u *User) Equals(other *User) bool {
	return other != nil && u.ID() == other.ID()
}
