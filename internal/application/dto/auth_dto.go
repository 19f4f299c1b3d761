package dto

// LoginRequest credenciales de ingreso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse vista plana del usuario autenticado (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token + usuario para la capa HTTP.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest entrada del cambio de password del propio actor.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}
