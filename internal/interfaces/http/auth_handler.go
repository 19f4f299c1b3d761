package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lotolabs-arg/StoreFlow/internal/application/dto"
	"github.com/lotolabs-arg/StoreFlow/internal/application/usecase"
	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/repository"
	"github.com/lotolabs-arg/StoreFlow/pkg/jwt"
)

// JWTSettings parámetros de emisión de tokens para el handler de auth.
type JWTSettings struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthHandler maneja login y cambio de password.
type AuthHandler struct {
	loginUC          *usecase.LoginUser
	changePasswordUC *usecase.ChangeUserPassword
	userRepo         repository.UserRepository
	jwtCfg           JWTSettings
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(loginUC *usecase.LoginUser, changePasswordUC *usecase.ChangeUserPassword, userRepo repository.UserRepository, jwtCfg JWTSettings) *AuthHandler {
	return &AuthHandler{loginUC: loginUC, changePasswordUC: changePasswordUC, userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login autentica y devuelve token + usuario.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	user, err := h.loginUC.Execute(in.Username, in.Password)
	if err != nil {
		return businessError(c, err)
	}

	token, err := jwt.Generate(h.jwtCfg.Secret, user.ID(), user.Username(), string(user.Role()), h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return businessError(c, err)
	}

	return c.JSON(dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// Me devuelve la identidad del actor según los claims del token, sin tocar la
// DB: es el espejo de lo que el middleware dejó en el contexto.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.UserResponse{
		ID:       GetUserID(c),
		Username: GetUsername(c),
		Role:     GetRole(c),
	})
}

// ChangePassword cambia el password del actor autenticado.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	actor, err := loadActor(c, h.userRepo)
	if err != nil {
		return businessError(c, err)
	}

	if err := h.changePasswordUC.Execute(actor, in.NewPassword); err != nil {
		return businessError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// loadActor carga el agregado User del actor autenticado a partir del claim
// user_id que dejó el middleware.
func loadActor(c *fiber.Ctx, userRepo repository.UserRepository) (*entity.User, error) {
	actor, err := userRepo.FindByID(GetUserID(c))
	if err != nil {
		return nil, err
	}
	if actor == nil {
		// token válido pero usuario ya no existe
		return nil, domain.NewUnauthorized("Invalid credentials.")
	}
	return actor, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID(),
		Username: u.Username(),
		Role:     string(u.Role()),
	}
}
