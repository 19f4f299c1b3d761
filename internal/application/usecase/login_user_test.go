package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotolabs-arg/StoreFlow/internal/application/session"
	"github.com/lotolabs-arg/StoreFlow/internal/application/usecase"
	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers compartidos por los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func decPtr(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d := decimal.RequireFromString(s)
	return &d
}

func seedUser(t *testing.T, repo *memory.UserRepo, username, password string, role entity.UserRole) *entity.User {
	t.Helper()
	u, err := entity.NewUser(username, password, role)
	require.NoError(t, err)
	require.NoError(t, repo.Save(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// LoginUser
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginUser_Exitoso(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedUser(t, userRepo, "admin", "1234", entity.RoleAdmin)
	sess := session.NewContext()

	uc := usecase.NewLoginUser(userRepo, sess)
	user, err := uc.Execute("admin", "1234")
	require.NoError(t, err)
	require.NotNil(t, user)

	current, ok := sess.CurrentUser()
	require.True(t, ok, "el login exitoso debe registrar la sesión")
	assert.Equal(t, "admin", current.Username())
}

func TestLoginUser_PasswordIncorrecto(t *testing.T) {
	userRepo := memory.NewUserRepository()
	seedUser(t, userRepo, "admin", "1234", entity.RoleAdmin)
	sess := session.NewContext()

	uc := usecase.NewLoginUser(userRepo, sess)
	_, err := uc.Execute("admin", "4321")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials.")
	assert.True(t, domain.IsKind(err, domain.KindUnauthorized))

	_, ok := sess.CurrentUser()
	assert.False(t, ok, "un login fallido no debe tocar la sesión")
}

func TestLoginUser_UsuarioInexistente_MismoMensaje(t *testing.T) {
	// Username inexistente y password incorrecto responden idéntico: la
	// respuesta no debe revelar si el username existe.
	userRepo := memory.NewUserRepository()
	sess := session.NewContext()

	uc := usecase.NewLoginUser(userRepo, sess)
	_, err := uc.Execute("fantasma", "1234")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials.")

	_, ok := sess.CurrentUser()
	assert.False(t, ok)
}
