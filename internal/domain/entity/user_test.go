package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
)

func newAdmin(t *testing.T) *entity.User {
	t.Helper()
	u, err := entity.NewUser("admin", "1234", entity.RoleAdmin)
	require.NoError(t, err)
	return u
}

func TestNewUser_Valido(t *testing.T) {
	u := newAdmin(t)

	assert.NotEmpty(t, u.ID())
	assert.Equal(t, "admin", u.Username())
	assert.Equal(t, entity.RoleAdmin, u.Role())
	assert.True(t, u.IsAdmin())
}

func TestNewUser_CamposVaciosFallan(t *testing.T) {
	_, err := entity.NewUser("", "1234", entity.RoleAdmin)
	require.Error(t, err)
	assert.EqualError(t, err, "Username cannot be null or empty.")

	_, err = entity.NewUser("admin", "", entity.RoleAdmin)
	require.Error(t, err)
	assert.EqualError(t, err, "Password cannot be null or empty.")
}

func TestNewUser_RolInvalidoFalla(t *testing.T) {
	_, err := entity.NewUser("admin", "1234", entity.UserRole("SUPERVISOR"))
	require.Error(t, err)
	assert.EqualError(t, err, "User Role cannot be null.")
}

func TestParseUserRole(t *testing.T) {
	r, err := entity.ParseUserRole("SELLER")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, r)

	_, err = entity.ParseUserRole("seller")
	require.Error(t, err, "los roles son case-sensitive")
	assert.EqualError(t, err, "User Role 'seller' is not valid.")
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate — sin efectos secundarios
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_PasswordCorrecto(t *testing.T) {
	u := newAdmin(t)

	ok, err := u.Authenticate("1234")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthenticate_PasswordIncorrecto(t *testing.T) {
	u := newAdmin(t)

	ok, err := u.Authenticate("4321")
	require.NoError(t, err, "un password incorrecto no es un error, es false")
	assert.False(t, ok)
}

func TestAuthenticate_PasswordVacioEsError(t *testing.T) {
	u := newAdmin(t)

	_, err := u.Authenticate("")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_Reemplaza(t *testing.T) {
	u := newAdmin(t)

	require.NoError(t, u.ChangePassword("nuevo-secreto"))

	ok, err := u.Authenticate("nuevo-secreto")
	require.NoError(t, err)
	assert.True(t, ok, "el password nuevo debe autenticar")

	ok, err = u.Authenticate("1234")
	require.NoError(t, err)
	assert.False(t, ok, "el password viejo debe dejar de autenticar")
}

func TestChangePassword_RepetirElActualEsConflicto(t *testing.T) {
	u := newAdmin(t)

	err := u.ChangePassword("1234")
	require.Error(t, err)
	assert.EqualError(t, err, "New password cannot be the same as the old one.")
	assert.True(t, domain.IsKind(err, domain.KindConflict))
}

func TestChangePassword_VacioFalla(t *testing.T) {
	u := newAdmin(t)

	err := u.ChangePassword("   ")
	require.Error(t, err)
	assert.EqualError(t, err, "New password cannot be null or empty.")
}
