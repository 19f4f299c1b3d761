package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotolabs-arg/StoreFlow/internal/domain"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/memory"
)

func TestUserRepo_SaveYFind(t *testing.T) {
	repo := memory.NewUserRepository()
	admin, err := entity.NewUser("admin", "1234", entity.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Save(admin))

	byID, err := repo.FindByID(admin.ID())
	require.NoError(t, err)
	require.NotNil(t, byID)

	byUsername, err := repo.FindByUsername("admin")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.True(t, admin.Equals(byUsername))
}

func TestUserRepo_NoEncontradoEsNilNil(t *testing.T) {
	repo := memory.NewUserRepository()

	user, err := repo.FindByUsername("fantasma")
	require.NoError(t, err, "no encontrado no es un error")
	assert.Nil(t, user)
}

func TestUserRepo_UsernameDuplicadoEsConflicto(t *testing.T) {
	// Mismo contrato que el índice único del adaptador PostgreSQL.
	repo := memory.NewUserRepository()
	first, err := entity.NewUser("admin", "1234", entity.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Save(first))

	second, err := entity.NewUser("admin", "otro", entity.RoleSeller)
	require.NoError(t, err)

	err = repo.Save(second)
	require.Error(t, err)
	assert.EqualError(t, err, "Username already exists.")
	assert.True(t, domain.IsKind(err, domain.KindConflict))
}

func TestUserRepo_ReguardarElMismoUsuario(t *testing.T) {
	repo := memory.NewUserRepository()
	admin, err := entity.NewUser("admin", "1234", entity.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Save(admin))

	require.NoError(t, admin.ChangePassword("nuevo"))
	assert.NoError(t, repo.Save(admin),
		"el upsert por identidad no debe chocar con su propio username")
}
