package services

import (
	"testing"
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"
	"github.com/fatouibra/Projet-Fatou-sub001/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newTestEnv(t)
	auth := NewAuthService(repository.NewUserRepository(e.db), "test-secret", time.Hour)

	u, err := auth.Register("Awa@Test.Local", "secret123", "Awa", "Diop", "771234567")
	require.NoError(t, err)
	assert.Equal(t, "awa@test.local", u.Email)
	assert.Equal(t, entity.RoleCustomer, u.Role)
	assert.NotEqual(t, "secret123", u.Password)

	token, logged, err := auth.Login("awa@test.local", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, entity.RoleCustomer, claims.Role)

	_, _, err = auth.Login("awa@test.local", "wrong")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRegisterRejectsDuplicatesAndWeakPasswords(t *testing.T) {
	e := newTestEnv(t)
	auth := NewAuthService(repository.NewUserRepository(e.db), "test-secret", time.Hour)

	_, err := auth.Register("awa@test.local", "123", "", "", "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = auth.Register("awa@test.local", "secret123", "", "", "")
	require.NoError(t, err)
	_, err = auth.Register("AWA@test.local", "secret456", "", "", "")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestLoginBindsRestaurantID(t *testing.T) {
	e := newTestEnv(t)
	auth := NewAuthService(repository.NewUserRepository(e.db), "test-secret", time.Hour)

	u, err := auth.Register("chef@test.local", "secret123", "", "", "")
	require.NoError(t, err)
	require.NoError(t, e.db.Model(u).Update("role", entity.RoleRestaurator).Error)
	rest := e.seedRestaurant(t, u, 0, 0)

	token, _, err := auth.Login("chef@test.local", "secret123")
	require.NoError(t, err)
	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, rest.ID, claims.RestaurantID)
}
