package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Taller-api/pkg/password"
)

func TestBcrypt_HashYMatches(t *testing.T) {
	svc := password.NewBcrypt(bcrypt.MinCost) // costo mínimo para tests

	hash, err := svc.Hash("secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret", hash, "el hash nunca es la contraseña en claro")

	assert.True(t, svc.Matches("secret", hash))
	assert.False(t, svc.Matches("Secret", hash), "la contraseña es sensible a mayúsculas")
	assert.False(t, svc.Matches(" secret ", hash), "la contraseña no se normaliza")
	assert.False(t, svc.Matches("secret", "hash-corrupto"))
}

func TestBcrypt_CostoPorDefecto(t *testing.T) {
	svc := password.NewBcrypt(0)
	hash, err := svc.Hash("otra-clave")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
