package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/mariacamila100/sistema-inventario-mantenimiento-sub000/pkg/jwt"
)

const (
	secret  = "test-secret-key-for-unit-tests"
	userID  = "00000000-0000-0000-0000-000000000001"
	usuario = "operador1"
	issuer  = "sistema-inventario-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, usuario, "operador", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotID, gotUser, gotRol, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, userID, gotID)
	assert.Equal(t, usuario, gotUser)
	assert.Equal(t, "operador", gotRol)
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(secret, userID, usuario, "admin", issuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, usuario, "admin", issuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenBasura_RetornaError(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(secret, "no.es.un-jwt")
	assert.Error(t, err)
}
