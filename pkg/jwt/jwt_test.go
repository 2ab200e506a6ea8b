package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/seu-usuario/farmacia-api/pkg/jwt"
)

const (
	testSecret = "segredo-de-teste"
	testIssuer = "farmacia-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "c-1", "ana@example.com", "Ana", testIssuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "c-1", claims.CustomerID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "c-1", claims.Subject)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := pkgjwt.Generate(testSecret, "c-1", "ana@example.com", "Ana", testIssuer, 24)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	// expHours negativo produz um token já expirado
	token, err := pkgjwt.Generate(testSecret, "c-1", "ana@example.com", "Ana", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestGenerateEmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "c-1", "ana@example.com", "Ana", testIssuer, 24)
	assert.Error(t, err)
}
