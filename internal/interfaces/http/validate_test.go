package http

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/farmacia-api/internal/application/dto"
)

// Entrada válida não acumula violações.
func TestValidateStruct_RegistroValido(t *testing.T) {
	errs := validateStruct(dto.RegisterRequest{
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Password: "Senha123",
	})
	assert.Empty(t, errs)
}

// TODAS as violações voltam de uma vez, nomeadas pelo campo do JSON.
func TestValidateStruct_AcumulaViolacoes(t *testing.T) {
	errs := validateStruct(dto.RegisterRequest{
		Name:     "A",
		Email:    "nao-e-email",
		Password: "curta",
	})
	require.Len(t, errs, 3)

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

// A regra de senha exige minúscula, maiúscula e dígito.
func TestValidateStruct_RegraDeSenha(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Senha123", true},
		{"senha123", false}, // sem maiúscula
		{"SENHA123", false}, // sem minúscula
		{"SenhaForte", false}, // sem dígito
	}
	for _, tc := range cases {
		errs := validateStruct(dto.RegisterRequest{
			Name:     "Ana Souza",
			Email:    "ana@example.com",
			Password: tc.password,
		})
		if tc.ok {
			assert.Empty(t, errs, "senha %q deveria passar", tc.password)
		} else {
			assert.NotEmpty(t, errs, "senha %q deveria falhar", tc.password)
		}
	}
}

// O preço decimal participa das regras numéricas: zero viola gt=0.
func TestValidateStruct_PrecoDecimal(t *testing.T) {
	base := dto.CreateProductRequest{
		Name:       "Dipirona 500mg",
		Price:      decimal.NewFromFloat(9.90),
		CategoryID: "c1",
	}
	assert.Empty(t, validateStruct(base))

	base.Price = decimal.Zero
	errs := validateStruct(base)
	require.NotEmpty(t, errs)
	assert.Equal(t, "price", errs[0].Field)
}

// Data de nascimento fora do formato ISO é apontada.
func TestValidateStruct_DataNascimento(t *testing.T) {
	errs := validateStruct(dto.RegisterRequest{
		Name:      "Ana Souza",
		Email:     "ana@example.com",
		Password:  "Senha123",
		BirthDate: "15/03/1990",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "birth_date", errs[0].Field)
}
