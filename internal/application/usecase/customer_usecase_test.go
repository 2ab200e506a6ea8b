package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/application/usecase"
	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

// Email já usado por um cliente ativo deve dar conflito.
func TestCustomerCreate_EmailEmUso(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("GetByEmail", "ana@example.com").
		Return(&entity.Customer{ID: "u1", Email: "ana@example.com", Active: true}, nil)

	uc := usecase.NewCustomerUseCase(repo)
	_, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana Souza", Email: "ana@example.com"})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

// CPF é checado de forma independente do email.
func TestCustomerCreate_CPFEmUso(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("GetByEmail", "ana@example.com").Return(nil, nil)
	repo.On("GetByCPF", "12345678901").
		Return(&entity.Customer{ID: "u2", CPF: "12345678901", Active: true}, nil)

	uc := usecase.NewCustomerUseCase(repo)
	_, err := uc.Create(dto.CreateCustomerRequest{
		Name:  "Ana Souza",
		Email: "ana@example.com",
		CPF:   "12345678901",
	})

	assert.ErrorIs(t, err, domain.ErrCPFTaken)
}

// Campos opcionais vazios não disparam checagem de unicidade.
func TestCustomerCreate_SemEmailNemCPF(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("Create", mock.AnythingOfType("*entity.Customer")).Return(nil)

	uc := usecase.NewCustomerUseCase(repo)
	out, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana Souza"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything)
	repo.AssertNotCalled(t, "GetByCPF", mock.Anything)
}

// Data de nascimento fora do formato ISO é rejeitada.
func TestCustomerCreate_DataNascimentoInvalida(t *testing.T) {
	repo := new(mockCustomerRepo)

	uc := usecase.NewCustomerUseCase(repo)
	_, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana Souza", BirthDate: "15/03/1990"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

// Data válida é persistida e devolvida.
func TestCustomerCreate_DataNascimentoValida(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("Create", mock.AnythingOfType("*entity.Customer")).Return(nil)

	uc := usecase.NewCustomerUseCase(repo)
	out, err := uc.Create(dto.CreateCustomerRequest{Name: "Ana Souza", BirthDate: "1990-03-15"})

	require.NoError(t, err)
	require.NotNil(t, out.BirthDate)
	assert.Equal(t, "1990-03-15", out.BirthDate.Format("2006-01-02"))
}

// Cliente desativado se comporta como inexistente.
func TestCustomerUpdate_InativoNaoAparece(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("GetByID", "u1").Return(&entity.Customer{ID: "u1", Active: false}, nil)

	uc := usecase.NewCustomerUseCase(repo)
	_, err := uc.Update("u1", dto.UpdateCustomerRequest{Name: strptr("Ana Lima")})

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

// A busca textual flui intacta para o filtro do repositório.
func TestCustomerList_PropagaBusca(t *testing.T) {
	repo := new(mockCustomerRepo)
	repo.On("List", repository.CustomerFilter{Search: "ana", Limit: 10, Offset: 0}).
		Return([]*entity.Customer{{ID: "u1", Name: "Ana Souza", Active: true}}, 1, nil)

	uc := usecase.NewCustomerUseCase(repo)
	out, err := uc.List(1, 10, "ana")

	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, 1, out.Pagination.Pages)
}
