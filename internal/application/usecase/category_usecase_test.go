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
)

func strptr(s string) *string { return &s }

// Criar com nome livre deve persistir ativa e devolver o ID gerado.
func TestCategoryCreate_OK(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByName", "Analgésicos").Return(nil, nil)
	repo.On("Create", mock.AnythingOfType("*entity.Category")).Return(nil)

	uc := usecase.NewCategoryUseCase(repo)
	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Analgésicos", Description: "Dor e febre"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Analgésicos", out.Name)
	assert.True(t, out.Active)
	repo.AssertExpectations(t)
}

// Nome já usado por outra categoria ativa deve falhar com conflito.
func TestCategoryCreate_NomeDuplicado(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByName", "Analgésicos").Return(&entity.Category{ID: "c1", Name: "Analgésicos", Active: true}, nil)

	uc := usecase.NewCategoryUseCase(repo)
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Analgésicos"})

	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

// Categoria desativada se comporta como inexistente nas leituras.
func TestCategoryGetByID_InativaNaoAparece(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", "c1").Return(&entity.Category{ID: "c1", Name: "Antigos", Active: false}, nil)

	uc := usecase.NewCategoryUseCase(repo)
	_, err := uc.GetByID("c1")

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

// Atualizar mantendo o mesmo nome não dispara a checagem de unicidade.
func TestCategoryUpdate_MesmoNomeNaoChecaUnicidade(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", "c1").Return(&entity.Category{ID: "c1", Name: "Vitaminas", Active: true}, nil)
	repo.On("Update", mock.AnythingOfType("*entity.Category")).Return(nil)

	uc := usecase.NewCategoryUseCase(repo)
	out, err := uc.Update("c1", dto.UpdateCategoryRequest{
		Name:        strptr("Vitaminas"),
		Description: strptr("Suplementos"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Suplementos", out.Description)
	repo.AssertNotCalled(t, "GetByName", mock.Anything)
}

// Excluir uma categoria com produtos ativos deve ser bloqueado.
func TestCategoryDelete_ComProdutosAtivos(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", "c1").Return(&entity.Category{ID: "c1", Name: "Vitaminas", Active: true}, nil)
	repo.On("CountActiveProducts", "c1").Return(3, nil)

	uc := usecase.NewCategoryUseCase(repo)
	err := uc.Delete("c1")

	assert.ErrorIs(t, err, domain.ErrCategoryHasProducts)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

// Sem produtos ativos a exclusão vira soft delete no repositório.
func TestCategoryDelete_OK(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("GetByID", "c1").Return(&entity.Category{ID: "c1", Name: "Vitaminas", Active: true}, nil)
	repo.On("CountActiveProducts", "c1").Return(0, nil)
	repo.On("Delete", "c1").Return(nil)

	uc := usecase.NewCategoryUseCase(repo)
	require.NoError(t, uc.Delete("c1"))
	repo.AssertExpectations(t)
}

// A listagem projeta a contagem de produtos de cada categoria.
func TestCategoryList_ComContagem(t *testing.T) {
	repo := new(mockCategoryRepo)
	repo.On("List").Return([]*entity.Category{
		{ID: "c1", Name: "Analgésicos", Active: true, ProductCount: 2},
		{ID: "c2", Name: "Vitaminas", Active: true, ProductCount: 0},
	}, nil)

	uc := usecase.NewCategoryUseCase(repo)
	out, err := uc.List()

	require.NoError(t, err)
	require.Len(t, out.Data, 2)
	assert.Equal(t, 2, out.Data[0].ProductCount)
}
