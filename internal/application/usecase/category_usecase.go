package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorias. A unicidade de nome
// vale só entre categorias ativas; o constraint parcial do banco é o
// guarda definitivo contra corrida entre dois creates.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase constrói o caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// List devolve todas as categorias ativas, ordenadas por nome, com a
// contagem de produtos ativos de cada uma.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c, false))
	}
	return &dto.CategoryListResponse{Data: items}, nil
}

// GetByID devolve a categoria ativa com seus produtos ativos aninhados.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.Active {
		return nil, domain.ErrCategoryNotFound
	}
	return toCategoryResponse(category, true), nil
}

// Create cria uma categoria após checar a unicidade do nome entre ativas.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.categories.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCategoryNameTaken
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrCategoryNameTaken
		}
		return nil, err
	}
	return toCategoryResponse(category, false), nil
}

// Update atualiza só os campos fornecidos; nome novo passa de novo pela
// checagem de unicidade.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.Active {
		return nil, domain.ErrCategoryNotFound
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, err := uc.categories.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrCategoryNameTaken
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrCategoryNameTaken
		}
		return nil, err
	}
	return toCategoryResponse(category, false), nil
}

// Delete marca a categoria como inativa. Falha se ainda existem produtos
// ativos referenciando a categoria.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || !category.Active {
		return domain.ErrCategoryNotFound
	}
	count, err := uc.categories.CountActiveProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryHasProducts
	}
	return uc.categories.Delete(id)
}

func toCategoryResponse(c *entity.Category, withProducts bool) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	out := &dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Active:       c.Active,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if withProducts {
		out.Products = make([]dto.ProductResponse, 0, len(c.Products))
		for _, p := range c.Products {
			out.Products = append(out.Products, *toProductResponse(p))
		}
	}
	return out
}
