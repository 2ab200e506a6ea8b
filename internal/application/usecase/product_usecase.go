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

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ProductUseCase casos de uso CRUD para produtos. Todo create/update
// revalida a categoria (precisa existir e estar ativa) e a unicidade do
// código de barras entre produtos ativos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories}
}

// normalizePage aplica defaults e limites à paginação (page 1-based).
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// List lista produtos ativos com filtro opcional por categoria e busca,
// ordenados do mais recente para o mais antigo.
func (uc *ProductUseCase) List(page, limit int, categoryID, search string) (*dto.ProductListResponse, error) {
	page, limit = normalizePage(page, limit)
	list, total, err := uc.products.List(repository.ProductFilter{
		CategoryID: categoryID,
		Search:     search,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data:       items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// GetByID devolve o produto ativo com a categoria aninhada.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// GetByBarcode mesmo contrato de GetByID, chaveado pelo código de barras.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Create cria um produto. A categoria precisa existir e estar ativa; o
// código de barras, quando informado, precisa ser único entre ativos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.Active {
		return nil, domain.ErrCategoryNotFound
	}
	if in.Barcode != "" {
		existing, err := uc.products.GetByBarcode(in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrBarcodeTaken
		}
	}
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Barcode:     in.Barcode,
		CategoryID:  in.CategoryID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrBarcodeTaken
		}
		return nil, err
	}
	product.Category = &entity.Category{ID: category.ID, Name: category.Name}
	return toProductResponse(product), nil
}

// Update atualiza só os campos fornecidos; categoria e código de barras
// novos passam de novo pelas checagens.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrProductNotFound
	}
	if in.CategoryID != nil && *in.CategoryID != product.CategoryID {
		category, err := uc.categories.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || !category.Active {
			return nil, domain.ErrCategoryNotFound
		}
		product.CategoryID = *in.CategoryID
		product.Category = &entity.Category{ID: category.ID, Name: category.Name}
	}
	if in.Barcode != nil && *in.Barcode != product.Barcode {
		if *in.Barcode != "" {
			existing, err := uc.products.GetByBarcode(*in.Barcode)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrBarcodeTaken
			}
		}
		product.Barcode = *in.Barcode
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = *in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrBarcodeTaken
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete marca o produto como inativo.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || !product.Active {
		return domain.ErrProductNotFound
	}
	return uc.products.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Barcode:     p.Barcode,
		CategoryID:  p.CategoryID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Category != nil {
		out.Category = &dto.CategorySummary{ID: p.Category.ID, Name: p.Category.Name}
	}
	return out
}
