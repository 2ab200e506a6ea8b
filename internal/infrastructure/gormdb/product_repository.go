package gormdb

import (
	"errors"
	"fmt"
	"time"

	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
	"gorm.io/gorm"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação GORM de ProductRepository.
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository constrói o adaptador.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// filtered aplica o filtro de listagem; LOWER/LIKE mantém a busca
// case-insensitive nos dois dialetos.
func (r *ProductRepo) filtered(filter repository.ProductFilter) *gorm.DB {
	query := r.db.Model(&Product{}).Where("products.active = ?", true)
	if filter.CategoryID != "" {
		query = query.Where("products.category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(products.name) LIKE LOWER(?) OR LOWER(products.description) LIKE LOWER(?) OR LOWER(products.barcode) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	return query
}

// List devolve a página de produtos ativos (mais recentes primeiro) e o
// total que casa o filtro.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	var models []Product
	err := r.filtered(filter).
		Preload("Category").
		Order("products.created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	list := make([]*entity.Product, 0, len(models))
	for i := range models {
		list = append(list, toProductEntity(&models[i]))
	}
	return list, int(total), nil
}

// GetByID devolve o produto em qualquer status com a categoria projetada.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var model Product
	if err := r.db.Preload("Category").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return toProductEntity(&model), nil
}

// GetByBarcode devolve o produto ativo com esse código (escopo da unicidade).
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	var model Product
	err := r.db.Preload("Category").
		First(&model, "barcode = ? AND active = ?", barcode, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return toProductEntity(&model), nil
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	if err := r.db.Create(fromProductEntity(product)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update atualiza o produto.
func (r *ProductRepo) Update(product *entity.Product) error {
	err := r.db.Model(&Product{}).Where("id = ?", product.ID).Updates(map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"barcode":     nullif(product.Barcode),
		"category_id": product.CategoryID,
		"updated_at":  product.UpdatedAt,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete marca o produto como inativo (a linha permanece consultável).
func (r *ProductRepo) Delete(id string) error {
	err := r.db.Model(&Product{}).Where("id = ?", id).Updates(map[string]any{
		"active":     false,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
