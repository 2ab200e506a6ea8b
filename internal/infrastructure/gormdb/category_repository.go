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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação GORM de CategoryRepository.
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository constrói o adaptador.
func NewCategoryRepository(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// List devolve as categorias ativas ordenadas por nome, com a contagem de
// produtos ativos agregada numa segunda consulta.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	var models []Category
	if err := r.db.Where("active = ?", true).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	counts, err := r.activeProductCounts()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Category, 0, len(models))
	for i := range models {
		c := toCategoryEntity(&models[i])
		c.ProductCount = counts[c.ID]
		list = append(list, c)
	}
	return list, nil
}

type categoryCount struct {
	CategoryID string
	Count      int
}

func (r *CategoryRepo) activeProductCounts() (map[string]int, error) {
	var rows []categoryCount
	err := r.db.Model(&Product{}).
		Select("category_id, COUNT(*) AS count").
		Where("active = ?", true).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count category products: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}

// GetByID devolve a categoria em qualquer status com os produtos ativos aninhados.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	var model Category
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	var products []Product
	err := r.db.Where("category_id = ? AND active = ?", id, true).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list category products: %w", err)
	}
	c := toCategoryEntity(&model)
	c.Products = make([]*entity.Product, 0, len(products))
	for i := range products {
		c.Products = append(c.Products, toProductEntity(&products[i]))
	}
	c.ProductCount = len(products)
	return c, nil
}

// GetByName devolve a categoria ativa com esse nome (escopo da unicidade).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	var model Category
	if err := r.db.First(&model, "name = ? AND active = ?", name, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return toCategoryEntity(&model), nil
}

// Create persiste uma nova categoria.
func (r *CategoryRepo) Create(category *entity.Category) error {
	if err := r.db.Create(fromCategoryEntity(category)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// Update atualiza a categoria.
func (r *CategoryRepo) Update(category *entity.Category) error {
	err := r.db.Model(&Category{}).Where("id = ?", category.ID).Updates(map[string]any{
		"name":        category.Name,
		"description": category.Description,
		"updated_at":  category.UpdatedAt,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete marca a categoria como inativa (a linha permanece consultável).
func (r *CategoryRepo) Delete(id string) error {
	err := r.db.Model(&Category{}).Where("id = ?", id).Updates(map[string]any{
		"active":     false,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// CountActiveProducts conta os produtos ativos da categoria.
func (r *CategoryRepo) CountActiveProducts(id string) (int, error) {
	var count int64
	err := r.db.Model(&Product{}).
		Where("category_id = ? AND active = ?", id, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count category products: %w", err)
	}
	return int(count), nil
}
