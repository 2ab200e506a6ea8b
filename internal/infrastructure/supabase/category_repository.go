package supabase

import (
	"net/url"
	"time"

	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementação da API de tabelas para CategoryRepository.
type CategoryRepo struct {
	client *Client
}

// NewCategoryRepository constrói o adaptador.
func NewCategoryRepository(client *Client) *CategoryRepo {
	return &CategoryRepo{client: client}
}

// List devolve as categorias ativas por nome, com a contagem de produtos
// ativos embutida via relacionamento (products(count)).
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	q := url.Values{}
	q.Set("select", "*,product_count:products(count)")
	q.Set("product_count.active", "eq.true")
	q.Set("active", "eq.true")
	q.Set("order", "name.asc")
	var rows []categoryRow
	if _, err := r.client.Select("categories", q, &rows, false); err != nil {
		return nil, err
	}
	list := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		list = append(list, toCategoryEntity(&rows[i]))
	}
	return list, nil
}

// GetByID devolve a categoria em qualquer status com os produtos ativos embutidos.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	q := url.Values{}
	q.Set("select", "*,products(*)")
	q.Set("products.active", "eq.true")
	q.Set("products.order", "created_at.desc")
	q.Set("id", "eq."+id)
	q.Set("limit", "1")
	var rows []categoryRow
	if _, err := r.client.Select("categories", q, &rows, false); err != nil {
		if IsInvalidID(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	c := toCategoryEntity(&rows[0])
	c.ProductCount = len(c.Products)
	return c, nil
}

// GetByName devolve a categoria ativa com esse nome (escopo da unicidade).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	q := url.Values{}
	q.Set("name", "eq."+name)
	q.Set("active", "eq.true")
	q.Set("limit", "1")
	var rows []categoryRow
	if _, err := r.client.Select("categories", q, &rows, false); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toCategoryEntity(&rows[0]), nil
}

// Create insere uma nova categoria.
func (r *CategoryRepo) Create(category *entity.Category) error {
	body := map[string]any{
		"id":          category.ID,
		"name":        category.Name,
		"description": category.Description,
		"active":      category.Active,
		"created_at":  category.CreatedAt,
		"updated_at":  category.UpdatedAt,
	}
	var rows []categoryRow
	if err := r.client.Insert("categories", []any{body}, &rows); err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update aplica o patch da categoria.
func (r *CategoryRepo) Update(category *entity.Category) error {
	q := url.Values{}
	q.Set("id", "eq."+category.ID)
	body := map[string]any{
		"name":        category.Name,
		"description": category.Description,
		"updated_at":  category.UpdatedAt,
	}
	if err := r.client.Update("categories", q, body); err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete marca a categoria como inativa.
func (r *CategoryRepo) Delete(id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return r.client.Update("categories", q, map[string]any{
		"active":     false,
		"updated_at": time.Now(),
	})
}

// CountActiveProducts conta os produtos ativos da categoria via Content-Range.
func (r *CategoryRepo) CountActiveProducts(id string) (int, error) {
	q := url.Values{}
	q.Set("select", "id")
	q.Set("category_id", "eq."+id)
	q.Set("active", "eq.true")
	q.Set("limit", "1")
	var rows []productRow
	total, err := r.client.Select("products", q, &rows, true)
	if err != nil {
		return 0, err
	}
	return total, nil
}
