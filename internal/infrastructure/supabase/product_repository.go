package supabase

import (
	"fmt"
	"net/url"
	"time"

	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação da API de tabelas para ProductRepository.
type ProductRepo struct {
	client *Client
}

// NewProductRepository constrói o adaptador.
func NewProductRepository(client *Client) *ProductRepo {
	return &ProductRepo{client: client}
}

const productSelect = "*,category:categories(id,name)"

// List devolve a página de produtos ativos e o total (count=exact).
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	q := url.Values{}
	q.Set("select", productSelect)
	q.Set("active", "eq.true")
	if filter.CategoryID != "" {
		q.Set("category_id", "eq."+filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := ilikePattern(filter.Search)
		q.Set("or", fmt.Sprintf("(name.ilike.%s,description.ilike.%s,barcode.ilike.%s)",
			pattern, pattern, pattern))
	}
	q.Set("order", "created_at.desc")
	rangeQuery(q, filter.Limit, filter.Offset)

	var rows []productRow
	total, err := r.client.Select("products", q, &rows, true)
	if err != nil {
		return nil, 0, err
	}
	list := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		list = append(list, toProductEntity(&rows[i]))
	}
	return list, total, nil
}

// GetByID devolve o produto em qualquer status com a categoria embutida.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	q := url.Values{}
	q.Set("select", productSelect)
	q.Set("id", "eq."+id)
	q.Set("limit", "1")
	var rows []productRow
	if _, err := r.client.Select("products", q, &rows, false); err != nil {
		if IsInvalidID(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toProductEntity(&rows[0]), nil
}

// GetByBarcode devolve o produto ativo com esse código (escopo da unicidade).
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	q := url.Values{}
	q.Set("select", productSelect)
	q.Set("barcode", "eq."+barcode)
	q.Set("active", "eq.true")
	q.Set("limit", "1")
	var rows []productRow
	if _, err := r.client.Select("products", q, &rows, false); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toProductEntity(&rows[0]), nil
}

// Create insere um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	body := map[string]any{
		"id":          product.ID,
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"barcode":     nullif(product.Barcode),
		"category_id": product.CategoryID,
		"active":      product.Active,
		"created_at":  product.CreatedAt,
		"updated_at":  product.UpdatedAt,
	}
	var rows []productRow
	if err := r.client.Insert("products", []any{body}, &rows); err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update aplica o patch do produto.
func (r *ProductRepo) Update(product *entity.Product) error {
	q := url.Values{}
	q.Set("id", "eq."+product.ID)
	body := map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"stock":       product.Stock,
		"barcode":     nullif(product.Barcode),
		"category_id": product.CategoryID,
		"updated_at":  product.UpdatedAt,
	}
	if err := r.client.Update("products", q, body); err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete marca o produto como inativo.
func (r *ProductRepo) Delete(id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return r.client.Update("products", q, map[string]any{
		"active":     false,
		"updated_at": time.Now(),
	})
}
