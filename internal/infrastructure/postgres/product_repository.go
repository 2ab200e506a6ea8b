package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação pgx de ProductRepository.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Aceita pool ou tx (Querier).
// List emite página e contagem em paralelo; com tx use um Querier serial.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.stock, p.barcode,
	p.category_id, p.active, p.created_at, p.updated_at, c.name`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var barcode *string
	var categoryName string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &barcode,
		&p.CategoryID, &p.Active, &p.CreatedAt, &p.UpdatedAt, &categoryName)
	if err != nil {
		return nil, err
	}
	p.Barcode = strval(barcode)
	p.Category = &entity.Category{ID: p.CategoryID, Name: categoryName}
	return &p, nil
}

// List devolve a página de produtos ativos e o total que casa o filtro.
// As duas consultas saem em paralelo, como o par findMany/count original.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	where := `
		WHERE p.active
		  AND ($1 = '' OR p.category_id::text = $1)
		  AND ($2 = '' OR p.name ILIKE '%' || $2 || '%'
		       OR p.description ILIKE '%' || $2 || '%'
		       OR p.barcode ILIKE '%' || $2 || '%')`

	var (
		list  []*entity.Product
		total int
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		query := `
			SELECT ` + productColumns + `
			FROM products p
			JOIN categories c ON c.id = p.category_id` + where + `
			ORDER BY p.created_at DESC
			LIMIT $3 OFFSET $4`
		rows, err := r.q.Query(ctx, query, filter.CategoryID, filter.Search, filter.Limit, filter.Offset)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return fmt.Errorf("scan product: %w", err)
			}
			list = append(list, p)
		}
		return rows.Err()
	})
	g.Go(func() error {
		query := `SELECT COUNT(*)::int FROM products p` + where
		if err := r.q.QueryRow(ctx, query, filter.CategoryID, filter.Search).Scan(&total); err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// GetByID devolve o produto em qualquer status, com a categoria projetada.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByBarcode devolve o produto ativo com esse código (escopo da unicidade).
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.barcode = $1 AND p.active`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by barcode: %w", err)
	}
	return p, nil
}

// Create persiste um novo produto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, barcode, category_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		nullif(product.Barcode), product.CategoryID, product.Active,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update atualiza o produto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, barcode = $6,
		    category_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		nullif(product.Barcode), product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete marca o produto como inativo (a linha permanece consultável).
func (r *ProductRepo) Delete(id string) error {
	query := `UPDATE products SET active = FALSE, updated_at = NOW() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
