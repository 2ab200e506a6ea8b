package supabase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
)

// Linhas JSON das tabelas, no formato que o PostgREST serializa. Campos
// opcionais são ponteiros para respeitar NULL.

type categoryRow struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Products     []productRow `json:"products,omitempty"`
	ProductCount []countRow   `json:"product_count,omitempty"`
}

type countRow struct {
	Count int `json:"count"`
}

type productRow struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Barcode     *string         `json:"barcode,omitempty"`
	CategoryID  string          `json:"category_id"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Category    *categorySummaryRow `json:"category,omitempty"`
}

type categorySummaryRow struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type customerRow struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	CPF       *string    `json:"cpf,omitempty"`
	Address   *string    `json:"address,omitempty"`
	BirthDate *string    `json:"birth_date,omitempty"`
	Password  *string    `json:"password,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func nullif(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strval(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toCategoryEntity(row *categoryRow) *entity.Category {
	if row == nil {
		return nil
	}
	c := &entity.Category{
		ID:          row.ID,
		Name:        row.Name,
		Description: strval(row.Description),
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if len(row.ProductCount) > 0 {
		c.ProductCount = row.ProductCount[0].Count
	}
	for i := range row.Products {
		c.Products = append(c.Products, toProductEntity(&row.Products[i]))
	}
	return c
}

func toProductEntity(row *productRow) *entity.Product {
	if row == nil {
		return nil
	}
	p := &entity.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: strval(row.Description),
		Price:       row.Price,
		Stock:       row.Stock,
		Barcode:     strval(row.Barcode),
		CategoryID:  row.CategoryID,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.Category != nil {
		p.Category = &entity.Category{ID: row.Category.ID, Name: row.Category.Name}
	}
	return p
}

const birthDateLayout = "2006-01-02"

func toCustomerEntity(row *customerRow) *entity.Customer {
	if row == nil {
		return nil
	}
	c := &entity.Customer{
		ID:           row.ID,
		Name:         row.Name,
		Email:        strval(row.Email),
		Phone:        strval(row.Phone),
		CPF:          strval(row.CPF),
		Address:      strval(row.Address),
		PasswordHash: strval(row.Password),
		Active:       row.Active,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.BirthDate != nil {
		if t, err := time.Parse(birthDateLayout, *row.BirthDate); err == nil {
			c.BirthDate = &t
		}
	}
	return c
}

func birthDateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(birthDateLayout)
	return &s
}
