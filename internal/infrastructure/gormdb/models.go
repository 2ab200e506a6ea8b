package gormdb

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
)

// Modelos GORM das três tabelas. Os índices únicos parciais (where active)
// reproduzem o backstop de unicidade escopada do schema pgx; campos
// opcionais são ponteiros para persistir NULL em vez de string vazia.

// Category linha da tabela categories.
type Category struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null;uniqueIndex:categories_name_active_uq,where:active"`
	Description string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product linha da tabela products.
type Product struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	Name        string          `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Barcode     *string         `gorm:"uniqueIndex:products_barcode_active_uq,where:active"`
	CategoryID  string          `gorm:"type:uuid;not null;index"`
	Category    *Category       `gorm:"foreignKey:CategoryID"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Customer linha da tabela customers.
type Customer struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	Name      string  `gorm:"not null"`
	Email     *string `gorm:"uniqueIndex:customers_email_active_uq,where:active"`
	Phone     *string
	CPF       *string `gorm:"column:cpf;uniqueIndex:customers_cpf_active_uq,where:active"`
	Address   *string
	BirthDate *time.Time
	Password  *string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
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

func toCategoryEntity(m *Category) *entity.Category {
	if m == nil {
		return nil
	}
	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromCategoryEntity(c *entity.Category) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toProductEntity(m *Product) *entity.Product {
	if m == nil {
		return nil
	}
	p := &entity.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		Barcode:     strval(m.Barcode),
		CategoryID:  m.CategoryID,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Category != nil {
		p.Category = toCategoryEntity(m.Category)
	}
	return p
}

func fromProductEntity(p *entity.Product) *Product {
	return &Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Barcode:     nullif(p.Barcode),
		CategoryID:  p.CategoryID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCustomerEntity(m *Customer) *entity.Customer {
	if m == nil {
		return nil
	}
	return &entity.Customer{
		ID:           m.ID,
		Name:         m.Name,
		Email:        strval(m.Email),
		Phone:        strval(m.Phone),
		CPF:          strval(m.CPF),
		Address:      strval(m.Address),
		BirthDate:    m.BirthDate,
		PasswordHash: strval(m.Password),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromCustomerEntity(c *entity.Customer) *Customer {
	return &Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     nullif(c.Email),
		Phone:     nullif(c.Phone),
		CPF:       nullif(c.CPF),
		Address:   nullif(c.Address),
		BirthDate: c.BirthDate,
		Password:  nullif(c.PasswordHash),
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
