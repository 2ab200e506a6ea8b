package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto. Stock omitido vira 0.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Stock       int             `json:"stock" validate:"min=0"`
	Barcode     string          `json:"barcode" validate:"omitempty,min=8,max=20"`
	CategoryID  string          `json:"categoryId" validate:"required"`
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Barcode     *string          `json:"barcode" validate:"omitempty,min=8,max=20"`
	CategoryID  *string          `json:"categoryId" validate:"omitempty"`
}

// CategorySummary resumo da categoria projetado nas respostas de produto.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductResponse saída de um produto com o resumo da categoria.
type ProductResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	Barcode     string           `json:"barcode,omitempty"`
	CategoryID  string           `json:"categoryId"`
	Category    *CategorySummary `json:"category,omitempty"`
	Active      bool             `json:"active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}
