package dto

import "time"

// CreateCategoryRequest entrada para criar uma categoria.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryRequest entrada para atualizar uma categoria (campos opcionais).
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// CategoryResponse saída de uma categoria. Products só é preenchido no GET por ID.
type CategoryResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Active       bool              `json:"active"`
	ProductCount int               `json:"product_count"`
	Products     []ProductResponse `json:"products,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// CategoryListResponse lista de categorias ativas (sem paginação).
type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
}
