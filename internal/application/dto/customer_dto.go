package dto

import "time"

// CreateCustomerRequest entrada para criar um cliente (sem credenciais;
// registro com senha acontece em /auth/register).
type CreateCustomerRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,min=8,max=20"`
	CPF       string `json:"cpf" validate:"omitempty,min=11,max=14"`
	Address   string `json:"address" validate:"omitempty,max=200"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateCustomerRequest entrada para atualizar um cliente (campos opcionais).
type UpdateCustomerRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=8,max=20"`
	CPF       *string `json:"cpf" validate:"omitempty,min=11,max=14"`
	Address   *string `json:"address" validate:"omitempty,max=200"`
	BirthDate *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

// CustomerResponse saída de um cliente. Nunca inclui o hash de senha.
type CustomerResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CPF       string     `json:"cpf,omitempty"`
	Address   string     `json:"address,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Data       []CustomerResponse `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
