package repository

import "github.com/seu-usuario/farmacia-api/internal/domain/entity"

// CustomerFilter filtros de listagem de clientes. Search casa substring
// (case-insensitive) em name, email, phone e cpf.
type CustomerFilter struct {
	Search string
	Limit  int
	Offset int
}

// CustomerRepository define o porto de persistência para Customer.
// GetByEmail e GetByCPF só enxergam ativos (unicidade escopada em
// active=true). (nil, nil) quando a linha não existe.
type CustomerRepository interface {
	List(filter CustomerFilter) ([]*entity.Customer, int, error)
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	GetByCPF(cpf string) (*entity.Customer, error)
	Create(customer *entity.Customer) error
	Update(customer *entity.Customer) error
	Delete(id string) error // soft delete: active=false
}
