package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/farmacia-api/internal/application/dto"
	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. Email e CPF, quando
// informados, são únicos entre clientes ativos (cada um checado de forma
// independente).
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// List lista clientes ativos com busca opcional, ordenados por nome.
func (uc *CustomerUseCase) List(page, limit int, search string) (*dto.CustomerListResponse, error) {
	page, limit = normalizePage(page, limit)
	list, total, err := uc.customers.List(repository.CustomerFilter{
		Search: search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *ToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Data:       items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// GetByID devolve o cliente ativo.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.Active {
		return nil, domain.ErrCustomerNotFound
	}
	return ToCustomerResponse(customer), nil
}

// Create cria um cliente após checar as unicidades de email e CPF.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Email != "" {
		existing, err := uc.customers.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}
	if in.CPF != "" {
		existing, err := uc.customers.GetByCPF(in.CPF)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrCPFTaken
		}
	}
	birthDate, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CPF:       in.CPF,
		Address:   in.Address,
		BirthDate: birthDate,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, mapCustomerDuplicate(err)
	}
	return ToCustomerResponse(customer), nil
}

// Update atualiza só os campos fornecidos; email e CPF novos passam de
// novo pelas checagens de unicidade.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil || !customer.Active {
		return nil, domain.ErrCustomerNotFound
	}
	if in.Email != nil && *in.Email != customer.Email {
		if *in.Email != "" {
			existing, err := uc.customers.GetByEmail(*in.Email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrEmailTaken
			}
		}
		customer.Email = *in.Email
	}
	if in.CPF != nil && *in.CPF != customer.CPF {
		if *in.CPF != "" {
			existing, err := uc.customers.GetByCPF(*in.CPF)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrCPFTaken
			}
		}
		customer.CPF = *in.CPF
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.BirthDate != nil {
		birthDate, err := parseBirthDate(*in.BirthDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		customer.BirthDate = birthDate
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(customer); err != nil {
		return nil, mapCustomerDuplicate(err)
	}
	return ToCustomerResponse(customer), nil
}

// Delete marca o cliente como inativo.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.customers.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil || !customer.Active {
		return domain.ErrCustomerNotFound
	}
	return uc.customers.Delete(id)
}

// parseBirthDate aceita data ISO-8601 (YYYY-MM-DD); vazio vira nil.
func parseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// mapCustomerDuplicate traduz a violação de constraint do banco para o
// erro de negócio (backstop da checagem read-then-write).
func mapCustomerDuplicate(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return domain.ErrEmailTaken
	}
	return err
}

// ToCustomerResponse projeta a entidade no DTO de saída, sem o hash.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CPF:       c.CPF,
		Address:   c.Address,
		BirthDate: c.BirthDate,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
