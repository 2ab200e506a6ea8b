package gormdb

import (
	"errors"
	"fmt"
	"time"

	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
	"gorm.io/gorm"
)

var (
	_ repository.CustomerRepository   = (*CustomerRepo)(nil)
	_ repository.CredentialRepository = (*CustomerRepo)(nil)
)

// CustomerRepo implementação GORM de CustomerRepository e CredentialRepository.
type CustomerRepo struct {
	db *gorm.DB
}

// NewCustomerRepository constrói o adaptador.
func NewCustomerRepository(db *gorm.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) filtered(filter repository.CustomerFilter) *gorm.DB {
	query := r.db.Model(&Customer{}).Where("active = ?", true)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR phone LIKE ? OR cpf LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}

// List devolve a página de clientes ativos (por nome) e o total do filtro.
func (r *CustomerRepo) List(filter repository.CustomerFilter) ([]*entity.Customer, int, error) {
	var total int64
	if err := r.filtered(filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	var models []Customer
	err := r.filtered(filter).
		Order("name ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}

	list := make([]*entity.Customer, 0, len(models))
	for i := range models {
		c := toCustomerEntity(&models[i])
		c.PasswordHash = ""
		list = append(list, c)
	}
	return list, int(total), nil
}

// GetByID devolve o cliente em qualquer status, sem o hash de senha.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var model Customer
	if err := r.db.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c := toCustomerEntity(&model)
	c.PasswordHash = ""
	return c, nil
}

// GetByEmail devolve o cliente ativo com esse email (escopo da unicidade).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	var model Customer
	if err := r.db.First(&model, "email = ? AND active = ?", email, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	c := toCustomerEntity(&model)
	c.PasswordHash = ""
	return c, nil
}

// GetByCPF devolve o cliente ativo com esse CPF (escopo da unicidade).
func (r *CustomerRepo) GetByCPF(cpf string) (*entity.Customer, error) {
	var model Customer
	if err := r.db.First(&model, "cpf = ? AND active = ?", cpf, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by cpf: %w", err)
	}
	c := toCustomerEntity(&model)
	c.PasswordHash = ""
	return c, nil
}

// Create persiste um novo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	if err := r.db.Create(fromCustomerEntity(customer)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update atualiza o cliente (o hash de senha só muda via UpdatePassword).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	err := r.db.Model(&Customer{}).Where("id = ?", customer.ID).Updates(map[string]any{
		"name":       customer.Name,
		"email":      nullif(customer.Email),
		"phone":      nullif(customer.Phone),
		"cpf":        nullif(customer.CPF),
		"address":    nullif(customer.Address),
		"birth_date": customer.BirthDate,
		"updated_at": customer.UpdatedAt,
	}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete marca o cliente como inativo (a linha permanece consultável).
func (r *CustomerRepo) Delete(id string) error {
	err := r.db.Model(&Customer{}).Where("id = ?", id).Updates(map[string]any{
		"active":     false,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// FindActiveByEmail devolve o cliente ativo com o hash preenchido (login).
func (r *CustomerRepo) FindActiveByEmail(email string) (*entity.Customer, error) {
	var model Customer
	if err := r.db.First(&model, "email = ? AND active = ?", email, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find credential by email: %w", err)
	}
	return toCustomerEntity(&model), nil
}

// PasswordHash devolve o hash do cliente, ou "" se a linha não existe.
func (r *CustomerRepo) PasswordHash(id string) (string, error) {
	var model Customer
	if err := r.db.Select("password").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get password hash: %w", err)
	}
	return strval(model.Password), nil
}

// UpdatePassword persiste o novo hash e atualiza updated_at.
func (r *CustomerRepo) UpdatePassword(id, hash string) error {
	err := r.db.Model(&Customer{}).Where("id = ?", id).Updates(map[string]any{
		"password":   hash,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
