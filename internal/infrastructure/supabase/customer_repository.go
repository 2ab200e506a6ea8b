package supabase

import (
	"fmt"
	"net/url"
	"time"

	"github.com/seu-usuario/farmacia-api/internal/domain"
	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

var (
	_ repository.CustomerRepository   = (*CustomerRepo)(nil)
	_ repository.CredentialRepository = (*CustomerRepo)(nil)
)

// CustomerRepo implementação da API de tabelas para CustomerRepository e
// CredentialRepository.
type CustomerRepo struct {
	client *Client
}

// NewCustomerRepository constrói o adaptador.
func NewCustomerRepository(client *Client) *CustomerRepo {
	return &CustomerRepo{client: client}
}

// customerSelect omite a coluna password; só FindActiveByEmail e
// PasswordHash a leem.
const customerSelect = "id,name,email,phone,cpf,address,birth_date,active,created_at,updated_at"

// List devolve a página de clientes ativos por nome e o total (count=exact).
func (r *CustomerRepo) List(filter repository.CustomerFilter) ([]*entity.Customer, int, error) {
	q := url.Values{}
	q.Set("select", customerSelect)
	q.Set("active", "eq.true")
	if filter.Search != "" {
		pattern := ilikePattern(filter.Search)
		q.Set("or", fmt.Sprintf("(name.ilike.%s,email.ilike.%s,phone.like.%s,cpf.like.%s)",
			pattern, pattern, pattern, pattern))
	}
	q.Set("order", "name.asc")
	rangeQuery(q, filter.Limit, filter.Offset)

	var rows []customerRow
	total, err := r.client.Select("customers", q, &rows, true)
	if err != nil {
		return nil, 0, err
	}
	list := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		list = append(list, toCustomerEntity(&rows[i]))
	}
	return list, total, nil
}

func (r *CustomerRepo) getOne(q url.Values) (*entity.Customer, error) {
	q.Set("limit", "1")
	var rows []customerRow
	if _, err := r.client.Select("customers", q, &rows, false); err != nil {
		if IsInvalidID(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return toCustomerEntity(&rows[0]), nil
}

// GetByID devolve o cliente em qualquer status, sem o hash de senha.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	q := url.Values{}
	q.Set("select", customerSelect)
	q.Set("id", "eq."+id)
	return r.getOne(q)
}

// GetByEmail devolve o cliente ativo com esse email (escopo da unicidade).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	q := url.Values{}
	q.Set("select", customerSelect)
	q.Set("email", "eq."+email)
	q.Set("active", "eq.true")
	return r.getOne(q)
}

// GetByCPF devolve o cliente ativo com esse CPF (escopo da unicidade).
func (r *CustomerRepo) GetByCPF(cpf string) (*entity.Customer, error) {
	q := url.Values{}
	q.Set("select", customerSelect)
	q.Set("cpf", "eq."+cpf)
	q.Set("active", "eq.true")
	return r.getOne(q)
}

// Create insere um novo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	body := map[string]any{
		"id":         customer.ID,
		"name":       customer.Name,
		"email":      nullif(customer.Email),
		"phone":      nullif(customer.Phone),
		"cpf":        nullif(customer.CPF),
		"address":    nullif(customer.Address),
		"birth_date": birthDateString(customer.BirthDate),
		"password":   nullif(customer.PasswordHash),
		"active":     customer.Active,
		"created_at": customer.CreatedAt,
		"updated_at": customer.UpdatedAt,
	}
	var rows []customerRow
	if err := r.client.Insert("customers", []any{body}, &rows); err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// Update aplica o patch do cliente (senha só muda via UpdatePassword).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	q := url.Values{}
	q.Set("id", "eq."+customer.ID)
	body := map[string]any{
		"name":       customer.Name,
		"email":      nullif(customer.Email),
		"phone":      nullif(customer.Phone),
		"cpf":        nullif(customer.CPF),
		"address":    nullif(customer.Address),
		"birth_date": birthDateString(customer.BirthDate),
		"updated_at": customer.UpdatedAt,
	}
	if err := r.client.Update("customers", q, body); err != nil {
		if IsUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete marca o cliente como inativo.
func (r *CustomerRepo) Delete(id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return r.client.Update("customers", q, map[string]any{
		"active":     false,
		"updated_at": time.Now(),
	})
}

// FindActiveByEmail devolve o cliente ativo com o hash preenchido (login).
func (r *CustomerRepo) FindActiveByEmail(email string) (*entity.Customer, error) {
	q := url.Values{}
	q.Set("email", "eq."+email)
	q.Set("active", "eq.true")
	return r.getOne(q)
}

// PasswordHash devolve o hash do cliente, ou "" se a linha não existe.
func (r *CustomerRepo) PasswordHash(id string) (string, error) {
	q := url.Values{}
	q.Set("select", "password")
	q.Set("id", "eq."+id)
	q.Set("limit", "1")
	var rows []customerRow
	if _, err := r.client.Select("customers", q, &rows, false); err != nil {
		if IsInvalidID(err) {
			return "", nil
		}
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return strval(rows[0].Password), nil
}

// UpdatePassword persiste o novo hash e atualiza updated_at.
func (r *CustomerRepo) UpdatePassword(id, hash string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return r.client.Update("customers", q, map[string]any{
		"password":   hash,
		"updated_at": time.Now(),
	})
}
