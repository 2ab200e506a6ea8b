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

var (
	_ repository.CustomerRepository   = (*CustomerRepo)(nil)
	_ repository.CredentialRepository = (*CustomerRepo)(nil)
)

// CustomerRepo implementação pgx de CustomerRepository e CredentialRepository
// (clientes e credenciais vivem na mesma tabela).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `
	id, name, email, phone, cpf, address, birth_date, active, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var email, phone, cpf, address *string
	err := row.Scan(&c.ID, &c.Name, &email, &phone, &cpf, &address,
		&c.BirthDate, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Email = strval(email)
	c.Phone = strval(phone)
	c.CPF = strval(cpf)
	c.Address = strval(address)
	return &c, nil
}

// List devolve a página de clientes ativos, ordenados por nome, e o total
// que casa o filtro. Página e contagem saem em paralelo.
func (r *CustomerRepo) List(filter repository.CustomerFilter) ([]*entity.Customer, int, error) {
	where := `
		WHERE active
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%'
		       OR email ILIKE '%' || $1 || '%'
		       OR phone LIKE '%' || $1 || '%'
		       OR cpf LIKE '%' || $1 || '%')`

	var (
		list  []*entity.Customer
		total int
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		query := `
			SELECT ` + customerColumns + `
			FROM customers` + where + `
			ORDER BY name ASC
			LIMIT $2 OFFSET $3`
		rows, err := r.q.Query(ctx, query, filter.Search, filter.Limit, filter.Offset)
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			c, err := scanCustomer(rows)
			if err != nil {
				return fmt.Errorf("scan customer: %w", err)
			}
			list = append(list, c)
		}
		return rows.Err()
	})
	g.Go(func() error {
		query := `SELECT COUNT(*)::int FROM customers` + where
		if err := r.q.QueryRow(ctx, query, filter.Search).Scan(&total); err != nil {
			return fmt.Errorf("count customers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// GetByID devolve o cliente em qualquer status, sem o hash de senha.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByEmail devolve o cliente ativo com esse email (escopo da unicidade).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1 AND active`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return c, nil
}

// GetByCPF devolve o cliente ativo com esse CPF (escopo da unicidade).
func (r *CustomerRepo) GetByCPF(cpf string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE cpf = $1 AND active`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by cpf: %w", err)
	}
	return c, nil
}

// Create persiste um novo cliente (com hash de senha quando registrado via auth).
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, cpf, address, birth_date, password, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullif(customer.Email), nullif(customer.Phone),
		nullif(customer.CPF), nullif(customer.Address), customer.BirthDate,
		nullif(customer.PasswordHash), customer.Active, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update atualiza o cliente (o hash de senha só muda via UpdatePassword).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, cpf = $5, address = $6, birth_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullif(customer.Email), nullif(customer.Phone),
		nullif(customer.CPF), nullif(customer.Address), customer.BirthDate, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete marca o cliente como inativo (a linha permanece consultável).
func (r *CustomerRepo) Delete(id string) error {
	query := `UPDATE customers SET active = FALSE, updated_at = NOW() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// FindActiveByEmail devolve o cliente ativo com o hash preenchido (login).
func (r *CustomerRepo) FindActiveByEmail(email string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, cpf, address, birth_date, password, active, created_at, updated_at
		FROM customers WHERE email = $1 AND active`
	var c entity.Customer
	var em, phone, cpf, address, password *string
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&c.ID, &c.Name, &em, &phone, &cpf, &address, &c.BirthDate,
		&password, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find credential by email: %w", err)
	}
	c.Email = strval(em)
	c.Phone = strval(phone)
	c.CPF = strval(cpf)
	c.Address = strval(address)
	c.PasswordHash = strval(password)
	return &c, nil
}

// PasswordHash devolve o hash do cliente, ou "" se a linha não existe.
func (r *CustomerRepo) PasswordHash(id string) (string, error) {
	var password *string
	err := r.q.QueryRow(context.Background(),
		`SELECT password FROM customers WHERE id = $1`, id,
	).Scan(&password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return "", nil
		}
		return "", fmt.Errorf("get password hash: %w", err)
	}
	return strval(password), nil
}

// UpdatePassword persiste o novo hash e atualiza updated_at.
func (r *CustomerRepo) UpdatePassword(id, hash string) error {
	query := `UPDATE customers SET password = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, hash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
