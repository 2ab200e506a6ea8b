package usecase_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/seu-usuario/farmacia-api/internal/domain/entity"
	"github.com/seu-usuario/farmacia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks dos portos de repositório
// ──────────────────────────────────────────────────────────────────────────────

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) List() ([]*entity.Category, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) GetByName(name string) (*entity.Category, error) {
	args := m.Called(name)
	if v := args.Get(0); v != nil {
		return v.(*entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryRepo) Create(category *entity.Category) error {
	return m.Called(category).Error(0)
}

func (m *mockCategoryRepo) Update(category *entity.Category) error {
	return m.Called(category).Error(0)
}

func (m *mockCategoryRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockCategoryRepo) CountActiveProducts(id string) (int, error) {
	args := m.Called(id)
	return args.Int(0), args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, int, error) {
	args := m.Called(filter)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Product), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockProductRepo) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	args := m.Called(barcode)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Create(product *entity.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepo) Update(product *entity.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) List(filter repository.CustomerFilter) ([]*entity.Customer, int, error) {
	args := m.Called(filter)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Customer), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	args := m.Called(email)
	if v := args.Get(0); v != nil {
		return v.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) GetByCPF(cpf string) (*entity.Customer, error) {
	args := m.Called(cpf)
	if v := args.Get(0); v != nil {
		return v.(*entity.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) Create(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *mockCustomerRepo) Update(customer *entity.Customer) error {
	return m.Called(customer).Error(0)
}

func (m *mockCustomerRepo) Delete(id string) error {
	return m.Called(id).Error(0)
}
