package repository

import "github.com/seu-usuario/farmacia-api/internal/domain/entity"

// ProductFilter filtros de listagem de produtos. Search casa substring
// (case-insensitive) em name, description e barcode.
type ProductFilter struct {
	CategoryID string
	Search     string
	Limit      int
	Offset     int
}

// ProductRepository define o porto de persistência para Product.
// List devolve apenas ativos com a categoria projetada, ordenados por
// created_at desc, junto com o total que casa o filtro. GetByBarcode só
// enxerga ativos (unicidade escopada). (nil, nil) quando não existe.
type ProductRepository interface {
	List(filter ProductFilter) ([]*entity.Product, int, error)
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id string) error // soft delete: active=false
}
