package repository

import "github.com/seu-usuario/farmacia-api/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category.
// GetByID devolve a linha em qualquer status (o caso de uso decide sobre
// Active); GetByName só enxerga ativas, porque a unicidade do nome vale
// apenas entre categorias ativas. Métodos devolvem (nil, nil) quando a
// linha não existe.
type CategoryRepository interface {
	List() ([]*entity.Category, error)
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	Create(category *entity.Category) error
	Update(category *entity.Category) error
	Delete(id string) error // soft delete: active=false
	CountActiveProducts(id string) (int, error)
}
