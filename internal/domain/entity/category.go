package entity

import "time"

// Category representa uma categoria de produtos da farmácia.
// Active é o marcador de soft delete: false significa excluída logicamente.
type Category struct {
	ID          string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Projeções de leitura (não persistidas na linha da categoria).
	ProductCount int        // quantidade de produtos ativos
	Products     []*Product // produtos ativos, preenchido em GetByID
}
