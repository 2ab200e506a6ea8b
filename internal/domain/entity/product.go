package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do estoque da farmácia.
// Barcode é opcional (vazio = sem código); a unicidade vale só entre ativos.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Barcode     string
	CategoryID  string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Projeção de leitura: resumo da categoria resolvido no repositório.
	Category *Category
}
