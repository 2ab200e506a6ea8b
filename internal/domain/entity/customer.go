package entity

import "time"

// Customer representa um cliente da farmácia. Email e CPF são opcionais,
// mas únicos entre clientes ativos quando informados. PasswordHash só é
// preenchido para clientes registrados via auth e nunca sai em respostas.
type Customer struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	CPF          string
	Address      string
	BirthDate    *time.Time
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
