package repository

import "github.com/seu-usuario/farmacia-api/internal/domain/entity"

// CredentialRepository define o porto de credenciais do fluxo de auth.
// É a única porta que devolve PasswordHash preenchido; as demais leituras
// de Customer nunca expõem o hash.
type CredentialRepository interface {
	// FindActiveByEmail devolve o cliente ativo com o hash de senha, ou (nil, nil).
	FindActiveByEmail(email string) (*entity.Customer, error)
	// PasswordHash devolve o hash do cliente, ou "" se a linha não existe.
	PasswordHash(id string) (string, error)
	// UpdatePassword persiste o novo hash e atualiza updated_at.
	UpdatePassword(id, hash string) error
}
