package domain

import "errors"

// Erros de domínio (sem dependências externas). As mensagens são as que
// chegam ao cliente quando o handler as mapeia para HTTP.
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrCategoryNotFound    = errors.New("categoria não encontrada")
	ErrCustomerNotFound    = errors.New("cliente não encontrado")
	ErrCategoryNameTaken   = errors.New("nome da categoria já existe")
	ErrBarcodeTaken        = errors.New("código de barras já existe")
	ErrEmailTaken          = errors.New("email já cadastrado")
	ErrCPFTaken            = errors.New("CPF já cadastrado")
	ErrCategoryHasProducts = errors.New("não é possível excluir categoria com produtos ativos")
	ErrInvalidCredentials  = errors.New("email ou senha inválidos")
	ErrEmailNotFound       = errors.New("email não encontrado")
	ErrWrongPassword       = errors.New("senha atual inválida")
	ErrInvalidToken        = errors.New("token inválido ou expirado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
)
