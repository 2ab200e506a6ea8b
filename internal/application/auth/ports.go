package auth

// Mailer é o colaborador de notificação do reset de senha. A senha
// temporária sai por aqui, nunca no corpo da resposta HTTP.
type Mailer interface {
	SendTemporaryPassword(to, name, tempPassword string) error
}
