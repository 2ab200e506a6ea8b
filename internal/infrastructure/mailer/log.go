package mailer

import (
	"github.com/seu-usuario/farmacia-api/internal/application/auth"
	"github.com/seu-usuario/farmacia-api/pkg/logger"
)

var _ auth.Mailer = (*LogMailer)(nil)

// LogMailer substitui o SMTP em development: registra o destino no log
// sem expor a senha temporária.
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer constrói o mailer de log.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// SendTemporaryPassword só registra que a senha foi gerada.
func (m *LogMailer) SendTemporaryPassword(to, name, tempPassword string) error {
	m.log.Info().
		Str("to", to).
		Str("name", name).
		Msg("senha temporária gerada (SMTP desabilitado, email não enviado)")
	return nil
}
