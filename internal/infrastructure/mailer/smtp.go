package mailer

import (
	"fmt"

	gomail "github.com/go-mail/mail"
	"github.com/seu-usuario/farmacia-api/internal/application/auth"
	"github.com/seu-usuario/farmacia-api/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envia a senha temporária do reset por email via SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer constrói o mailer a partir da configuração SMTP.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendTemporaryPassword envia a mensagem com a senha temporária.
func (m *SMTPMailer) SendTemporaryPassword(to, name, tempPassword string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Recuperação de senha")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Olá %s,\n\nSua senha temporária é: %s\n\nTroque a senha após o próximo login.\n",
		name, tempPassword,
	))
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar email de reset: %w", err)
	}
	return nil
}
