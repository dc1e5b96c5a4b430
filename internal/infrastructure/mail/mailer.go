// Package mail implementa el envío de correos transaccionales por SMTP.
package mail

import (
	"github.com/tu-usuario/stockmaster/internal/application/auth"
	"github.com/tu-usuario/stockmaster/pkg/config"
	"github.com/tu-usuario/stockmaster/pkg/logger"
	"gopkg.in/gomail.v2"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer envía correos vía gomail. Si no hay SMTP_HOST configurado,
// escribe el correo en el log en vez de enviarlo (útil en desarrollo).
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// Send envía un correo de texto plano.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" {
		m.log.Info().
			Str("to", to).
			Str("subject", subject).
			Str("body", body).
			Msg("SMTP no configurado; correo escrito al log")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return d.DialAndSend(msg)
}
