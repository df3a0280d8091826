// Package mailer отправляет письма с контактной формы через SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"AgenciaContable/internal/config"
)

// ErrNotConfigured — SMTP не настроен, сообщение только сохранено в базе.
var ErrNotConfigured = errors.New("mailer: smtp not configured")

// sender — то, что нужно от *mail.Client; в тестах подменяется.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Mailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	logger   *slog.Logger

	dial func() (sender, error)
}

// New берёт настройки SMTP из конфигурации; клиент создаётся на каждую отправку.
func New(cfg *config.Config, logger *slog.Logger) *Mailer {
	m := &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		logger:   logger,
	}
	if m.from == "" {
		m.from = m.user
	}
	m.dial = m.newClient
	return m
}

// Configured — заданы host, user и password.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.user != "" && m.password != ""
}

func (m *Mailer) newClient() (sender, error) {
	return mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSMandatory), // STARTTLS обязателен
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
	)
}

// SendContact пересылает сообщение посетителя на адрес to.
func (m *Mailer) SendContact(ctx context.Context, to, name, email, message string) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	msg, err := m.contactMessage(to, name, email, message)
	if err != nil {
		return err
	}
	c, err := m.dial()
	if err != nil {
		return fmt.Errorf("mailer: client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	m.logger.Info("mailer: contact message sent", "to", to)
	return nil
}

func (m *Mailer) contactMessage(to, name, email, message string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("mailer: from %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("mailer: to %q: %w", to, err)
	}
	// адрес посетителя никто не проверял: кривой просто не попадает в Reply-To
	if err := msg.ReplyTo(email); err != nil {
		m.logger.Debug("mailer: skip reply-to", "email", email, "err", err)
	}
	msg.Subject("Nuevo mensaje de " + name)
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Nombre: %s\nEmail: %s\n\nMensaje:\n%s", name, email, message))
	return msg, nil
}
