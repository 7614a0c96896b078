package mailer

import (
	"errors"

	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("mailer: SMTP host is not configured")

type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Sender   string
}

type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to []string, subject, htmlBody string) error {
	if m.cfg.Host == "" {
		return ErrNotConfigured
	}
	if len(to) == 0 {
		return errors.New("mailer: no recipients")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Sender)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return dialer.DialAndSend(msg)
}
