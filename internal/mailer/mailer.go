package mailer

import (
	"strconv"

	"github.com/rohits-web03/usefulutilities/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers a single plain-text message. The account services only
// need this much of a mail transport.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through the SMTP account configured in the
// environment. Credentials are read once at startup and never validated;
// a missing password simply fails at send time.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:   cfg.User,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
