package mailing

import (
	"SaveBite/internal/utils"
	"context"
	"fmt"
	"html"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer delivers expiry reminders over SMTP.
type Mailer struct {
	config MailConfig
	dialer dialer
}

func NewMailer(config MailConfig) (*Mailer, error) {
	port, err := strconv.Atoi(config.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", config.SMTPPort, err)
	}

	return &Mailer{
		config: config,
		dialer: gomail.NewDialer(
			config.SMTPHost,
			port,
			config.SMTPEmail,
			config.SMTPPassword,
		),
	}, nil
}

func (m *Mailer) Send(ctx context.Context, toEmail string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.dialer.DialAndSend(m.buildMessage(toEmail, subject, body))
}

func (m *Mailer) buildMessage(toEmail, subject, body string) *gomail.Message {
	mailer := gomail.NewMessage()
	if m.config.SMTPSender != "" {
		mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	} else {
		mailer.SetHeader("From", m.config.SMTPEmail)
	}
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/plain", body)
	mailer.AddAlternative("text/html", reminderHTML(subject, body))
	return mailer
}

func reminderHTML(subject, body string) string {
	var b strings.Builder
	b.WriteString("<h3>")
	b.WriteString(html.EscapeString(subject))
	b.WriteString("</h3><p>")
	b.WriteString(html.EscapeString(body))
	b.WriteString("</p>")
	return b.String()
}
