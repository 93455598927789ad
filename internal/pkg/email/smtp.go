package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// SMTPMailer delivers mail through a plain SMTP server.
type SMTPMailer struct {
	config Config
	logger zerolog.Logger
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates an SMTP-backed mailer
func NewSMTPMailer(cfg Config, lgr zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{config: cfg, logger: lgr}
}

// Send delivers a single HTML message
func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.config.FromName, m.config.FromEmail),
		"To":           msg.To,
		"Subject":      msg.Subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + msg.HTMLBody

	serverAddress := m.config.Host + ":" + strconv.Itoa(m.config.Port)

	if m.config.UseTLS {
		return m.sendTLS(serverAddress, auth, msg.To, message)
	}

	if err := smtp.SendMail(serverAddress, auth, m.config.FromEmail, []string{msg.To}, []byte(message)); err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Str("to", msg.To).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (m *SMTPMailer) sendTLS(serverAddress string, auth smtp.Auth, to, message string) error {
	tlsConfig := &tls.Config{
		ServerName: m.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		m.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return nil
}
