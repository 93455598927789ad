package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendGridMailer delivers mail through the SendGrid v3 API.
type SendGridMailer struct {
	key    string
	from   *sgmail.Email
	logger zerolog.Logger
}

var _ Mailer = (*SendGridMailer)(nil)

// NewSendGridMailer creates a SendGrid-backed mailer
func NewSendGridMailer(cfg Config, lgr zerolog.Logger) *SendGridMailer {
	return &SendGridMailer{
		key:    cfg.SendGridKey,
		from:   sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
		logger: lgr,
	}
}

// Send delivers a single HTML message
func (m *SendGridMailer) Send(_ context.Context, msg Message) error {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.To))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(v3)

	res, err := sendgrid.API(req)
	if err != nil {
		m.logger.Error().Err(err).Str("to", msg.To).Msg("SendGrid request failed")
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		m.logger.Error().Int("status", res.StatusCode).Str("to", msg.To).Msg("SendGrid rejected message")
		return fmt.Errorf("sendgrid rejected message: status %d", res.StatusCode)
	}

	return nil
}
