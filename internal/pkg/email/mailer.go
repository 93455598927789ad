package email

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Message is one outbound email to a single recipient.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Mailer delivers a single message. Bulk sends iterate recipients and
// tally per-message outcomes at the call site.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Config selects and configures the mail backend.
type Config struct {
	Backend     string // smtp, sendgrid or console
	Host        string
	Port        int
	Username    string
	Password    string
	UseTLS      bool
	SendGridKey string
	FromName    string
	FromEmail   string
}

// NewMailer builds the Mailer selected by cfg.Backend.
func NewMailer(cfg Config, lgr zerolog.Logger) (Mailer, error) {
	switch cfg.Backend {
	case "smtp":
		return NewSMTPMailer(cfg, lgr), nil
	case "sendgrid":
		return NewSendGridMailer(cfg, lgr), nil
	case "console":
		return NewConsoleMailer(cfg, lgr), nil
	}
	return nil, fmt.Errorf("unknown mail backend %q", cfg.Backend)
}
