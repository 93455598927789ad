package email

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// ConsoleMailer logs messages instead of delivering them. Used in
// development and in tests, where SentMessages can be inspected.
type ConsoleMailer struct {
	config Config
	logger zerolog.Logger

	mu   sync.Mutex
	sent []Message
}

var _ Mailer = (*ConsoleMailer)(nil)

// NewConsoleMailer creates a console-backed mailer
func NewConsoleMailer(cfg Config, lgr zerolog.Logger) *ConsoleMailer {
	return &ConsoleMailer{config: cfg, logger: lgr}
}

// Send logs the message and records it
func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	m.logger.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("bodyBytes", len(msg.HTMLBody)).
		Msg("Console mailer: message not delivered")

	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

// SentMessages returns a copy of everything sent so far
func (m *ConsoleMailer) SentMessages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
