package email

import (
	"fairway_backend/internal/logger"
)

// NoopProvider is used when no SMTP host is configured. It logs instead
// of sending, so registration never depends on a mail server.
type NoopProvider struct{}

func (p *NoopProvider) Send(to, subject, _ string) error {
	logger.Debug("email sending disabled, dropping message", "to", to, "subject", subject)
	return nil
}
