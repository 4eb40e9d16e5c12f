// Package mail delivers outbound notifications. Delivery is best-effort:
// the auth flows must succeed even when the provider is down, so dispatch is
// asynchronous and failures are only logged.
package mail

import (
	"go.uber.org/zap"

	"driveconn/app/config"
	"driveconn/app/observability/logger"
)

type Email struct {
	Subject string
	Body    string
	HTML    string
	From    string
	To      []string
}

type Mailer interface {
	SendMail(e *Email) error
}

// NewMailer selects the provider from configuration. Anything other than
// "mailgun" falls back to plain SMTP.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.MailProvider == "mailgun" {
		return NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunAPIBase)
	}
	return NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
}

// Dispatch sends e on its own goroutine. Errors never reach the caller.
func Dispatch(m Mailer, e *Email) {
	go func() {
		if err := m.SendMail(e); err != nil {
			logger.Named("mail").Warn("failed to send email notification",
				zap.String("subject", e.Subject),
				zap.Error(err),
			)
		}
	}()
}
