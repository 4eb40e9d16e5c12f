package mail

import (
	"context"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

type Mailgun struct {
	domain  string
	apiKey  string
	apiBase string
}

func NewMailgun(domain, apiKey, apiBase string) *Mailgun {
	return &Mailgun{
		domain:  domain,
		apiKey:  apiKey,
		apiBase: apiBase,
	}
}

func (m *Mailgun) SendMail(e *Email) error {
	mg := mailgun.NewMailgun(m.domain, m.apiKey)
	if m.apiBase != "" {
		mg.SetAPIBase(m.apiBase)
	}

	message := mailgun.NewMessage(e.From, e.Subject, e.Body, e.To...)
	if e.HTML != "" {
		message.SetHTML(e.HTML)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	_, _, err := mg.Send(ctx, message)
	if err != nil {
		return err
	}

	return nil
}
