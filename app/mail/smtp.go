package mail

import (
	gomail "github.com/go-mail/mail"
)

// SMTP sends over implicit TLS (port 465 style), matching a gmail-type
// relay setup.
type SMTP struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTP(host string, port int, username, password string) *SMTP {
	return &SMTP{
		host:     host,
		port:     port,
		username: username,
		password: password,
	}
}

func (s *SMTP) SendMail(e *Email) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", e.From)
	msg.SetHeader("To", e.To...)
	msg.SetHeader("Subject", e.Subject)
	if e.HTML != "" {
		msg.SetBody("text/html", e.HTML)
		if e.Body != "" {
			msg.AddAlternative("text/plain", e.Body)
		}
	} else {
		msg.SetBody("text/plain", e.Body)
	}

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	d.SSL = s.port == 465

	return d.DialAndSend(msg)
}
