package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
)

// Mailer delivers account mail.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTP delivers account mail through a plain SMTP relay.
type SMTP struct {
	addr string
	from string
}

// New returns an SMTP mailer, or a log-only mailer when no host is
// configured.
func New(host, port, from string) Mailer {
	if host == "" {
		return LogMailer{}
	}
	return &SMTP{addr: host + ":" + port, from: from}
}

// Send delivers one message.
func (m *SMTP) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogMailer writes outgoing mail to the log instead of delivering it.
// Used in development when no SMTP relay is configured.
type LogMailer struct{}

// Send implements the mailer contract by logging the message.
func (LogMailer) Send(to, subject, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("mail delivery skipped (no SMTP host configured)")
	return nil
}
