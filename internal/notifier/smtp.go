package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/promowatch/promo-tracker/internal/common"
)

// SMTPMailer delivers mail over plain SMTP with optional AUTH. No third-party
// client here: the digest needs exactly one recipient and one HTML body, which
// net/smtp covers.
type SMTPMailer struct {
	cfg common.MailConfig
}

func NewSMTPMailer(cfg common.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildMessage(m.cfg.From, m.cfg.To, subject, htmlBody)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{m.cfg.To}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", m.cfg.To, err)
	}
	return nil
}

func buildMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}
