package email

import (
	"context"
	"fmt"

	"freehunt_backend/internal/config"
	"freehunt_backend/internal/logger"

	gomail "gopkg.in/gomail.v2"
)

// Provider sends transactional mail. Delivery failures are logged by callers
// and never fail the triggering request.
type Provider interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpProvider struct {
	dialer *gomail.Dialer
	from   string
}

// NewProvider returns an SMTP-backed provider, or a no-op one when email is
// disabled in the config.
func NewProvider(cfg config.EmailConfig) Provider {
	if !cfg.Enabled {
		return noopProvider{}
	}
	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}
	return &smtpProvider{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
	}
}

func (p *smtpProvider) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", p.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(msg); err != nil {
		return err
	}
	logger.CtxDebug(ctx, "email sent", "to", to, "subject", subject)
	return nil
}

type noopProvider struct{}

func (noopProvider) Send(ctx context.Context, to, subject, _ string) error {
	logger.CtxDebug(ctx, "email disabled, skipping send", "to", to, "subject", subject)
	return nil
}
