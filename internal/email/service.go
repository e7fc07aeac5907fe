package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/chirosmith/portal-api/internal/config"
)

type Service interface {
	SendWelcome(ctx context.Context, email string, name string) error
}

// NewService returns the SMTP sender, or a no-op when SMTP is not configured
// so signups never depend on mail infrastructure being present.
func NewService(cfg config.SMTPConfig) Service {
	if cfg.Host == "" {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpService) SendWelcome(_ context.Context, email string, name string) error {
	if name == "" {
		name = "there"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to ChiroSmith")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour practitioner account has been created. You can now sign in to the portal.\n\nChiroSmith",
		name,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

type noopService struct{}

func (*noopService) SendWelcome(context.Context, string, string) error {
	return nil
}
