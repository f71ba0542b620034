package notify

import (
	"context"

	"careconnect-api/core/config"
	"careconnect-api/core/logger"
)

// Sender delivers transactional messages. Delivery itself is an external
// concern; the rest of the codebase only sees this interface.
type Sender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, to, body string) error
}

// NewSenderFromConfig wires sendgrid/twilio when credentials are present and
// falls back to a log-only sender otherwise, so local development works
// without provider accounts.
func NewSenderFromConfig(cfg *config.Config) Sender {
	s := &compositeSender{}

	if cfg.Sendgrid.APIKey != "" {
		s.email = newSendgridSender(cfg.Sendgrid)
	} else {
		logger.Info("Notify:NewSenderFromConfig", "email", "sendgrid not configured, logging only")
	}
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" {
		s.sms = newTwilioSender(cfg.Twilio)
	} else {
		logger.Info("Notify:NewSenderFromConfig", "sms", "twilio not configured, logging only")
	}

	return s
}

type compositeSender struct {
	email Sender
	sms   Sender
}

func (s *compositeSender) SendEmail(ctx context.Context, to, subject, body string) error {
	if s.email == nil {
		logger.Info("Notify:SendEmail:Skipped", "to", to, "subject", subject)
		return nil
	}
	return s.email.SendEmail(ctx, to, subject, body)
}

func (s *compositeSender) SendSMS(ctx context.Context, to, body string) error {
	if s.sms == nil {
		logger.Info("Notify:SendSMS:Skipped", "to", to)
		return nil
	}
	return s.sms.SendSMS(ctx, to, body)
}
