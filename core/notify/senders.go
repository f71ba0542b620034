package notify

import (
	"context"
	"fmt"

	"careconnect-api/core/config"
	"careconnect-api/core/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type sendgridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func newSendgridSender(cfg config.SendgridConfig) *sendgridSender {
	return &sendgridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendgridSender) SendEmail(ctx context.Context, to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.Error("Notify:SendEmail:Sendgrid", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.Error("Notify:SendEmail:Sendgrid", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

func (s *sendgridSender) SendSMS(ctx context.Context, to, body string) error {
	return fmt.Errorf("sendgrid sender does not support SMS")
}

type twilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func newTwilioSender(cfg config.TwilioConfig) *twilioSender {
	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		}),
		fromNumber: cfg.FromNumber,
	}
}

func (s *twilioSender) SendEmail(ctx context.Context, to, subject, body string) error {
	return fmt.Errorf("twilio sender does not support email")
}

func (s *twilioSender) SendSMS(ctx context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		logger.Error("Notify:SendSMS:Twilio", err)
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
