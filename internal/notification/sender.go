// Package notification delivers operator alerts for newly submitted leads.
// It subscribes to lead events rather than being called by the leads module,
// so intake never blocks on SMTP.
package notification

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"greenscape_backend/platform/config"
	"greenscape_backend/platform/logger"
)

// LeadAlert is the payload rendered into the operator email.
type LeadAlert struct {
	LeadID       string
	Name         string
	Email        string
	Phone        string
	ServiceName  string
	LocationName string
	Tier         string
	Score        int
}

// Sender delivers a lead alert to the operator inbox.
type Sender interface {
	SendLeadAlert(ctx context.Context, alert LeadAlert) error
}

// SMTPSender sends alerts over SMTP using go-mail.
type SMTPSender struct {
	cfg config.EmailConfig
	log *logger.Logger
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTP-backed sender.
func NewSMTPSender(cfg config.EmailConfig, log *logger.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log}
}

// SendLeadAlert builds and sends the alert email. A fresh client is dialed
// per message; lead volume is low enough that connection reuse is not worth
// the state.
func (s *SMTPSender) SendLeadAlert(ctx context.Context, alert LeadAlert) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.cfg.GetEmailFromName(), s.cfg.GetEmailFromAddress()); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(s.cfg.GetLeadAlertRecipient()); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	msg.Subject(fmt.Sprintf("New lead: %s (score %d)", alert.Name, alert.Score))

	body, err := renderLeadAlert(alert)
	if err != nil {
		return fmt.Errorf("render alert: %w", err)
	}
	msg.SetBodyString(mail.TypeTextHTML, body)
	msg.AddAlternativeString(mail.TypeTextPlain, renderLeadAlertText(alert))

	client, err := mail.NewClient(s.cfg.GetSMTPHost(),
		mail.WithPort(s.cfg.GetSMTPPort()),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.GetSMTPUsername()),
		mail.WithPassword(s.cfg.GetSMTPPassword()),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send lead alert: %w", err)
	}
	return nil
}

// NoopSender drops alerts. Used when SMTP is not configured so the rest of
// the app behaves identically in development.
type NoopSender struct {
	log *logger.Logger
}

var _ Sender = (*NoopSender)(nil)

// NewNoopSender creates a sender that only logs.
func NewNoopSender(log *logger.Logger) *NoopSender {
	return &NoopSender{log: log}
}

// SendLeadAlert logs the alert instead of sending it.
func (s *NoopSender) SendLeadAlert(_ context.Context, alert LeadAlert) error {
	s.log.Info("lead alert (email disabled)", "leadId", alert.LeadID, "score", alert.Score)
	return nil
}
