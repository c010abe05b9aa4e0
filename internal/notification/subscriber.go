package notification

import (
	"context"
	"fmt"

	"greenscape_backend/internal/events"
	"greenscape_backend/platform/logger"
)

// Subscriber forwards lead events to the operator inbox.
type Subscriber struct {
	sender Sender
	log    *logger.Logger
}

// NewSubscriber creates a notification subscriber.
func NewSubscriber(sender Sender, log *logger.Logger) *Subscriber {
	return &Subscriber{sender: sender, log: log}
}

// Register wires the subscriber to the event bus.
func (s *Subscriber) Register(bus events.Bus) {
	bus.Subscribe(events.LeadSubmitted{}.EventName(), events.HandlerFunc(s.handleLeadSubmitted))
}

func (s *Subscriber) handleLeadSubmitted(ctx context.Context, event events.Event) error {
	submitted, ok := event.(events.LeadSubmitted)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	alert := LeadAlert{
		LeadID:       submitted.LeadID.String(),
		Name:         submitted.Name,
		Email:        submitted.Email,
		Phone:        submitted.Phone,
		ServiceName:  submitted.ServiceName,
		LocationName: submitted.LocationName,
		Tier:         submitted.Tier,
		Score:        submitted.Score,
	}

	if err := s.sender.SendLeadAlert(ctx, alert); err != nil {
		// Alerting is best-effort: the lead is already persisted.
		s.log.Error("lead alert failed", "leadId", alert.LeadID, "error", err.Error())
		return err
	}
	return nil
}
