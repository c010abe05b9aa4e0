package notification

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"greenscape_backend/internal/events"
	"greenscape_backend/platform/logger"
)

type captureSender struct {
	alerts []LeadAlert
}

func (c *captureSender) SendLeadAlert(_ context.Context, alert LeadAlert) error {
	c.alerts = append(c.alerts, alert)
	return nil
}

func TestSubscriberForwardsLeadSubmitted(t *testing.T) {
	sender := &captureSender{}
	sub := NewSubscriber(sender, logger.New("test"))

	leadID := uuid.New()
	event := events.LeadSubmitted{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      leadID,
		Name:        "Pat Jensen",
		Email:       "pat@example.com",
		Phone:       "+16125550100",
		ServiceName: "Lawn Mowing",
		Tier:        "better",
		Score:       95,
	}

	if err := sub.handleLeadSubmitted(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(sender.alerts))
	}
	alert := sender.alerts[0]
	if alert.LeadID != leadID.String() || alert.Score != 95 || alert.ServiceName != "Lawn Mowing" {
		t.Errorf("unexpected alert payload: %+v", alert)
	}
}

func TestRenderLeadAlertEscapesHTML(t *testing.T) {
	body, err := renderLeadAlert(LeadAlert{
		LeadID: uuid.NewString(),
		Name:   "<img src=x onerror=alert(1)>",
		Email:  "pat@example.com",
		Phone:  "+16125550100",
		Score:  40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(body, "<img") {
		t.Error("expected HTML in lead fields to be escaped")
	}
	if !strings.Contains(body, "40/100") {
		t.Error("expected score in body")
	}
}

func TestRenderLeadAlertTextOmitsEmptyFields(t *testing.T) {
	text := renderLeadAlertText(LeadAlert{
		LeadID: uuid.NewString(),
		Name:   "Pat",
		Email:  "pat@example.com",
		Phone:  "+16125550100",
		Score:  55,
	})
	if strings.Contains(text, "Service:") || strings.Contains(text, "Area:") {
		t.Errorf("expected empty fields omitted, got:\n%s", text)
	}
}
