// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"greenscape_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadSubmitted is published when a new lead is scored and persisted.
type LeadSubmitted struct {
	BaseEvent
	LeadID       uuid.UUID `json:"leadId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ServiceName  string    `json:"serviceName,omitempty"`
	LocationName string    `json:"locationName,omitempty"`
	Tier         string    `json:"tier,omitempty"`
	Score        int       `json:"score"`
}

func (e LeadSubmitted) EventName() string { return "leads.lead.submitted" }

// LeadStatusChanged is published when an operator moves a lead through the pipeline.
type LeadStatusChanged struct {
	BaseEvent
	LeadID     uuid.UUID `json:"leadId"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
}

func (e LeadStatusChanged) EventName() string { return "leads.lead.status_changed" }
