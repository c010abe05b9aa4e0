package transport

import "github.com/google/uuid"

// SubmitLeadRequest is the public quote-form submission. Name and contact
// details are required by the form; everything else improves the score but
// is optional.
type SubmitLeadRequest struct {
	Name           string     `json:"name" validate:"required,min=2,max=200"`
	Email          string     `json:"email" validate:"required,email,max=254"`
	Phone          string     `json:"phone" validate:"required,min=7,max=32"`
	Address        string     `json:"address" validate:"required,min=5,max=300"`
	City           string     `json:"city" validate:"omitempty,max=120"`
	Zip            string     `json:"zip" validate:"omitempty,max=16"`
	ServiceID      *uuid.UUID `json:"serviceId" validate:"omitempty"`
	LocationID     *uuid.UUID `json:"locationId" validate:"omitempty"`
	Tier           string     `json:"tier" validate:"omitempty,oneof=good better best standard"`
	Frequency      string     `json:"frequency" validate:"omitempty,oneof=once weekly biweekly monthly"`
	LotSizeBracket string     `json:"lotSize" validate:"omitempty,oneof=small medium large xlarge"`
	Notes          string     `json:"notes" validate:"omitempty,max=2000"`
}

// PreviewScoreRequest carries the same signals as a submission but with
// nothing required, so the form can show a live score while the prospect
// is still typing.
type PreviewScoreRequest struct {
	Name           string     `json:"name" validate:"omitempty,max=200"`
	Email          string     `json:"email" validate:"omitempty,max=254"`
	Phone          string     `json:"phone" validate:"omitempty,max=32"`
	Address        string     `json:"address" validate:"omitempty,max=300"`
	City           string     `json:"city" validate:"omitempty,max=120"`
	Zip            string     `json:"zip" validate:"omitempty,max=16"`
	ServiceID      *uuid.UUID `json:"serviceId" validate:"omitempty"`
	LocationID     *uuid.UUID `json:"locationId" validate:"omitempty"`
	Tier           string     `json:"tier" validate:"omitempty,oneof=good better best standard"`
	Frequency      string     `json:"frequency" validate:"omitempty,oneof=once weekly biweekly monthly"`
	LotSizeBracket string     `json:"lotSize" validate:"omitempty,oneof=small medium large xlarge"`
	Notes          string     `json:"notes" validate:"omitempty,max=2000"`
}

// ScoreFactorResponse is one scored signal in a preview breakdown.
type ScoreFactorResponse struct {
	Signal string `json:"signal"`
	Points int    `json:"points"`
}

// PreviewScoreResponse is the live score estimate for a partial form.
type PreviewScoreResponse struct {
	Score   int                   `json:"score"`
	Factors []ScoreFactorResponse `json:"factors"`
}

// LeadResponse is the full lead view returned to the admin dashboard. The
// public submission endpoint returns it too, minus nothing: there is no
// sensitive field on a lead beyond what the prospect themselves sent.
type LeadResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
	Zip            *string `json:"zip,omitempty"`
	ServiceID      *string `json:"serviceId,omitempty"`
	LocationID     *string `json:"locationId,omitempty"`
	Tier           *string `json:"tier,omitempty"`
	Frequency      *string `json:"frequency,omitempty"`
	LotSizeBracket *string `json:"lotSize,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Score          int     `json:"score"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// LeadListResponse pages the admin lead list.
type LeadListResponse struct {
	Leads  []LeadResponse `json:"leads"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// UpdateLeadStatusRequest moves a lead through the pipeline.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted quoted booked completed lost"`
}
