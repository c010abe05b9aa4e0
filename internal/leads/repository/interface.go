package repository

import (
	"context"

	"github.com/google/uuid"

	"greenscape_backend/internal/leads/domain"
)

// Lead is a scored inbound prospect from the quote form.
type Lead struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Phone          string
	Address        *string
	City           *string
	Zip            *string
	ServiceID      *uuid.UUID
	LocationID     *uuid.UUID
	Tier           *string
	Frequency      *string
	LotSizeBracket *string
	Notes          *string
	Score          int
	Status         domain.LeadStatus
	CreatedAt      string
	UpdatedAt      string
}

// CreateLeadParams contains parameters for persisting a scored lead.
type CreateLeadParams struct {
	Name           string
	Email          string
	Phone          string
	Address        *string
	City           *string
	Zip            *string
	ServiceID      *uuid.UUID
	LocationID     *uuid.UUID
	Tier           *string
	Frequency      *string
	LotSizeBracket *string
	Notes          *string
	Score          int
}

// ListLeadsParams filters and pages the admin lead list.
type ListLeadsParams struct {
	Status   *domain.LeadStatus
	MinScore *int
	Limit    int
	Offset   int
}

// Repository provides lead persistence operations.
type Repository interface {
	CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error)
	GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error)
	ListLeads(ctx context.Context, params ListLeadsParams) ([]Lead, int, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status domain.LeadStatus) (Lead, error)
}
