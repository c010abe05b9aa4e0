package service

import (
	"context"

	"github.com/google/uuid"

	catalogrepo "greenscape_backend/internal/catalog/repository"
	"greenscape_backend/internal/events"
	"greenscape_backend/internal/leads/domain"
	"greenscape_backend/internal/leads/repository"
	"greenscape_backend/internal/leads/scoring"
	"greenscape_backend/internal/leads/transport"
	"greenscape_backend/platform/apperr"
	"greenscape_backend/platform/logger"
	"greenscape_backend/platform/phone"
	"greenscape_backend/platform/sanitize"
)

// CatalogReader is the slice of the catalog the lead flow needs: verifying
// the service/location a prospect selected and naming them in alerts.
type CatalogReader interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (catalogrepo.Service, error)
	GetLocationByID(ctx context.Context, id uuid.UUID) (catalogrepo.Location, error)
}

// Service owns lead intake, scoring and pipeline management.
type Service struct {
	repo    repository.Repository
	catalog CatalogReader
	bus     events.Bus
	log     *logger.Logger
}

// New creates a lead service.
func New(repo repository.Repository, catalog CatalogReader, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, catalog: catalog, bus: bus, log: log}
}

// PreviewScore computes the live score estimate for a partial form. It is
// the same function that scores the final submission, so the preview and
// the stored score can never disagree.
func (s *Service) PreviewScore(req transport.PreviewScoreRequest) *transport.PreviewScoreResponse {
	sub := scoring.Submission{
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Zip:         req.Zip,
		Notes:       req.Notes,
		Tier:        domain.Tier(req.Tier),
		Frequency:   domain.RecurringFrequency(req.Frequency),
		HasService:  req.ServiceID != nil,
		HasLocation: req.LocationID != nil,
	}

	score, factors := scoring.ScoreWithBreakdown(sub)
	resp := &transport.PreviewScoreResponse{Score: score, Factors: make([]transport.ScoreFactorResponse, 0, len(factors))}
	for _, f := range factors {
		resp.Factors = append(resp.Factors, transport.ScoreFactorResponse{Signal: f.Signal, Points: f.Points})
	}
	return resp
}

// Submit scores and persists a lead, then publishes a LeadSubmitted event
// for downstream alerting.
func (s *Service) Submit(ctx context.Context, req transport.SubmitLeadRequest) (*transport.LeadResponse, error) {
	name := sanitize.Text(req.Name)
	email := sanitize.Text(req.Email)
	normalizedPhone := phone.NormalizeE164(sanitize.Text(req.Phone))
	address := sanitize.Text(req.Address)
	city := sanitize.Text(req.City)
	zip := sanitize.Text(req.Zip)
	notes := sanitize.Text(req.Notes)

	var serviceName, locationName string
	if req.ServiceID != nil {
		svc, err := s.catalog.GetServiceByID(ctx, *req.ServiceID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return nil, apperr.Validation("unknown service")
			}
			return nil, err
		}
		serviceName = svc.Name
	}
	if req.LocationID != nil {
		loc, err := s.catalog.GetLocationByID(ctx, *req.LocationID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return nil, apperr.Validation("unknown location")
			}
			return nil, err
		}
		locationName = loc.Name
	}

	score := scoring.Score(scoring.Submission{
		Email:       email,
		Phone:       normalizedPhone,
		Address:     address,
		City:        city,
		Zip:         zip,
		Notes:       notes,
		Tier:        domain.Tier(req.Tier),
		Frequency:   domain.RecurringFrequency(req.Frequency),
		HasService:  req.ServiceID != nil,
		HasLocation: req.LocationID != nil,
	})

	lead, err := s.repo.CreateLead(ctx, repository.CreateLeadParams{
		Name:           name,
		Email:          email,
		Phone:          normalizedPhone,
		Address:        optional(address),
		City:           optional(city),
		Zip:            optional(zip),
		ServiceID:      req.ServiceID,
		LocationID:     req.LocationID,
		Tier:           optional(req.Tier),
		Frequency:      optional(req.Frequency),
		LotSizeBracket: optional(req.LotSizeBracket),
		Notes:          optional(notes),
		Score:          score,
	})
	if err != nil {
		return nil, err
	}

	s.log.LeadEvent("lead.submitted", lead.ID.String(), lead.Score)
	s.bus.Publish(ctx, events.LeadSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		ServiceName:  serviceName,
		LocationName: locationName,
		Tier:         req.Tier,
		Score:        lead.Score,
	})

	return toResponse(lead), nil
}

// GetByID retrieves one lead for the admin dashboard.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*transport.LeadResponse, error) {
	lead, err := s.repo.GetLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(lead), nil
}

// List retrieves leads for the admin dashboard, newest first.
func (s *Service) List(ctx context.Context, params repository.ListLeadsParams) (*transport.LeadListResponse, error) {
	leads, total, err := s.repo.ListLeads(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := &transport.LeadListResponse{
		Leads:  make([]transport.LeadResponse, 0, len(leads)),
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	for _, lead := range leads {
		resp.Leads = append(resp.Leads, *toResponse(lead))
	}
	return resp, nil
}

// UpdateStatus moves a lead through the pipeline, enforcing the allowed
// transitions.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, target domain.LeadStatus) (*transport.LeadResponse, error) {
	if !target.IsValid() {
		return nil, apperr.Validation("invalid status")
	}

	lead, err := s.repo.GetLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !lead.Status.CanTransition(target) {
		return nil, apperr.Conflict("cannot transition from " + string(lead.Status) + " to " + string(target))
	}

	updated, err := s.repo.UpdateLeadStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	s.log.LeadEvent("lead.status_changed", updated.ID.String(), updated.Score)
	s.bus.Publish(ctx, events.LeadStatusChanged{
		BaseEvent:  events.NewBaseEvent(),
		LeadID:     updated.ID,
		FromStatus: string(lead.Status),
		ToStatus:   string(target),
	})

	return toResponse(updated), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toResponse(lead repository.Lead) *transport.LeadResponse {
	resp := &transport.LeadResponse{
		ID:             lead.ID.String(),
		Name:           lead.Name,
		Email:          lead.Email,
		Phone:          lead.Phone,
		Address:        lead.Address,
		City:           lead.City,
		Zip:            lead.Zip,
		Tier:           lead.Tier,
		Frequency:      lead.Frequency,
		LotSizeBracket: lead.LotSizeBracket,
		Notes:          lead.Notes,
		Score:          lead.Score,
		Status:         string(lead.Status),
		CreatedAt:      lead.CreatedAt,
		UpdatedAt:      lead.UpdatedAt,
	}
	if lead.ServiceID != nil {
		id := lead.ServiceID.String()
		resp.ServiceID = &id
	}
	if lead.LocationID != nil {
		id := lead.LocationID.String()
		resp.LocationID = &id
	}
	return resp
}
