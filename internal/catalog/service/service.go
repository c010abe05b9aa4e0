package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"greenscape_backend/internal/catalog/repository"
	"greenscape_backend/internal/catalog/transport"
	"greenscape_backend/platform/apperr"
	"greenscape_backend/platform/logger"
	"greenscape_backend/platform/sanitize"
)

// Service provides business logic for the catalog: services, pricing rows,
// seasonal modifiers, and locations.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new catalog service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetServiceBySlug retrieves a service by slug.
func (s *Service) GetServiceBySlug(ctx context.Context, slug string) (transport.ServiceResponse, error) {
	svc, err := s.repo.GetServiceBySlug(ctx, slug)
	if err != nil {
		return transport.ServiceResponse{}, err
	}
	return toServiceResponse(svc), nil
}

// ListServices retrieves all services (admin view).
func (s *Service) ListServices(ctx context.Context) (transport.ServiceListResponse, error) {
	items, err := s.repo.ListServices(ctx)
	if err != nil {
		return transport.ServiceListResponse{}, err
	}
	return toServiceListResponse(items), nil
}

// ListActiveServices retrieves only active services (public site).
func (s *Service) ListActiveServices(ctx context.Context) (transport.ServiceListResponse, error) {
	items, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		return transport.ServiceListResponse{}, err
	}
	return toServiceListResponse(items), nil
}

// CreateService creates a new service with a generated slug.
func (s *Service) CreateService(ctx context.Context, req transport.CreateServiceRequest) (transport.ServiceResponse, error) {
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}

	params := repository.CreateServiceParams{
		Name:         req.Name,
		Slug:         generateSlug(req.Name),
		Category:     req.Category,
		Description:  sanitize.TextPtr(req.Description),
		DisplayOrder: displayOrder,
	}

	svc, err := s.repo.CreateService(ctx, params)
	if err != nil {
		return transport.ServiceResponse{}, err
	}

	s.log.Info("service created", "id", svc.ID, "name", svc.Name, "slug", svc.Slug)
	return toServiceResponse(svc), nil
}

// UpdateService updates an existing service. Renaming regenerates the slug.
func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req transport.UpdateServiceRequest) (transport.ServiceResponse, error) {
	var slug *string
	if req.Name != nil {
		newSlug := generateSlug(*req.Name)
		slug = &newSlug
	}

	params := repository.UpdateServiceParams{
		ID:           id,
		Name:         req.Name,
		Slug:         slug,
		Category:     req.Category,
		Description:  sanitize.TextPtr(req.Description),
		DisplayOrder: req.DisplayOrder,
	}

	svc, err := s.repo.UpdateService(ctx, params)
	if err != nil {
		return transport.ServiceResponse{}, err
	}

	s.log.Info("service updated", "id", svc.ID, "name", svc.Name)
	return toServiceResponse(svc), nil
}

// ToggleServiceActive flips the is_active flag for a service.
func (s *Service) ToggleServiceActive(ctx context.Context, id uuid.UUID) (transport.ServiceResponse, error) {
	svc, err := s.repo.GetServiceByID(ctx, id)
	if err != nil {
		return transport.ServiceResponse{}, err
	}

	newActive := !svc.IsActive
	if err := s.repo.SetServiceActive(ctx, id, newActive); err != nil {
		return transport.ServiceResponse{}, err
	}

	svc.IsActive = newActive
	s.log.Info("service active toggled", "id", id, "isActive", newActive)
	return toServiceResponse(svc), nil
}

// DeleteService removes a service and its dependent rows.
func (s *Service) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteService(ctx, id); err != nil {
		return err
	}
	s.log.Info("service deleted", "id", id)
	return nil
}

// ListPricing retrieves all pricing rows for a service (admin view).
func (s *Service) ListPricing(ctx context.Context, serviceID uuid.UUID) (transport.PricingRowListResponse, error) {
	items, err := s.repo.ListPricingByService(ctx, serviceID)
	if err != nil {
		return transport.PricingRowListResponse{}, err
	}

	responses := make([]transport.PricingRowResponse, len(items))
	for i, item := range items {
		responses[i] = toPricingRowResponse(item)
	}
	return transport.PricingRowListResponse{Items: responses, Total: len(responses)}, nil
}

// CreatePricingRow validates and inserts a pricing row. Invariants: bounds
// ordered and non-negative, and active rows within one service+tier+location
// scope must not have overlapping lot-size brackets. Rows in different
// location scopes never mix at quote time, so overlap is checked per scope.
func (s *Service) CreatePricingRow(ctx context.Context, req transport.CreatePricingRowRequest) (transport.PricingRowResponse, error) {
	if req.PriceMin > req.PriceMax {
		return transport.PricingRowResponse{}, apperr.Validation("priceMin must not exceed priceMax")
	}
	if req.LotSizeMin != nil && req.LotSizeMax != nil && *req.LotSizeMin > *req.LotSizeMax {
		return transport.PricingRowResponse{}, apperr.Validation("lotSizeMin must not exceed lotSizeMax")
	}

	existing, err := s.repo.ListPricingByService(ctx, req.ServiceID)
	if err != nil {
		return transport.PricingRowResponse{}, err
	}
	for _, row := range existing {
		if !row.IsActive || row.Tier != req.Tier {
			continue
		}
		if !sameLocationScope(row.LocationID, req.LocationID) {
			continue
		}
		if bracketsOverlap(row.LotSizeMin, row.LotSizeMax, req.LotSizeMin, req.LotSizeMax) {
			return transport.PricingRowResponse{}, apperr.Conflict("lot-size bracket overlaps an existing active row for this tier").
				WithDetails(map[string]string{"conflictingRowId": row.ID.String()})
		}
	}

	params := repository.CreatePricingRowParams{
		ServiceID:  req.ServiceID,
		LocationID: req.LocationID,
		Tier:       req.Tier,
		PriceMin:   req.PriceMin,
		PriceMax:   req.PriceMax,
		Unit:       req.Unit,
		LotSizeMin: req.LotSizeMin,
		LotSizeMax: req.LotSizeMax,
		Includes:   req.Includes,
	}

	row, err := s.repo.CreatePricingRow(ctx, params)
	if err != nil {
		return transport.PricingRowResponse{}, err
	}

	s.log.Info("pricing row created", "id", row.ID, "serviceId", row.ServiceID, "tier", row.Tier)
	return toPricingRowResponse(row), nil
}

// TogglePricingRowActive flips the is_active flag for a pricing row.
func (s *Service) TogglePricingRowActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	return s.repo.SetPricingRowActive(ctx, id, isActive)
}

// DeletePricingRow removes a pricing row.
func (s *Service) DeletePricingRow(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePricingRow(ctx, id)
}

// ListModifiers retrieves a service's seasonal modifiers.
func (s *Service) ListModifiers(ctx context.Context, serviceID uuid.UUID) (transport.ModifierListResponse, error) {
	items, err := s.repo.ListModifiersByService(ctx, serviceID)
	if err != nil {
		return transport.ModifierListResponse{}, err
	}

	responses := make([]transport.ModifierResponse, len(items))
	for i, item := range items {
		responses[i] = toModifierResponse(item)
	}
	return transport.ModifierListResponse{Items: responses, Total: len(responses)}, nil
}

// CreateModifier validates and inserts a seasonal modifier.
func (s *Service) CreateModifier(ctx context.Context, req transport.CreateModifierRequest) (transport.ModifierResponse, error) {
	priority := 0
	if req.Priority != nil {
		priority = *req.Priority
	}

	params := repository.CreateModifierParams{
		ServiceID:  req.ServiceID,
		MonthStart: req.MonthStart,
		MonthEnd:   req.MonthEnd,
		Multiplier: req.Multiplier,
		Label:      sanitize.Text(req.Label),
		Priority:   priority,
	}

	m, err := s.repo.CreateModifier(ctx, params)
	if err != nil {
		return transport.ModifierResponse{}, err
	}

	s.log.Info("seasonal modifier created", "id", m.ID, "serviceId", m.ServiceID, "label", m.Label)
	return toModifierResponse(m), nil
}

// DeleteModifier removes a seasonal modifier.
func (s *Service) DeleteModifier(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteModifier(ctx, id)
}

// GetLocationBySlug retrieves a location by slug.
func (s *Service) GetLocationBySlug(ctx context.Context, slug string) (transport.LocationResponse, error) {
	loc, err := s.repo.GetLocationBySlug(ctx, slug)
	if err != nil {
		return transport.LocationResponse{}, err
	}
	return toLocationResponse(loc), nil
}

// ListLocations retrieves all locations (admin view).
func (s *Service) ListLocations(ctx context.Context) (transport.LocationListResponse, error) {
	items, err := s.repo.ListLocations(ctx)
	if err != nil {
		return transport.LocationListResponse{}, err
	}
	return toLocationListResponse(items), nil
}

// ListActiveLocations retrieves only active locations (public site).
func (s *Service) ListActiveLocations(ctx context.Context) (transport.LocationListResponse, error) {
	items, err := s.repo.ListActiveLocations(ctx)
	if err != nil {
		return transport.LocationListResponse{}, err
	}
	return toLocationListResponse(items), nil
}

// CreateLocation creates a new location with a generated slug.
func (s *Service) CreateLocation(ctx context.Context, req transport.CreateLocationRequest) (transport.LocationResponse, error) {
	params := repository.CreateLocationParams{
		Name:      req.Name,
		Slug:      generateSlug(req.Name),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	loc, err := s.repo.CreateLocation(ctx, params)
	if err != nil {
		return transport.LocationResponse{}, err
	}

	s.log.Info("location created", "id", loc.ID, "name", loc.Name, "slug", loc.Slug)
	return toLocationResponse(loc), nil
}

// ToggleLocationActive flips the is_active flag for a location.
func (s *Service) ToggleLocationActive(ctx context.Context, id uuid.UUID) (transport.LocationResponse, error) {
	loc, err := s.repo.GetLocationByID(ctx, id)
	if err != nil {
		return transport.LocationResponse{}, err
	}

	newActive := !loc.IsActive
	if err := s.repo.SetLocationActive(ctx, id, newActive); err != nil {
		return transport.LocationResponse{}, err
	}

	loc.IsActive = newActive
	return toLocationResponse(loc), nil
}

// DeleteLocation removes a location.
func (s *Service) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLocation(ctx, id)
}

// sameLocationScope reports whether two rows share a location scope
// (both default, or both scoped to the same location).
func sameLocationScope(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// bracketsOverlap reports whether two lot-size brackets intersect.
// A nil bound means unbounded on that side.
func bracketsOverlap(aMin, aMax, bMin, bMax *int64) bool {
	// a ends before b starts
	if aMax != nil && bMin != nil && *aMax < *bMin {
		return false
	}
	// b ends before a starts
	if bMax != nil && aMin != nil && *bMax < *aMin {
		return false
	}
	return true
}

func toServiceResponse(svc repository.Service) transport.ServiceResponse {
	return transport.ServiceResponse{
		ID:           svc.ID,
		Name:         svc.Name,
		Slug:         svc.Slug,
		Category:     svc.Category,
		Description:  svc.Description,
		IsActive:     svc.IsActive,
		DisplayOrder: svc.DisplayOrder,
		CreatedAt:    svc.CreatedAt,
		UpdatedAt:    svc.UpdatedAt,
	}
}

func toServiceListResponse(items []repository.Service) transport.ServiceListResponse {
	responses := make([]transport.ServiceResponse, len(items))
	for i, item := range items {
		responses[i] = toServiceResponse(item)
	}
	return transport.ServiceListResponse{Items: responses, Total: len(responses)}
}

func toPricingRowResponse(row repository.PricingRow) transport.PricingRowResponse {
	includes := row.Includes
	if includes == nil {
		includes = []string{}
	}
	return transport.PricingRowResponse{
		ID:         row.ID,
		ServiceID:  row.ServiceID,
		LocationID: row.LocationID,
		Tier:       row.Tier,
		PriceMin:   row.PriceMin,
		PriceMax:   row.PriceMax,
		Unit:       row.Unit,
		LotSizeMin: row.LotSizeMin,
		LotSizeMax: row.LotSizeMax,
		Includes:   includes,
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func toModifierResponse(m repository.SeasonalModifier) transport.ModifierResponse {
	return transport.ModifierResponse{
		ID:         m.ID,
		ServiceID:  m.ServiceID,
		MonthStart: m.MonthStart,
		MonthEnd:   m.MonthEnd,
		Multiplier: m.Multiplier,
		Label:      m.Label,
		Priority:   m.Priority,
		CreatedAt:  m.CreatedAt,
	}
}

func toLocationResponse(loc repository.Location) transport.LocationResponse {
	return transport.LocationResponse{
		ID:        loc.ID,
		Name:      loc.Name,
		Slug:      loc.Slug,
		IsActive:  loc.IsActive,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
}

func toLocationListResponse(items []repository.Location) transport.LocationListResponse {
	responses := make([]transport.LocationResponse, len(items))
	for i, item := range items {
		responses[i] = toLocationResponse(item)
	}
	return transport.LocationListResponse{Items: responses, Total: len(responses)}
}

// generateSlug creates a URL-friendly slug from a name.
func generateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")

	reg := regexp.MustCompile(`[^a-z0-9-]+`)
	slug = reg.ReplaceAllString(slug, "")

	reg = regexp.MustCompile(`-+`)
	slug = reg.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
