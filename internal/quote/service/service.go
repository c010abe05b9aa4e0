package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	catalogrepo "greenscape_backend/internal/catalog/repository"
	"greenscape_backend/internal/quote/engine"
	"greenscape_backend/internal/quote/transport"
	"greenscape_backend/platform/apperr"
	"greenscape_backend/platform/config"
	"greenscape_backend/platform/logger"
)

// CatalogStore is the subset of the catalog the quote engine reads.
type CatalogStore interface {
	GetServiceBySlug(ctx context.Context, slug string) (catalogrepo.Service, error)
	GetLocationBySlug(ctx context.Context, slug string) (catalogrepo.Location, error)
	ListPricingForQuote(ctx context.Context, serviceID uuid.UUID, locationID *uuid.UUID) ([]catalogrepo.PricingRow, error)
	ListModifiersByService(ctx context.Context, serviceID uuid.UUID) ([]catalogrepo.SeasonalModifier, error)
}

// Service resolves quotes against the catalog. The evaluation month is
// captured once per request so a single quote is internally
// time-consistent.
type Service struct {
	store CatalogStore
	site  config.SiteConfig
	log   *logger.Logger
	now   func() time.Time
}

// New creates a quote service.
func New(store CatalogStore, site config.SiteConfig, log *logger.Logger) *Service {
	return &Service{
		store: store,
		site:  site,
		log:   log,
		now:   time.Now,
	}
}

// GetQuote computes the tiered price ranges for a service, optionally
// narrowed to a location and lot size.
func (s *Service) GetQuote(ctx context.Context, req transport.QuoteRequest) (*transport.QuoteResponse, error) {
	svc, err := s.store.GetServiceBySlug(ctx, req.ServiceSlug)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, apperr.NotFound("service not found")
	}

	var locSummary *transport.LocationSummary
	var locationID *uuid.UUID
	if req.LocationSlug != "" {
		loc, err := s.store.GetLocationBySlug(ctx, req.LocationSlug)
		if err != nil {
			return nil, err
		}
		if !loc.IsActive {
			return nil, apperr.NotFound("location not found")
		}
		id := loc.ID
		locationID = &id
		locSummary = &transport.LocationSummary{ID: loc.ID.String(), Name: loc.Name, Slug: loc.Slug}
	}

	var rows []catalogrepo.PricingRow
	var mods []catalogrepo.SeasonalModifier
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.store.ListPricingForQuote(gctx, svc.ID, locationID)
		return err
	})
	g.Go(func() error {
		var err error
		mods, err = s.store.ListModifiersByService(gctx, svc.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	month := s.currentMonth()
	modifier := engine.ActiveModifier(toEngineModifiers(mods), month)

	ranges := engine.ComputeRanges(toEngineRows(rows), modifier, engine.RangeOptions{
		LocationID:  locationID,
		LotSizeSqft: resolveLotSize(req),
	})

	season := transport.SeasonInfo{
		Month:         month,
		DisplaySeason: engine.ActiveDisplaySeason(month),
		Multiplier:    1.0,
	}
	if modifier != nil {
		season.Label = modifier.Label
		season.Multiplier = modifier.Multiplier
	}

	s.log.QuoteComputed(req.ServiceSlug, req.LocationSlug, len(ranges), season.Label)

	return &transport.QuoteResponse{
		Service: transport.ServiceSummary{
			ID:       svc.ID.String(),
			Name:     svc.Name,
			Slug:     svc.Slug,
			Category: svc.Category,
		},
		Location: locSummary,
		Season:   season,
		Ranges:   ranges,
	}, nil
}

// GetSeason returns the display season for the current month, used by the
// site for theming.
func (s *Service) GetSeason() *transport.SeasonResponse {
	month := s.currentMonth()
	return &transport.SeasonResponse{
		Month:         month,
		DisplaySeason: engine.ActiveDisplaySeason(month),
	}
}

func (s *Service) currentMonth() int {
	return int(s.now().In(s.site.GetTimeLocation()).Month())
}

// resolveLotSize prefers raw square footage over a bracket. An unknown
// bracket simply disables the filter.
func resolveLotSize(req transport.QuoteRequest) *float64 {
	if req.LotSizeSqft != nil {
		return req.LotSizeSqft
	}
	if req.LotSizeBracket != "" {
		if sqft, ok := engine.SqftForBracket(req.LotSizeBracket); ok {
			return &sqft
		}
	}
	return nil
}

func toEngineRows(rows []catalogrepo.PricingRow) []engine.PricingRow {
	out := make([]engine.PricingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, engine.PricingRow{
			Tier:       engine.Tier(r.Tier),
			LocationID: r.LocationID,
			PriceMin:   r.PriceMin,
			PriceMax:   r.PriceMax,
			Unit:       r.Unit,
			LotSizeMin: r.LotSizeMin,
			LotSizeMax: r.LotSizeMax,
			Includes:   r.Includes,
			IsActive:   r.IsActive,
		})
	}
	return out
}

func toEngineModifiers(mods []catalogrepo.SeasonalModifier) []engine.SeasonalModifier {
	out := make([]engine.SeasonalModifier, 0, len(mods))
	for _, m := range mods {
		out = append(out, engine.SeasonalModifier{
			MonthStart: m.MonthStart,
			MonthEnd:   m.MonthEnd,
			Multiplier: m.Multiplier,
			Label:      m.Label,
		})
	}
	return out
}
