package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	catalogrepo "greenscape_backend/internal/catalog/repository"
	"greenscape_backend/internal/quote/engine"
	"greenscape_backend/internal/quote/transport"
	"greenscape_backend/platform/apperr"
	"greenscape_backend/platform/logger"
)

type fakeCatalog struct {
	services  map[string]catalogrepo.Service
	locations map[string]catalogrepo.Location
	rows      []catalogrepo.PricingRow
	mods      []catalogrepo.SeasonalModifier
}

func (f *fakeCatalog) GetServiceBySlug(_ context.Context, slug string) (catalogrepo.Service, error) {
	svc, ok := f.services[slug]
	if !ok {
		return catalogrepo.Service{}, apperr.NotFound("service not found")
	}
	return svc, nil
}

func (f *fakeCatalog) GetLocationBySlug(_ context.Context, slug string) (catalogrepo.Location, error) {
	loc, ok := f.locations[slug]
	if !ok {
		return catalogrepo.Location{}, apperr.NotFound("location not found")
	}
	return loc, nil
}

func (f *fakeCatalog) ListPricingForQuote(_ context.Context, serviceID uuid.UUID, locationID *uuid.UUID) ([]catalogrepo.PricingRow, error) {
	var out []catalogrepo.PricingRow
	for _, r := range f.rows {
		if r.ServiceID != serviceID || !r.IsActive {
			continue
		}
		if r.LocationID != nil && (locationID == nil || *r.LocationID != *locationID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeCatalog) ListModifiersByService(_ context.Context, serviceID uuid.UUID) ([]catalogrepo.SeasonalModifier, error) {
	var out []catalogrepo.SeasonalModifier
	for _, m := range f.mods {
		if m.ServiceID == serviceID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fixedSite struct{}

func (fixedSite) GetSiteName() string { return "Greenscape" }

func (fixedSite) GetTimeLocation() *time.Location { return time.UTC }

func newTestService(store *fakeCatalog, now time.Time) *Service {
	svc := New(store, fixedSite{}, logger.New("test"))
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetQuoteAppliesSeasonalModifier(t *testing.T) {
	serviceID := uuid.New()
	store := &fakeCatalog{
		services: map[string]catalogrepo.Service{
			"lawn-mowing": {ID: serviceID, Name: "Lawn Mowing", Slug: "lawn-mowing", Category: "maintenance", IsActive: true},
		},
		rows: []catalogrepo.PricingRow{
			{ID: uuid.New(), ServiceID: serviceID, Tier: "good", PriceMin: 100, PriceMax: 150, Unit: "per_visit", IsActive: true},
		},
		mods: []catalogrepo.SeasonalModifier{
			{ID: uuid.New(), ServiceID: serviceID, MonthStart: 6, MonthEnd: 8, Multiplier: 1.15, Label: "Peak Season"},
		},
	}

	july := time.Date(2026, time.July, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(store, july)

	got, err := svc.GetQuote(context.Background(), transport.QuoteRequest{ServiceSlug: "lawn-mowing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got.Ranges))
	}
	if got.Ranges[0].Min != 115 || got.Ranges[0].Max != 173 {
		t.Errorf("expected [115, 173], got [%d, %d]", got.Ranges[0].Min, got.Ranges[0].Max)
	}
	if got.Season.Label != "Peak Season" || got.Season.Multiplier != 1.15 {
		t.Errorf("unexpected season info: %+v", got.Season)
	}
	if got.Season.DisplaySeason != engine.SeasonSummer {
		t.Errorf("expected summer display season, got %s", got.Season.DisplaySeason)
	}
}

func TestGetQuoteOutOfWindowModifierIgnored(t *testing.T) {
	serviceID := uuid.New()
	store := &fakeCatalog{
		services: map[string]catalogrepo.Service{
			"aeration": {ID: serviceID, Name: "Aeration", Slug: "aeration", Category: "maintenance", IsActive: true},
		},
		rows: []catalogrepo.PricingRow{
			{ID: uuid.New(), ServiceID: serviceID, Tier: "standard", PriceMin: 200, PriceMax: 260, Unit: "per_project", IsActive: true},
		},
		mods: []catalogrepo.SeasonalModifier{
			{ID: uuid.New(), ServiceID: serviceID, MonthStart: 11, MonthEnd: 3, Multiplier: 0.9, Label: "Winter Savings"},
		},
	}

	june := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(store, june)

	got, err := svc.GetQuote(context.Background(), transport.QuoteRequest{ServiceSlug: "aeration"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Ranges[0].Min != 200 || got.Ranges[0].Max != 260 {
		t.Errorf("expected unadjusted [200, 260], got [%d, %d]", got.Ranges[0].Min, got.Ranges[0].Max)
	}
	if got.Season.Multiplier != 1.0 || got.Season.Label != "" {
		t.Errorf("expected no active modifier, got %+v", got.Season)
	}
}

func TestGetQuoteLocationPrecedence(t *testing.T) {
	serviceID := uuid.New()
	locID := uuid.New()
	store := &fakeCatalog{
		services: map[string]catalogrepo.Service{
			"lawn-mowing": {ID: serviceID, Name: "Lawn Mowing", Slug: "lawn-mowing", Category: "maintenance", IsActive: true},
		},
		locations: map[string]catalogrepo.Location{
			"maplewood": {ID: locID, Name: "Maplewood", Slug: "maplewood", IsActive: true},
		},
		rows: []catalogrepo.PricingRow{
			{ID: uuid.New(), ServiceID: serviceID, Tier: "good", PriceMin: 50, PriceMax: 70, Unit: "per_visit", IsActive: true},
			{ID: uuid.New(), ServiceID: serviceID, LocationID: &locID, Tier: "good", PriceMin: 60, PriceMax: 80, Unit: "per_visit", IsActive: true},
		},
	}

	svc := newTestService(store, time.Date(2026, time.May, 5, 8, 0, 0, 0, time.UTC))

	got, err := svc.GetQuote(context.Background(), transport.QuoteRequest{
		ServiceSlug:  "lawn-mowing",
		LocationSlug: "maplewood",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Ranges[0].Min != 60 || got.Ranges[0].Max != 80 {
		t.Errorf("expected location row [60, 80], got [%d, %d]", got.Ranges[0].Min, got.Ranges[0].Max)
	}
	if got.Location == nil || got.Location.Slug != "maplewood" {
		t.Errorf("expected location summary for maplewood, got %+v", got.Location)
	}
}

func TestGetQuoteLotSizeBracket(t *testing.T) {
	serviceID := uuid.New()
	smallMax := int64(10000)
	largeMin := int64(10001)
	store := &fakeCatalog{
		services: map[string]catalogrepo.Service{
			"lawn-mowing": {ID: serviceID, Name: "Lawn Mowing", Slug: "lawn-mowing", Category: "maintenance", IsActive: true},
		},
		rows: []catalogrepo.PricingRow{
			{ID: uuid.New(), ServiceID: serviceID, Tier: "standard", PriceMin: 40, PriceMax: 60, Unit: "per_visit", IsActive: true, LotSizeMax: &smallMax},
			{ID: uuid.New(), ServiceID: serviceID, Tier: "standard", PriceMin: 70, PriceMax: 90, Unit: "per_visit", IsActive: true, LotSizeMin: &largeMin},
		},
	}

	svc := newTestService(store, time.Date(2026, time.May, 5, 8, 0, 0, 0, time.UTC))

	got, err := svc.GetQuote(context.Background(), transport.QuoteRequest{
		ServiceSlug:    "lawn-mowing",
		LotSizeBracket: "small",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Ranges[0].Min != 40 || got.Ranges[0].Max != 60 {
		t.Errorf("expected small bracket [40, 60], got [%d, %d]", got.Ranges[0].Min, got.Ranges[0].Max)
	}
}

func TestGetQuoteUnknownService(t *testing.T) {
	svc := newTestService(&fakeCatalog{services: map[string]catalogrepo.Service{}}, time.Now())

	_, err := svc.GetQuote(context.Background(), transport.QuoteRequest{ServiceSlug: "nope"})
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestGetQuoteInactiveService(t *testing.T) {
	serviceID := uuid.New()
	store := &fakeCatalog{
		services: map[string]catalogrepo.Service{
			"retired": {ID: serviceID, Name: "Retired", Slug: "retired", IsActive: false},
		},
	}
	svc := newTestService(store, time.Now())

	_, err := svc.GetQuote(context.Background(), transport.QuoteRequest{ServiceSlug: "retired"})
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected not-found for inactive service, got %v", err)
	}
}

func TestGetSeason(t *testing.T) {
	svc := newTestService(&fakeCatalog{}, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC))

	got := svc.GetSeason()
	if got.Month != 10 {
		t.Errorf("expected month 10, got %d", got.Month)
	}
	if got.DisplaySeason != engine.SeasonFall {
		t.Errorf("expected fall, got %s", got.DisplaySeason)
	}
}
