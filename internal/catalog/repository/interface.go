package repository

import (
	"context"

	"github.com/google/uuid"
)

// Service is an offered service (e.g. mowing, aeration) shown on the site.
type Service struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	Category     string
	Description  *string
	IsActive     bool
	DisplayOrder int
	CreatedAt    string
	UpdatedAt    string
}

// PricingRow is one priced tier for a service, optionally scoped to a
// location and a lot-size bracket. A nil LocationID means the row is the
// default for all locations. Price bounds are whole dollars.
type PricingRow struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	LocationID *uuid.UUID
	Tier       string
	PriceMin   int64
	PriceMax   int64
	Unit       string
	LotSizeMin *int64
	LotSizeMax *int64
	Includes   []string
	IsActive   bool
	CreatedAt  string
	UpdatedAt  string
}

// SeasonalModifier is a calendar-window price multiplier for a service.
// The window may wrap year-end (month_start > month_end). Priority orders
// modifiers when windows overlap; lower values win.
type SeasonalModifier struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	MonthStart int
	MonthEnd   int
	Multiplier float64
	Label      string
	Priority   int
	CreatedAt  string
}

// Location is a served area used as a lookup key for pricing overrides.
type Location struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	IsActive  bool
	Latitude  *float64
	Longitude *float64
	CreatedAt string
	UpdatedAt string
}

// CreateServiceParams contains parameters for creating a service.
type CreateServiceParams struct {
	Name         string
	Slug         string
	Category     string
	Description  *string
	DisplayOrder int
}

// UpdateServiceParams contains parameters for updating a service.
type UpdateServiceParams struct {
	ID           uuid.UUID
	Name         *string
	Slug         *string
	Category     *string
	Description  *string
	DisplayOrder *int
}

// CreatePricingRowParams contains parameters for creating a pricing row.
type CreatePricingRowParams struct {
	ServiceID  uuid.UUID
	LocationID *uuid.UUID
	Tier       string
	PriceMin   int64
	PriceMax   int64
	Unit       string
	LotSizeMin *int64
	LotSizeMax *int64
	Includes   []string
}

// CreateModifierParams contains parameters for creating a seasonal modifier.
type CreateModifierParams struct {
	ServiceID  uuid.UUID
	MonthStart int
	MonthEnd   int
	Multiplier float64
	Label      string
	Priority   int
}

// CreateLocationParams contains parameters for creating a location.
type CreateLocationParams struct {
	Name      string
	Slug      string
	Latitude  *float64
	Longitude *float64
}

// ServiceReader provides read operations for services.
type ServiceReader interface {
	GetServiceByID(ctx context.Context, id uuid.UUID) (Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (Service, error)
	ListServices(ctx context.Context) ([]Service, error)
	ListActiveServices(ctx context.Context) ([]Service, error)
}

// ServiceWriter provides write operations for services.
type ServiceWriter interface {
	CreateService(ctx context.Context, params CreateServiceParams) (Service, error)
	UpdateService(ctx context.Context, params UpdateServiceParams) (Service, error)
	SetServiceActive(ctx context.Context, id uuid.UUID, isActive bool) error
	DeleteService(ctx context.Context, id uuid.UUID) error
}

// PricingReader provides read operations for pricing rows.
type PricingReader interface {
	ListPricingByService(ctx context.Context, serviceID uuid.UUID) ([]PricingRow, error)
	// ListPricingForQuote returns active rows for a service: the default rows
	// plus rows scoped to the given location when one is supplied. Row order
	// is stable (creation order) because downstream resolution is first-match.
	ListPricingForQuote(ctx context.Context, serviceID uuid.UUID, locationID *uuid.UUID) ([]PricingRow, error)
}

// PricingWriter provides write operations for pricing rows.
type PricingWriter interface {
	CreatePricingRow(ctx context.Context, params CreatePricingRowParams) (PricingRow, error)
	SetPricingRowActive(ctx context.Context, id uuid.UUID, isActive bool) error
	DeletePricingRow(ctx context.Context, id uuid.UUID) error
}

// SeasonalReader provides read operations for seasonal modifiers.
type SeasonalReader interface {
	// ListModifiersByService returns modifiers ordered by priority then
	// creation time, making the engine's first-match rule deterministic.
	ListModifiersByService(ctx context.Context, serviceID uuid.UUID) ([]SeasonalModifier, error)
}

// SeasonalWriter provides write operations for seasonal modifiers.
type SeasonalWriter interface {
	CreateModifier(ctx context.Context, params CreateModifierParams) (SeasonalModifier, error)
	DeleteModifier(ctx context.Context, id uuid.UUID) error
}

// LocationReader provides read operations for locations.
type LocationReader interface {
	GetLocationByID(ctx context.Context, id uuid.UUID) (Location, error)
	GetLocationBySlug(ctx context.Context, slug string) (Location, error)
	ListLocations(ctx context.Context) ([]Location, error)
	ListActiveLocations(ctx context.Context) ([]Location, error)
}

// LocationWriter provides write operations for locations.
type LocationWriter interface {
	CreateLocation(ctx context.Context, params CreateLocationParams) (Location, error)
	SetLocationActive(ctx context.Context, id uuid.UUID, isActive bool) error
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}

// Repository combines all catalog repository operations.
type Repository interface {
	ServiceReader
	ServiceWriter
	PricingReader
	PricingWriter
	SeasonalReader
	SeasonalWriter
	LocationReader
	LocationWriter
}
