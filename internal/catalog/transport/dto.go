package transport

import "github.com/google/uuid"

// CreateServiceRequest contains data for creating a new service.
type CreateServiceRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Category     string  `json:"category" validate:"required,min=1,max=50"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"displayOrder,omitempty" validate:"omitempty,min=0"`
}

// UpdateServiceRequest contains data for updating an existing service.
type UpdateServiceRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category     *string `json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"displayOrder,omitempty" validate:"omitempty,min=0"`
}

// ServiceResponse represents a service in API responses.
type ServiceResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Category     string    `json:"category"`
	Description  *string   `json:"description,omitempty"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

// ServiceListResponse wraps a list of services.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
	Total int               `json:"total"`
}

// CreatePricingRowRequest contains data for creating a pricing row.
// Price bounds are whole dollars. A nil locationId makes the row the
// location-agnostic default.
type CreatePricingRowRequest struct {
	ServiceID  uuid.UUID  `json:"serviceId" validate:"required"`
	LocationID *uuid.UUID `json:"locationId,omitempty"`
	Tier       string     `json:"tier" validate:"required,oneof=good better best standard"`
	PriceMin   int64      `json:"priceMin" validate:"min=0"`
	PriceMax   int64      `json:"priceMax" validate:"min=0"`
	Unit       string     `json:"unit" validate:"required,oneof=per_visit per_area per_length per_project"`
	LotSizeMin *int64     `json:"lotSizeMin,omitempty" validate:"omitempty,min=0"`
	LotSizeMax *int64     `json:"lotSizeMax,omitempty" validate:"omitempty,min=0"`
	Includes   []string   `json:"includes,omitempty" validate:"omitempty,dive,min=1,max=200"`
}

// PricingRowResponse represents a pricing row in API responses.
type PricingRowResponse struct {
	ID         uuid.UUID  `json:"id"`
	ServiceID  uuid.UUID  `json:"serviceId"`
	LocationID *uuid.UUID `json:"locationId,omitempty"`
	Tier       string     `json:"tier"`
	PriceMin   int64      `json:"priceMin"`
	PriceMax   int64      `json:"priceMax"`
	Unit       string     `json:"unit"`
	LotSizeMin *int64     `json:"lotSizeMin,omitempty"`
	LotSizeMax *int64     `json:"lotSizeMax,omitempty"`
	Includes   []string   `json:"includes"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
}

// PricingRowListResponse wraps a list of pricing rows.
type PricingRowListResponse struct {
	Items []PricingRowResponse `json:"items"`
	Total int                  `json:"total"`
}

// CreateModifierRequest contains data for creating a seasonal modifier.
// The month window is inclusive and may wrap year-end (monthStart > monthEnd).
type CreateModifierRequest struct {
	ServiceID  uuid.UUID `json:"serviceId" validate:"required"`
	MonthStart int       `json:"monthStart" validate:"min=1,max=12"`
	MonthEnd   int       `json:"monthEnd" validate:"min=1,max=12"`
	Multiplier float64   `json:"multiplier" validate:"required,gt=0"`
	Label      string    `json:"label" validate:"required,min=1,max=100"`
	Priority   *int      `json:"priority,omitempty" validate:"omitempty,min=0"`
}

// ModifierResponse represents a seasonal modifier in API responses.
type ModifierResponse struct {
	ID         uuid.UUID `json:"id"`
	ServiceID  uuid.UUID `json:"serviceId"`
	MonthStart int       `json:"monthStart"`
	MonthEnd   int       `json:"monthEnd"`
	Multiplier float64   `json:"multiplier"`
	Label      string    `json:"label"`
	Priority   int       `json:"priority"`
	CreatedAt  string    `json:"createdAt"`
}

// ModifierListResponse wraps a list of seasonal modifiers.
type ModifierListResponse struct {
	Items []ModifierResponse `json:"items"`
	Total int                `json:"total"`
}

// CreateLocationRequest contains data for creating a location.
type CreateLocationRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=100"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// LocationResponse represents a location in API responses.
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"isActive"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// LocationListResponse wraps a list of locations.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}
