package transport

import "greenscape_backend/internal/quote/engine"

// QuoteRequest captures the query parameters of a quote lookup. Either a
// lot-size bracket or a raw square footage may be supplied; raw square
// footage wins when both are present.
type QuoteRequest struct {
	ServiceSlug    string   `form:"service" validate:"required,max=120"`
	LocationSlug   string   `form:"location" validate:"omitempty,max=120"`
	LotSizeBracket string   `form:"lotSize" validate:"omitempty,oneof=small medium large xlarge"`
	LotSizeSqft    *float64 `form:"sqft" validate:"omitempty"`
}

// ServiceSummary is the slim service view embedded in a quote response.
type ServiceSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
}

// LocationSummary is the slim location view embedded in a quote response.
type LocationSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SeasonInfo describes the seasonal state a quote was computed under.
type SeasonInfo struct {
	Month         int                  `json:"month"`
	DisplaySeason engine.DisplaySeason `json:"displaySeason"`
	Label         string               `json:"label,omitempty"`
	Multiplier    float64              `json:"multiplier"`
}

// QuoteResponse is the full response for a quote lookup.
type QuoteResponse struct {
	Service  ServiceSummary     `json:"service"`
	Location *LocationSummary   `json:"location,omitempty"`
	Season   SeasonInfo         `json:"season"`
	Ranges   []engine.PriceRange `json:"ranges"`
}

// SeasonResponse is the response for the site theming endpoint.
type SeasonResponse struct {
	Month         int                  `json:"month"`
	DisplaySeason engine.DisplaySeason `json:"displaySeason"`
}
