// Package engine computes price ranges and seasonal state for the quote
// pages. Every function is pure: inputs in, values out, no clock reads and
// no storage access. Callers capture the evaluation month once per request
// and pass it in.
package engine

import "github.com/google/uuid"

// Tier orders pricing packages from entry level to premium. Standard covers
// single-tier services that do not use the good/better/best ladder.
type Tier string

const (
	TierGood     Tier = "good"
	TierBetter   Tier = "better"
	TierBest     Tier = "best"
	TierStandard Tier = "standard"
)

// TierOrder is the fixed presentation order for computed ranges.
var TierOrder = []Tier{TierGood, TierBetter, TierBest, TierStandard}

// DisplaySeason drives site theming. It is derived from the calendar month
// alone and is independent of any per-service modifier.
type DisplaySeason string

const (
	SeasonSummer DisplaySeason = "summer"
	SeasonFall   DisplaySeason = "fall"
	SeasonWinter DisplaySeason = "winter"
)

// PricingRow is the engine's read-only view of one catalog pricing row.
// Prices are whole dollars.
type PricingRow struct {
	Tier       Tier
	LocationID *uuid.UUID
	PriceMin   int64
	PriceMax   int64
	Unit       string
	LotSizeMin *int64
	LotSizeMax *int64
	Includes   []string
	IsActive   bool
}

// SeasonalModifier scales a service's base range for a month window.
// MonthStart > MonthEnd means the window wraps across year-end.
type SeasonalModifier struct {
	MonthStart int
	MonthEnd   int
	Multiplier float64
	Label      string
}

// PriceRange is one computed tier range, already seasonally adjusted and
// rounded to whole dollars.
type PriceRange struct {
	Tier               Tier     `json:"tier"`
	Min                int64    `json:"min"`
	Max                int64    `json:"max"`
	Unit               string   `json:"unit"`
	Includes           []string `json:"includes"`
	SeasonalMultiplier float64  `json:"seasonalMultiplier"`
	SeasonalLabel      string   `json:"seasonalLabel,omitempty"`
}

// RangeOptions narrows the candidate rows for one quote request. A nil
// LocationID means no location preference; a nil LotSizeSqft disables the
// lot-size filter.
type RangeOptions struct {
	LocationID  *uuid.UUID
	LotSizeSqft *float64
}
