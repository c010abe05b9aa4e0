package engine

import (
	"math"

	"github.com/google/uuid"
)

// SqftForBracket maps a coarse lot-size bracket to the representative
// square footage used for pricing-row lookups. Unknown brackets return
// false so callers can fall back to unfiltered pricing.
func SqftForBracket(bracket string) (float64, bool) {
	switch bracket {
	case "small":
		return 5000, true
	case "medium":
		return 15000, true
	case "large":
		return 30000, true
	case "xlarge":
		return 50000, true
	default:
		return 0, false
	}
}

// ComputeRanges resolves one adjusted price range per tier from a service's
// pricing rows. Inactive rows are dropped, the lot-size filter applies when
// a usable lot size is supplied, and per tier the location-scoped row set
// wins over the default set outright when both exist. Bounds are scaled by
// the modifier's multiplier and rounded half away from zero to whole
// dollars. An empty input yields an empty slice.
func ComputeRanges(rows []PricingRow, modifier *SeasonalModifier, opts RangeOptions) []PriceRange {
	multiplier := 1.0
	label := ""
	if modifier != nil {
		multiplier = modifier.Multiplier
		label = modifier.Label
	}

	lotSize := usableLotSize(opts.LotSizeSqft)

	byTier := make(map[Tier][]PricingRow)
	for _, row := range rows {
		if !row.IsActive {
			continue
		}
		if lotSize != nil && !bracketContains(row, *lotSize) {
			continue
		}
		byTier[row.Tier] = append(byTier[row.Tier], row)
	}

	ranges := make([]PriceRange, 0, len(byTier))
	for _, tier := range TierOrder {
		group := resolveLocationPrecedence(byTier[tier], opts.LocationID)
		if len(group) == 0 {
			continue
		}

		min := group[0].PriceMin
		max := group[0].PriceMax
		for _, row := range group[1:] {
			if row.PriceMin < min {
				min = row.PriceMin
			}
			if row.PriceMax > max {
				max = row.PriceMax
			}
		}

		includes := group[0].Includes
		if includes == nil {
			includes = []string{}
		}

		ranges = append(ranges, PriceRange{
			Tier:               tier,
			Min:                roundDollars(float64(min) * multiplier),
			Max:                roundDollars(float64(max) * multiplier),
			Unit:               group[0].Unit,
			Includes:           includes,
			SeasonalMultiplier: multiplier,
			SeasonalLabel:      label,
		})
	}
	return ranges
}

// resolveLocationPrecedence picks the row set for one tier. With a requested
// location, rows scoped to it beat default rows and rows scoped elsewhere
// are discarded; the two sets are never mixed. Without a requested location
// only default rows qualify.
func resolveLocationPrecedence(group []PricingRow, locationID *uuid.UUID) []PricingRow {
	var scoped, defaults []PricingRow
	for _, row := range group {
		switch {
		case row.LocationID == nil:
			defaults = append(defaults, row)
		case locationID != nil && *row.LocationID == *locationID:
			scoped = append(scoped, row)
		}
	}
	if len(scoped) > 0 {
		return scoped
	}
	return defaults
}

// usableLotSize rejects non-finite and non-positive lot sizes by treating
// them as absent, so pricing degrades to the unfiltered range instead of
// failing.
func usableLotSize(sqft *float64) *float64 {
	if sqft == nil {
		return nil
	}
	v := *sqft
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return nil
	}
	return sqft
}

// bracketContains reports whether a row's lot-size bracket covers sqft.
// A nil bound is unbounded on that side.
func bracketContains(row PricingRow, sqft float64) bool {
	if row.LotSizeMin != nil && sqft < float64(*row.LotSizeMin) {
		return false
	}
	if row.LotSizeMax != nil && sqft > float64(*row.LotSizeMax) {
		return false
	}
	return true
}

func roundDollars(v float64) int64 {
	return int64(math.Round(v))
}
